// Package bonus holds the built-in sample questions shown on the
// bonus-questions page. They are not stored in the database.
package bonus

// Question is a read-only sample entry.
type Question struct {
	Title       string
	Description string
}

// SampleQuestions is the fixed set rendered by GET /bonus-questions.
var SampleQuestions = []Question{
	{
		Title:       "How do I undo the most recent local commits in Git?",
		Description: "I accidentally committed the wrong files. How can I undo the commit without losing my work?",
	},
	{
		Title:       "What does the yield keyword do?",
		Description: "I keep seeing generator functions with yield in them. How does control flow work there?",
	},
	{
		Title:       "How do I check whether a file exists without exceptions?",
		Description: "Is there a way to test for a file before opening it, instead of catching the error?",
	},
	{
		Title:       "What is the difference between a process and a thread?",
		Description: "Both seem to run code concurrently. When would I pick one over the other?",
	},
	{
		Title:       "Why is reading lines from stdin much slower in C++ than Python?",
		Description: "The same loop over input lines runs several times slower in my C++ build. What am I missing?",
	},
	{
		Title:       "How do I horizontally center an element with CSS?",
		Description: "margin: auto works sometimes and not others. What are the reliable options?",
	},
	{
		Title:       "What is a NullPointerException, and how do I fix it?",
		Description: "My program crashes with a NullPointerException and the stack trace points at a line that looks fine.",
	},
}
