package session

// Decision is an explicit authorization decision. Handlers evaluate it
// before touching the datastore: check first, then act.
type Decision struct {
	OK     bool
	Reason string
}

// Authorize decides whether the identity may use a protected route.
// Anonymous visitors are denied with the reason shown to the user.
func Authorize(id Identity) Decision {
	if !id.LoggedIn() {
		return Decision{Reason: "You need to be logged in to access this page."}
	}
	return Decision{OK: true}
}
