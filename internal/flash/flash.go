package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const cookieName = "askboard_flash"

// Severity levels mirror the bootstrap alert classes used by the templates.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// Message is a one-shot user notification surfaced on the next rendered
// page and then discarded.
type Message struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// Add appends a message to the flash queue. Messages already queued on
// the request cookie or earlier in this same response are preserved, so
// several flashes can stack before a render.
func Add(w http.ResponseWriter, r *http.Request, severity, text string) {
	msgs := append(queued(w, r), Message{Severity: severity, Text: text})

	payload, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	setCookie(w, base64.RawURLEncoding.EncodeToString(payload), time.Time{})
}

// Pop returns all queued messages and clears the cookie. Messages added
// while handling the current request are included, so a flash followed by
// a render on the same response surfaces immediately instead of leaking
// onto the next page. A malformed cookie yields no messages.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	msgs := queued(w, r)
	if msgs != nil {
		setCookie(w, "", time.Unix(0, 0))
	}
	return msgs
}

// queued reads the flash cookie pending on the response, falling back to
// the one sent with the request. A message added during this request
// exists only in the response headers until the browser sees it.
func queued(w http.ResponseWriter, r *http.Request) []Message {
	if value, ok := pending(w); ok {
		return decode(value)
	}
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	return decode(c.Value)
}

func decode(value string) []Message {
	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(payload, &msgs); err != nil {
		return nil
	}
	return msgs
}

// pending returns the flash cookie value already queued on the response,
// if any.
func pending(w http.ResponseWriter) (string, bool) {
	for _, line := range w.Header().Values("Set-Cookie") {
		if !strings.HasPrefix(line, cookieName+"=") {
			continue
		}
		value := strings.TrimPrefix(line, cookieName+"=")
		if i := strings.IndexByte(value, ';'); i >= 0 {
			value = value[:i]
		}
		return value, true
	}
	return "", false
}

// setCookie writes the flash cookie, replacing any version queued on the
// response earlier in this request. http.SetCookie alone would append a
// second Set-Cookie header for the same name.
func setCookie(w http.ResponseWriter, value string, expires time.Time) {
	h := w.Header()
	lines := h.Values("Set-Cookie")
	h.Del("Set-Cookie")
	for _, line := range lines {
		if !strings.HasPrefix(line, cookieName+"=") {
			h.Add("Set-Cookie", line)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
}
