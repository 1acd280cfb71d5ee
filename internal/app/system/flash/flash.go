// Package flash keeps one-shot messages across the POST-redirect-GET cycle.
//
// A successful registration redirects back to the empty form; the welcome
// message rides along in a signed session cookie and is consumed on the next
// render.
package flash

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const flashKey = "_flash"

// Manager wraps a cookie-backed session store used only for flash messages.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager. key signs the cookie; when key is empty a
// random one is generated, which is fine for a single process since flashes
// only need to survive one redirect.
func NewManager(key, name string, secure bool, logger *zap.Logger) (*Manager, error) {
	if name == "" {
		return nil, errors.New("flash: session name must not be empty")
	}
	b := []byte(key)
	if len(b) == 0 {
		b = securecookie.GenerateRandomKey(32)
		if b == nil {
			return nil, errors.New("flash: could not generate session key")
		}
	}

	store := sessions.NewCookieStore(b)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // flashes are short-lived
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// Set queues msg for the next request from this client.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, msg string) {
	sess, _ := m.store.Get(r, m.name)
	sess.AddFlash(msg, flashKey)
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash save failed", zap.Error(err))
	}
}

// Take returns the queued message, if any, and clears it.
func (m *Manager) Take(w http.ResponseWriter, r *http.Request) (string, bool) {
	sess, _ := m.store.Get(r, m.name)
	flashes := sess.Flashes(flashKey)
	if len(flashes) == 0 {
		return "", false
	}
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash clear failed", zap.Error(err))
	}
	msg, ok := flashes[len(flashes)-1].(string)
	return msg, ok
}
