// Package session implements the persisted login state and its change
// notifier. The store keeps the bearer token and a denormalized user
// snapshot under fixed preference keys, and fans every same-process
// mutation out to registered subscribers so independently rendered views
// stay in sync without a reload.
package session

import (
	"encoding/json"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/Paoox/redsocial-desktop/internal/logx"
	"github.com/Paoox/redsocial-desktop/internal/model"
)

// Storage keys. They match the original client's persistent keys so the
// stored blob stays recognizable across versions.
const (
	KeyToken = "token"
	KeyUser  = "usuario"
)

// Subscriber receives the session after every store mutation. loggedIn is
// false when the store was cleared or holds no usable session.
type Subscriber func(s model.Session, loggedIn bool)

// Store is the observable session holder. It is owned by the application
// shell and passed down to views by reference; views must not reach for
// preferences directly.
//
// When constructed without preferences the store degrades to in-memory
// state that is lost on restart instead of failing.
type Store struct {
	prefs fyne.Preferences

	mu       sync.RWMutex
	memToken string
	memUser  string
	subs     map[int]Subscriber
	nextID   int
}

// NewStore creates a session store persisted in the given preferences.
// A nil preferences value selects the degraded in-memory mode.
func NewStore(prefs fyne.Preferences) *Store {
	if prefs == nil {
		logx.Warn("session storage unavailable, falling back to in-memory session")
	}
	return &Store{
		prefs: prefs,
		subs:  make(map[int]Subscriber),
	}
}

// Write persists the session and notifies all subscribers in the same tick.
func (st *Store) Write(s model.Session) error {
	raw, err := json.Marshal(s.User)
	if err != nil {
		return err
	}

	st.mu.Lock()
	st.set(KeyToken, s.Token)
	st.set(KeyUser, string(raw))
	st.mu.Unlock()

	st.notify()
	return nil
}

// Read returns the current session. It never fails: a missing token or a
// garbled user blob reads as logged out.
func (st *Store) Read() (model.Session, bool) {
	st.mu.RLock()
	token := st.get(KeyToken)
	rawUser := st.get(KeyUser)
	st.mu.RUnlock()

	if token == "" {
		return model.Session{}, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		logx.Warn("stored session blob is not valid JSON, treating as logged out")
		return model.Session{}, false
	}

	return model.Session{Token: token, User: user}, true
}

// Clear removes the session keys and notifies subscribers. Equivalent to
// writing an absent session.
func (st *Store) Clear() {
	st.mu.Lock()
	st.remove(KeyToken)
	st.remove(KeyUser)
	st.mu.Unlock()

	st.notify()
}

// UpdateUser replaces only the cached user snapshot, keeping the token.
// Used after a settings save returns the updated record.
func (st *Store) UpdateUser(user model.User) error {
	current, ok := st.Read()
	if !ok {
		return nil
	}
	current.User = user
	return st.Write(current)
}

// Subscribe registers a callback invoked on every mutation of the store.
// The returned function unregisters the callback; views must call it on
// teardown so dismissed screens stop receiving updates.
func (st *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.subs[id] = fn
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		delete(st.subs, id)
		st.mu.Unlock()
	}
}

// notify snapshots the subscriber list and delivers the current session.
// Callbacks run outside the lock so a subscriber may re-read or even
// mutate the store.
func (st *Store) notify() {
	current, loggedIn := st.Read()

	st.mu.RLock()
	snapshot := make([]Subscriber, 0, len(st.subs))
	for _, fn := range st.subs {
		snapshot = append(snapshot, fn)
	}
	st.mu.RUnlock()

	for _, fn := range snapshot {
		fn(current, loggedIn)
	}
}

// get reads one key from the active backend. Callers hold st.mu.
func (st *Store) get(key string) string {
	if st.prefs != nil {
		return st.prefs.String(key)
	}
	switch key {
	case KeyToken:
		return st.memToken
	default:
		return st.memUser
	}
}

// set writes one key to the active backend. Callers hold st.mu.
func (st *Store) set(key, value string) {
	if st.prefs != nil {
		st.prefs.SetString(key, value)
		return
	}
	switch key {
	case KeyToken:
		st.memToken = value
	default:
		st.memUser = value
	}
}

// remove deletes one key from the active backend. Callers hold st.mu.
func (st *Store) remove(key string) {
	if st.prefs != nil {
		st.prefs.RemoveValue(key)
		return
	}
	switch key {
	case KeyToken:
		st.memToken = ""
	default:
		st.memUser = ""
	}
}
