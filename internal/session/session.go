// Package session keeps the short-lived conversation state the relational
// store has no business holding: whether a user is mid-phone-entry and which
// category they viewed last. State lives in process memory only and resets
// on restart, which at worst re-asks a user for input.
package session

import "sync"

// State is a user's position in the ordering conversation.
type State int

const (
	// Browsing is the default state; a user with no session is browsing.
	Browsing State = iota
	// AwaitingPhone means checkout is paused until the user sends a phone
	// number as a plain message.
	AwaitingPhone
)

type entry struct {
	state          State
	lastCategoryID uint
}

// Manager is a mutex-guarded session map keyed by chat identity.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*entry
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*entry)}
}

func (m *Manager) get(userID int64) *entry {
	e, ok := m.sessions[userID]
	if !ok {
		e = &entry{}
		m.sessions[userID] = e
	}
	return e
}

// State returns the user's current conversation state.
func (m *Manager) State(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[userID]; ok {
		return e.state
	}
	return Browsing
}

// AwaitPhone enters the AwaitingPhone state: checkout is suspended until a
// phone number arrives or the user navigates back to browsing.
func (m *Manager) AwaitPhone(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(userID).state = AwaitingPhone
}

// Resume exits AwaitingPhone back to Browsing. Navigation history is kept.
func (m *Manager) Resume(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(userID).state = Browsing
}

// SetLastCategory remembers the category a user viewed last, for the
// "back to category" navigation from a product view.
func (m *Manager) SetLastCategory(userID int64, categoryID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(userID).lastCategoryID = categoryID
}

// LastCategory returns the last viewed category id, false if none was stored.
func (m *Manager) LastCategory(userID int64) (uint, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[userID]
	if !ok || e.lastCategoryID == 0 {
		return 0, false
	}
	return e.lastCategoryID, true
}
