package session

import (
	"sync"
	"testing"
)

func TestDefaultStateIsBrowsing(t *testing.T) {
	m := NewManager()
	if got := m.State(1); got != Browsing {
		t.Errorf("Expected Browsing for an unknown user, got %v", got)
	}
}

func TestAwaitPhoneAndResume(t *testing.T) {
	m := NewManager()

	m.AwaitPhone(1)
	if got := m.State(1); got != AwaitingPhone {
		t.Errorf("Expected AwaitingPhone after entry, got %v", got)
	}
	// Other users are unaffected.
	if got := m.State(2); got != Browsing {
		t.Errorf("Expected Browsing for another user, got %v", got)
	}

	m.Resume(1)
	if got := m.State(1); got != Browsing {
		t.Errorf("Expected Browsing after exit, got %v", got)
	}
}

func TestLastCategory(t *testing.T) {
	m := NewManager()

	if _, ok := m.LastCategory(1); ok {
		t.Error("Expected no last category for a fresh user")
	}

	m.SetLastCategory(1, 7)
	id, ok := m.LastCategory(1)
	if !ok || id != 7 {
		t.Errorf("Expected last category 7, got %d (ok=%v)", id, ok)
	}

	// Resuming from phone entry keeps navigation history.
	m.AwaitPhone(1)
	m.Resume(1)
	if id, ok := m.LastCategory(1); !ok || id != 7 {
		t.Errorf("Expected last category to survive state transitions, got %d (ok=%v)", id, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			m.AwaitPhone(userID)
			m.SetLastCategory(userID, uint(userID))
			m.Resume(userID)
			_ = m.State(userID)
			_, _ = m.LastCategory(userID)
		}(int64(i % 5))
	}
	wg.Wait()
}
