package navpanel

import "sync"

// UIState is the ephemeral state of one mounted panel.
type UIState struct {
	mu           sync.Mutex
	userMenuOpen bool
	condensed    bool
}

func (s *UIState) UserMenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userMenuOpen
}

// ToggleUserMenu flips the popover visibility and returns the new value.
func (s *UIState) ToggleUserMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMenuOpen = !s.userMenuOpen
	return s.userMenuOpen
}

func (s *UIState) CloseUserMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMenuOpen = false
}

// Condensed is the collapse flag read when the panel was mounted, or set by
// a later successful toggle.
func (s *UIState) Condensed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.condensed
}

func (s *UIState) SetCondensed(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.condensed = v
}
