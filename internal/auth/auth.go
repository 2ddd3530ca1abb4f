// Package auth tracks the session's sign-in state as reported by the
// external identity collaborator, and derives the admin flag from a fixed
// email allow-list. The cart and wishlist stores never depend on it;
// calling code gates actions on the current state.
package auth

import (
	"strings"
	"sync"

	"github.com/tishe/storefront/internal/domain"
)

// State is the current identity plus the derived admin flag.
type State struct {
	User     domain.User
	SignedIn bool
	IsAdmin  bool
}

type Service struct {
	mu     sync.Mutex
	admins map[string]struct{}
	state  State
	subs   map[int]chan State
	nextID int
}

func NewService(adminEmails []string) *Service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}

	return &Service{
		admins: admins,
		subs:   make(map[int]chan State),
	}
}

// SetUser is called by the identity collaborator on every auth change;
// nil means signed out. Subscribers receive the resulting state.
func (s *Service) SetUser(user *domain.User) {
	s.mu.Lock()

	if user == nil {
		s.state = State{}
	} else {
		s.state = State{
			User:     *user,
			SignedIn: true,
			IsAdmin:  s.isAdminLocked(user.Email),
		}
	}

	state := s.state
	subs := make([]chan State, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		// Drop rather than block when a subscriber lags.
		select {
		case ch <- state:
		default:
		}
	}
}

func (s *Service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// IsAdmin reports whether the email is on the allow-list.
func (s *Service) IsAdmin(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isAdminLocked(email)
}

// Subscribe returns a channel of state changes and a cancel function.
// The channel is buffered; a state published while the subscriber is busy
// may be superseded by a newer one.
func (s *Service) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan State, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Service) isAdminLocked(email string) bool {
	_, ok := s.admins[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
