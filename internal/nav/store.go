// Package nav holds the navigation state of one documentation viewer: the
// current route and the mobile sidebar flag, with synchronous change
// notification.
//
// A Store is not safe for concurrent use. Callers that share a store between
// goroutines serialize access themselves (see package session).
package nav

// State is the navigation record observed by subscribers.
type State struct {
	Route       string `json:"route"`
	SidebarOpen bool   `json:"sidebar_open"`
}

// Locale derives the locale from the route.
func (s State) Locale() Locale { return LocaleOf(s.Route) }

// Korean reports whether the current route is in the Korean edition.
func (s State) Korean() bool { return IsKorean(s.Route) }

// Subscriber is called after every state change.
type Subscriber func(State)

type subscription struct {
	fn     Subscriber
	active bool
}

// Store is the single writer of a State.
type Store struct {
	state State
	subs  []*subscription
	env   History
}

// NewStore creates a store whose initial route is read from env.
func NewStore(env History) *Store {
	if env == nil {
		env = NewMemoryHistory("/")
	}
	return &Store{
		state: State{Route: Normalize(env.Location())},
		env:   env,
	}
}

// State returns the current state.
func (s *Store) State() State { return s.state }

// Watch registers fn and returns the current state together with a function
// that releases the registration. Releasing twice is a no-op.
func (s *Store) Watch(fn Subscriber) (State, func()) {
	sub := &subscription{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	return s.state, func() { s.release(sub) }
}

func (s *Store) release(sub *subscription) {
	if !sub.active {
		return
	}
	sub.active = false
	for i, other := range s.subs {
		if other == sub {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// NavigateTo normalizes path, makes it the current route, notifies every
// subscriber and records the route in the environment history. Unknown
// paths are accepted; resolving them is the router's job.
func (s *Store) NavigateTo(path string) {
	route := Normalize(path)
	changed := route != s.state.Route
	s.state.Route = route
	s.notify()
	if changed {
		s.env.Push(route)
	}
}

// Restore applies a route change that originated in the environment, such
// as a back or forward gesture. Subscribers are notified but the history is
// left untouched.
func (s *Store) Restore(path string) {
	s.state.Route = Normalize(path)
	s.notify()
}

// SetSidebarOpen sets the sidebar flag and notifies subscribers.
func (s *Store) SetSidebarOpen(open bool) {
	s.state.SidebarOpen = open
	s.notify()
}

// Subscribers returns the number of live registrations.
func (s *Store) Subscribers() int { return len(s.subs) }

// notify delivers the current state in registration order. The slice is
// copied so subscribers may register or release during delivery.
func (s *Store) notify() {
	subs := make([]*subscription, len(s.subs))
	copy(subs, s.subs)
	state := s.state
	for _, sub := range subs {
		if sub.active {
			sub.fn(state)
		}
	}
}
