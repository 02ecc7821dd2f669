// Package auth implements admin authentication: the login state machine,
// bcrypt credential checks against admin_users, and Redis-backed sessions.
//
// Valid state graph:
//
//	LOGGED_OUT ──► LOGGING_IN ──► LOGGED_IN
//	     ▲              │              │
//	     └──────────────┴──────────────┘
//
// A failed login returns to LOGGED_OUT with the error message retained for
// display. There is no automatic retry of a failed login.
package auth

import "fmt"

// State is an admin session lifecycle state.
type State string

const (
	StateLoggedOut State = "LOGGED_OUT"
	StateLoggingIn State = "LOGGING_IN"
	StateLoggedIn  State = "LOGGED_IN"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[State][]State{
	StateLoggedOut: {StateLoggingIn},
	StateLoggingIn: {StateLoggedIn, StateLoggedOut},
	StateLoggedIn:  {StateLoggedOut},
}

// ParseState converts a raw string to a State, returning an error for
// unknown values.
func ParseState(s string) (State, error) {
	st := State(s)
	switch st {
	case StateLoggedOut, StateLoggingIn, StateLoggedIn:
		return st, nil
	}
	return "", fmt.Errorf("unknown session state %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted.
func IsTransitionAllowed(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Login tracks one operator's progress through the state machine.
// The zero value is LoggedOut.
type Login struct {
	state   State
	lastErr string
}

// NewLogin returns a Login in the LoggedOut state.
func NewLogin() *Login {
	return &Login{state: StateLoggedOut}
}

// State returns the current state.
func (l *Login) State() State {
	if l.state == "" {
		return StateLoggedOut
	}
	return l.state
}

// LastError returns the failure message retained from the last failed
// login attempt, cleared on the next Begin.
func (l *Login) LastError() string { return l.lastErr }

// Begin moves LoggedOut → LoggingIn.
func (l *Login) Begin() error {
	return l.transition(StateLoggingIn, "")
}

// Succeed moves LoggingIn → LoggedIn.
func (l *Login) Succeed() error {
	return l.transition(StateLoggedIn, "")
}

// Fail moves LoggingIn → LoggedOut, retaining msg for display.
func (l *Login) Fail(msg string) error {
	return l.transition(StateLoggedOut, msg)
}

// Logout moves LoggedIn → LoggedOut.
func (l *Login) Logout() error {
	return l.transition(StateLoggedOut, "")
}

func (l *Login) transition(to State, errMsg string) error {
	from := l.State()
	if !IsTransitionAllowed(from, to) {
		return fmt.Errorf("transition %s → %s is not allowed", from, to)
	}
	l.state = to
	l.lastErr = errMsg
	return nil
}
