package auth_test

import (
	"testing"

	"mobintix/site-service/internal/auth"
)

// ── ParseState ─────────────────────────────────────────────────────────────

func TestParseState_ValidValues(t *testing.T) {
	valid := []string{"LOGGED_OUT", "LOGGING_IN", "LOGGED_IN"}
	for _, s := range valid {
		got, err := auth.ParseState(s)
		if err != nil {
			t.Errorf("ParseState(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseState(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseState_InvalidValue(t *testing.T) {
	_, err := auth.ParseState("SIGNED_IN")
	if err == nil {
		t.Error("ParseState(\"SIGNED_IN\") expected error, got nil")
	}
}

func TestParseState_EmptyString(t *testing.T) {
	_, err := auth.ParseState("")
	if err == nil {
		t.Error("ParseState(\"\") expected error, got nil")
	}
}

// ── IsTransitionAllowed ────────────────────────────────────────────────────

func TestIsTransitionAllowed_Valid(t *testing.T) {
	cases := []struct {
		from auth.State
		to   auth.State
	}{
		{auth.StateLoggedOut, auth.StateLoggingIn},
		{auth.StateLoggingIn, auth.StateLoggedIn},
		{auth.StateLoggingIn, auth.StateLoggedOut},
		{auth.StateLoggedIn, auth.StateLoggedOut},
	}
	for _, c := range cases {
		if !auth.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s → %s) should be true", c.from, c.to)
		}
	}
}

func TestIsTransitionAllowed_Invalid(t *testing.T) {
	cases := []struct {
		from auth.State
		to   auth.State
	}{
		{auth.StateLoggedOut, auth.StateLoggedIn}, // must pass through LOGGING_IN
		{auth.StateLoggedIn, auth.StateLoggingIn}, // no re-login while logged in
		{auth.StateLoggedIn, auth.StateLoggedIn},
		{auth.StateLoggedOut, auth.StateLoggedOut},
		{auth.StateLoggingIn, auth.StateLoggingIn},
	}
	for _, c := range cases {
		if auth.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s → %s) should be false", c.from, c.to)
		}
	}
}

// ── Login flow ─────────────────────────────────────────────────────────────

func TestLogin_ZeroValueIsLoggedOut(t *testing.T) {
	var l auth.Login
	if l.State() != auth.StateLoggedOut {
		t.Errorf("zero Login state = %s, want %s", l.State(), auth.StateLoggedOut)
	}
}

func TestLogin_SuccessfulFlow(t *testing.T) {
	l := auth.NewLogin()
	if err := l.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if l.State() != auth.StateLoggingIn {
		t.Errorf("after Begin state = %s, want %s", l.State(), auth.StateLoggingIn)
	}
	if err := l.Succeed(); err != nil {
		t.Fatalf("Succeed: %v", err)
	}
	if l.State() != auth.StateLoggedIn {
		t.Errorf("after Succeed state = %s, want %s", l.State(), auth.StateLoggedIn)
	}
	if err := l.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if l.State() != auth.StateLoggedOut {
		t.Errorf("after Logout state = %s, want %s", l.State(), auth.StateLoggedOut)
	}
}

func TestLogin_FailureRetainsMessage(t *testing.T) {
	l := auth.NewLogin()
	if err := l.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := l.Fail("invalid credentials"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if l.State() != auth.StateLoggedOut {
		t.Errorf("after Fail state = %s, want %s", l.State(), auth.StateLoggedOut)
	}
	if l.LastError() != "invalid credentials" {
		t.Errorf("LastError = %q, want %q", l.LastError(), "invalid credentials")
	}
}

func TestLogin_NoAutomaticRetry(t *testing.T) {
	l := auth.NewLogin()
	_ = l.Begin()
	_ = l.Fail("invalid credentials")

	// A failed attempt must not succeed without a fresh Begin.
	if err := l.Succeed(); err == nil {
		t.Error("Succeed after Fail expected error, got nil")
	}
	if l.State() != auth.StateLoggedOut {
		t.Errorf("state = %s, want %s", l.State(), auth.StateLoggedOut)
	}
}

func TestLogin_BeginClearsLastError(t *testing.T) {
	l := auth.NewLogin()
	_ = l.Begin()
	_ = l.Fail("invalid credentials")
	if err := l.Begin(); err != nil {
		t.Fatalf("second Begin: %v", err)
	}
	if l.LastError() != "" {
		t.Errorf("LastError after Begin = %q, want empty", l.LastError())
	}
}

func TestLogin_SucceedFromLoggedOut(t *testing.T) {
	l := auth.NewLogin()
	if err := l.Succeed(); err == nil {
		t.Error("Succeed from LOGGED_OUT expected error, got nil")
	}
}

func TestLogin_LogoutFromLoggingIn(t *testing.T) {
	l := auth.NewLogin()
	_ = l.Begin()
	// LOGGING_IN → LOGGED_OUT is the failure edge; plain Logout uses it too.
	if err := l.Logout(); err != nil {
		t.Errorf("Logout from LOGGING_IN: %v", err)
	}
}
