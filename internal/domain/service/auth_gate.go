package service

// AuthGate reports the caller's authentication state to the persistence
// coordinator. It is injected explicitly so tests can force deterministic
// auth outcomes instead of reading ambient global state.
type AuthGate interface {
	// IsAuthenticated reports whether a usable session exists.
	IsAuthenticated() bool

	// HasRole reports whether the current session carries the role.
	HasRole(role string) bool

	// Token returns the bearer token for remote calls, empty when anonymous.
	Token() string

	// OnAuthRequired triggers the external re-authentication flow. The
	// coordinator consumes no return value.
	OnAuthRequired()
}

// TokenSink accepts a fresh bearer token from the re-authentication flow.
type TokenSink interface {
	SetToken(token string) error
	ClearToken()
}
