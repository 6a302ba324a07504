package theme

// Session scopes an active theme to a builder or preview run. Reading the
// active theme outside a live session is a wiring bug in the host, not a data
// problem, so Active panics instead of returning an error the caller would
// have to invent a recovery for.
type Session struct {
	cfg    *Config
	closed bool
}

// NewSession opens a session around a resolved theme configuration.
func NewSession(cfg *Config) *Session {
	if cfg == nil {
		panic("theme: session requires a resolved config")
	}
	return &Session{cfg: cfg}
}

// Active returns the session's theme. It panics when called on a nil or
// closed session.
func (s *Session) Active() *Config {
	if s == nil || s.closed || s.cfg == nil {
		panic("theme: no active session")
	}
	return s.cfg
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	return s == nil || s.closed
}

// Close ends the session. Further Active calls panic.
func (s *Session) Close() {
	if s != nil {
		s.closed = true
	}
}
