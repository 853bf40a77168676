package core

import "sync/atomic"

// LevelState holds the process-wide minimum level shared by a logger and
// every scoped logger derived from it.
type LevelState struct {
	level      atomic.Int32
	production bool
}

// NewLevelState creates a state with the given starting level. An invalid
// initial level falls back to InfoLevel when production is set, DebugLevel
// otherwise.
func NewLevelState(initial Level, production bool) *LevelState {
	if !initial.Valid() {
		initial = DefaultLevel(production)
	}
	s := &LevelState{production: production}
	s.level.Store(int32(initial))
	return s
}

// DefaultLevel is the starting level used when none is configured.
func DefaultLevel(production bool) Level {
	if production {
		return InfoLevel
	}
	return DebugLevel
}

// Level returns the current minimum level
func (s *LevelState) Level() Level {
	return Level(s.level.Load())
}

// Production reports whether the production guard is active
func (s *LevelState) Production() bool {
	return s.production
}

// Enabled reports whether an entry at requested passes the minimum level.
func (s *LevelState) Enabled(requested Level) bool {
	return requested.Valid() && requested >= s.Level()
}

// SetLevel replaces the minimum level and reports whether it did. In
// production, trace and debug are refused so verbose output can't be
// switched on at runtime. Invalid levels are refused as well.
func (s *LevelState) SetLevel(l Level) bool {
	if !l.Valid() {
		return false
	}
	if s.production && (l == TraceLevel || l == DebugLevel) {
		return false
	}
	s.level.Store(int32(l))
	return true
}
