// Package core defines the shared types used across scopelog.
//
// Level is the ordered severity enum (trace < debug < info < warn < error)
// used for filtering. Entry carries one emit call to a handler: its level,
// an optional scope label and the raw message values. Entries are pooled
// via sync.Pool; callers get one with GetEntry and return it with PutEntry
// once the handler has consumed it.
//
// LevelState owns the minimum level. One state is shared by a logger and
// all scoped loggers derived from it, so scope never changes a filtering
// decision. Reads and writes are atomic; the level check costs a single
// load and comparison.
package core
