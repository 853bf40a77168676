package core

import (
	"sync"
)

// Entry is a single emit call: a level, an optional scope and the
// caller's message values in order.
type Entry struct {
	Level    Level
	Scope    string
	Messages []any
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Messages: make([]any, 0, 8),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Scope = ""
	e.Messages = e.Messages[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Drop references so pooled entries don't pin caller values
	clear(e.Messages)
	e.Messages = e.Messages[:0]
	e.Scope = ""
	entryPool.Put(e)
}
