// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// EmoCurrent is the predicate function for emocurrent builders.
type EmoCurrent func(*sql.Selector)

// EmoHistory is the predicate function for emohistory builders.
type EmoHistory func(*sql.Selector)

// EmoLink is the predicate function for emolink builders.
type EmoLink func(*sql.Selector)

// GraphEdge is the predicate function for graphedge builders.
type GraphEdge func(*sql.Selector)

// GraphNode is the predicate function for graphnode builders.
type GraphNode func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// NoteLink is the predicate function for notelink builders.
type NoteLink func(*sql.Selector)

// NoteTag is the predicate function for notetag builders.
type NoteTag func(*sql.Selector)

// OutboxEntry is the predicate function for outboxentry builders.
type OutboxEntry func(*sql.Selector)

// Watermark is the predicate function for watermark builders.
type Watermark func(*sql.Selector)

// WorldEvent is the predicate function for worldevent builders.
type WorldEvent func(*sql.Selector)
