// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionLog is the predicate function for actionlog builders.
type ActionLog func(*sql.Selector)

// Episode is the predicate function for episode builders.
type Episode func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// MemoryFact is the predicate function for memoryfact builders.
type MemoryFact func(*sql.Selector)

// Turn is the predicate function for turn builders.
type Turn func(*sql.Selector)
