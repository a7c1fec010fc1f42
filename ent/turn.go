// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/ent/turn"
)

// Turn is the model entity for the Turn schema.
type Turn struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EpisodeID holds the value of the "episode_id" field.
	EpisodeID string `json:"episode_id,omitempty"`
	// UserText holds the value of the "user_text" field.
	UserText string `json:"user_text,omitempty"`
	// AssistantText holds the value of the "assistant_text" field.
	AssistantText string `json:"assistant_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TurnQuery when eager-loading is set.
	Edges        TurnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TurnEdges holds the relations/edges for other nodes in the graph.
type TurnEdges struct {
	// Episode holds the value of the episode edge.
	Episode *Episode `json:"episode,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EpisodeOrErr returns the Episode value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TurnEdges) EpisodeOrErr() (*Episode, error) {
	if e.Episode != nil {
		return e.Episode, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: episode.Label}
	}
	return nil, &NotLoadedError{edge: "episode"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Turn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turn.FieldID, turn.FieldEpisodeID, turn.FieldUserText, turn.FieldAssistantText:
			values[i] = new(sql.NullString)
		case turn.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Turn fields.
func (_m *Turn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turn.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case turn.FieldEpisodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field episode_id", values[i])
			} else if value.Valid {
				_m.EpisodeID = value.String
			}
		case turn.FieldUserText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_text", values[i])
			} else if value.Valid {
				_m.UserText = value.String
			}
		case turn.FieldAssistantText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assistant_text", values[i])
			} else if value.Valid {
				_m.AssistantText = value.String
			}
		case turn.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Turn.
// This includes values selected through modifiers, order, etc.
func (_m *Turn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEpisode queries the "episode" edge of the Turn entity.
func (_m *Turn) QueryEpisode() *EpisodeQuery {
	return NewTurnClient(_m.config).QueryEpisode(_m)
}

// Update returns a builder for updating this Turn.
// Note that you need to call Turn.Unwrap() before calling this method if this Turn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Turn) Update() *TurnUpdateOne {
	return NewTurnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Turn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Turn) Unwrap() *Turn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Turn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Turn) String() string {
	var builder strings.Builder
	builder.WriteString("Turn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("episode_id=")
	builder.WriteString(_m.EpisodeID)
	builder.WriteString(", ")
	builder.WriteString("user_text=")
	builder.WriteString(_m.UserText)
	builder.WriteString(", ")
	builder.WriteString("assistant_text=")
	builder.WriteString(_m.AssistantText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Turns is a parsable slice of Turn.
type Turns []*Turn
