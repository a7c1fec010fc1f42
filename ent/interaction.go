// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/interaction"
)

// Interaction is the model entity for the Interaction schema.
type Interaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// RequestText holds the value of the "request_text" field.
	RequestText string `json:"request_text,omitempty"`
	// ResponseText holds the value of the "response_text" field.
	ResponseText string `json:"response_text,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int `json:"response_time_ms,omitempty"`
	// TaskCompleted holds the value of the "task_completed" field.
	TaskCompleted bool `json:"task_completed,omitempty"`
	// Implicit client signal
	EngagementDurationMs *int `json:"engagement_duration_ms,omitempty"`
	// Implicit client signal
	FollowUpIn60s *bool `json:"follow_up_in_60s,omitempty"`
	// Episode id, executed experts, partial flag
	Context map[string]interface{} `json:"context,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InteractionQuery when eager-loading is set.
	Edges        InteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InteractionEdges holds the relations/edges for other nodes in the graph.
type InteractionEdges struct {
	// Feedbacks holds the value of the feedbacks edge.
	Feedbacks []*Feedback `json:"feedbacks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FeedbacksOrErr returns the Feedbacks value or an error if the edge
// was not loaded in eager-loading.
func (e InteractionEdges) FeedbacksOrErr() ([]*Feedback, error) {
	if e.loadedTypes[0] {
		return e.Feedbacks, nil
	}
	return nil, &NotLoadedError{edge: "feedbacks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interaction.FieldContext:
			values[i] = new([]byte)
		case interaction.FieldTaskCompleted, interaction.FieldFollowUpIn60s:
			values[i] = new(sql.NullBool)
		case interaction.FieldResponseTimeMs, interaction.FieldEngagementDurationMs:
			values[i] = new(sql.NullInt64)
		case interaction.FieldID, interaction.FieldUserID, interaction.FieldRequestText, interaction.FieldResponseText:
			values[i] = new(sql.NullString)
		case interaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interaction fields.
func (_m *Interaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interaction.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case interaction.FieldRequestText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_text", values[i])
			} else if value.Valid {
				_m.RequestText = value.String
			}
		case interaction.FieldResponseText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_text", values[i])
			} else if value.Valid {
				_m.ResponseText = value.String
			}
		case interaction.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = int(value.Int64)
			}
		case interaction.FieldTaskCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field task_completed", values[i])
			} else if value.Valid {
				_m.TaskCompleted = value.Bool
			}
		case interaction.FieldEngagementDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_duration_ms", values[i])
			} else if value.Valid {
				_m.EngagementDurationMs = new(int)
				*_m.EngagementDurationMs = int(value.Int64)
			}
		case interaction.FieldFollowUpIn60s:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_in_60s", values[i])
			} else if value.Valid {
				_m.FollowUpIn60s = new(bool)
				*_m.FollowUpIn60s = value.Bool
			}
		case interaction.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case interaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Interaction.
// This includes values selected through modifiers, order, etc.
func (_m *Interaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFeedbacks queries the "feedbacks" edge of the Interaction entity.
func (_m *Interaction) QueryFeedbacks() *FeedbackQuery {
	return NewInteractionClient(_m.config).QueryFeedbacks(_m)
}

// Update returns a builder for updating this Interaction.
// Note that you need to call Interaction.Unwrap() before calling this method if this Interaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interaction) Update() *InteractionUpdateOne {
	return NewInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interaction) Unwrap() *Interaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interaction) String() string {
	var builder strings.Builder
	builder.WriteString("Interaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("request_text=")
	builder.WriteString(_m.RequestText)
	builder.WriteString(", ")
	builder.WriteString("response_text=")
	builder.WriteString(_m.ResponseText)
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	builder.WriteString("task_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskCompleted))
	builder.WriteString(", ")
	if v := _m.EngagementDurationMs; v != nil {
		builder.WriteString("engagement_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FollowUpIn60s; v != nil {
		builder.WriteString("follow_up_in_60s=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interactions is a parsable slice of Interaction.
type Interactions []*Interaction
