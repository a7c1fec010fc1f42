// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/memoryfact"
)

// MemoryFact is the model entity for the MemoryFact schema.
type MemoryFact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SubjectKind holds the value of the "subject_kind" field.
	SubjectKind memoryfact.SubjectKind `json:"subject_kind,omitempty"`
	// Empty when the fact is not tied to a subject; part of the idempotence key
	SubjectID string `json:"subject_id,omitempty"`
	// Fact body (full-text searchable)
	Text string `json:"text,omitempty"`
	// Importance holds the value of the "importance" field.
	Importance float64 `json:"importance,omitempty"`
	// Opaque vector blob, unused unless a vector index is configured
	Embedding *[]byte `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastAccessedAt holds the value of the "last_accessed_at" field.
	LastAccessedAt time.Time `json:"last_accessed_at,omitempty"`
	// AccessCount holds the value of the "access_count" field.
	AccessCount  int `json:"access_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryFact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryfact.FieldEmbedding:
			values[i] = new([]byte)
		case memoryfact.FieldImportance:
			values[i] = new(sql.NullFloat64)
		case memoryfact.FieldAccessCount:
			values[i] = new(sql.NullInt64)
		case memoryfact.FieldID, memoryfact.FieldUserID, memoryfact.FieldSubjectKind, memoryfact.FieldSubjectID, memoryfact.FieldText:
			values[i] = new(sql.NullString)
		case memoryfact.FieldCreatedAt, memoryfact.FieldLastAccessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryFact fields.
func (_m *MemoryFact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryfact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryfact.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case memoryfact.FieldSubjectKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_kind", values[i])
			} else if value.Valid {
				_m.SubjectKind = memoryfact.SubjectKind(value.String)
			}
		case memoryfact.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case memoryfact.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case memoryfact.FieldImportance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field importance", values[i])
			} else if value.Valid {
				_m.Importance = value.Float64
			}
		case memoryfact.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = value
			}
		case memoryfact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case memoryfact.FieldLastAccessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed_at", values[i])
			} else if value.Valid {
				_m.LastAccessedAt = value.Time
			}
		case memoryfact.FieldAccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field access_count", values[i])
			} else if value.Valid {
				_m.AccessCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryFact.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryFact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MemoryFact.
// Note that you need to call MemoryFact.Unwrap() before calling this method if this MemoryFact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryFact) Update() *MemoryFactUpdateOne {
	return NewMemoryFactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryFact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryFact) Unwrap() *MemoryFact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryFact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryFact) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryFact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectKind))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("importance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Importance))
	builder.WriteString(", ")
	if v := _m.Embedding; v != nil {
		builder.WriteString("embedding=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_accessed_at=")
	builder.WriteString(_m.LastAccessedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("access_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessCount))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryFacts is a parsable slice of MemoryFact.
type MemoryFacts []*MemoryFact
