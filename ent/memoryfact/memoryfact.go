// Code generated by ent, DO NOT EDIT.

package memoryfact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryfact type in the database.
	Label = "memory_fact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "fact_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubjectKind holds the string denoting the subject_kind field in the database.
	FieldSubjectKind = "subject_kind"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldImportance holds the string denoting the importance field in the database.
	FieldImportance = "importance"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastAccessedAt holds the string denoting the last_accessed_at field in the database.
	FieldLastAccessedAt = "last_accessed_at"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// Table holds the table name of the memoryfact in the database.
	Table = "memory_facts"
)

// Columns holds all SQL columns for memoryfact fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubjectKind,
	FieldSubjectID,
	FieldText,
	FieldImportance,
	FieldEmbedding,
	FieldCreatedAt,
	FieldLastAccessedAt,
	FieldAccessCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSubjectID holds the default value on creation for the "subject_id" field.
	DefaultSubjectID string
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultImportance holds the default value on creation for the "importance" field.
	DefaultImportance float64
	// ImportanceValidator is a validator for the "importance" field. It is called by the builders before save.
	ImportanceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastAccessedAt holds the default value on creation for the "last_accessed_at" field.
	DefaultLastAccessedAt func() time.Time
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int
	// AccessCountValidator is a validator for the "access_count" field. It is called by the builders before save.
	AccessCountValidator func(int) error
)

// SubjectKind defines the type for the "subject_kind" enum field.
type SubjectKind string

// SubjectKindGeneral is the default value of the SubjectKind enum.
const DefaultSubjectKind = SubjectKindGeneral

// SubjectKind values.
const (
	SubjectKindPerson  SubjectKind = "person"
	SubjectKindProject SubjectKind = "project"
	SubjectKindGeneral SubjectKind = "general"
)

func (sk SubjectKind) String() string {
	return string(sk)
}

// SubjectKindValidator is a validator for the "subject_kind" field enum values. It is called by the builders before save.
func SubjectKindValidator(sk SubjectKind) error {
	switch sk {
	case SubjectKindPerson, SubjectKindProject, SubjectKindGeneral:
		return nil
	default:
		return fmt.Errorf("memoryfact: invalid enum value for subject_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the MemoryFact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubjectKind orders the results by the subject_kind field.
func BySubjectKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectKind, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByImportance orders the results by the importance field.
func ByImportance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportance, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastAccessedAt orders the results by the last_accessed_at field.
func ByLastAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessedAt, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}
