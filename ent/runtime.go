// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stewardhq/steward/ent/actionlog"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/ent/event"
	"github.com/stewardhq/steward/ent/feedback"
	"github.com/stewardhq/steward/ent/interaction"
	"github.com/stewardhq/steward/ent/memoryfact"
	"github.com/stewardhq/steward/ent/schema"
	"github.com/stewardhq/steward/ent/turn"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionlogFields := schema.ActionLog{}.Fields()
	_ = actionlogFields
	// actionlogDescTimestamp is the schema descriptor for timestamp field.
	actionlogDescTimestamp := actionlogFields[6].Descriptor()
	// actionlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	actionlog.DefaultTimestamp = actionlogDescTimestamp.Default.(func() time.Time)
	episodeFields := schema.Episode{}.Fields()
	_ = episodeFields
	// episodeDescStartedAt is the schema descriptor for started_at field.
	episodeDescStartedAt := episodeFields[4].Descriptor()
	// episode.DefaultStartedAt holds the default value on creation for the started_at field.
	episode.DefaultStartedAt = episodeDescStartedAt.Default.(func() time.Time)
	// episodeDescLastActivityAt is the schema descriptor for last_activity_at field.
	episodeDescLastActivityAt := episodeFields[5].Descriptor()
	// episode.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	episode.DefaultLastActivityAt = episodeDescLastActivityAt.Default.(func() time.Time)
	// episodeDescTimeoutMinutes is the schema descriptor for timeout_minutes field.
	episodeDescTimeoutMinutes := episodeFields[6].Descriptor()
	// episode.TimeoutMinutesValidator is a validator for the "timeout_minutes" field. It is called by the builders before save.
	episode.TimeoutMinutesValidator = episodeDescTimeoutMinutes.Validators[0].(func(int) error)
	// episodeDescMessageCount is the schema descriptor for message_count field.
	episodeDescMessageCount := episodeFields[7].Descriptor()
	// episode.DefaultMessageCount holds the default value on creation for the message_count field.
	episode.DefaultMessageCount = episodeDescMessageCount.Default.(int)
	// episode.MessageCountValidator is a validator for the "message_count" field. It is called by the builders before save.
	episode.MessageCountValidator = episodeDescMessageCount.Validators[0].(func(int) error)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescUserID is the schema descriptor for user_id field.
	eventDescUserID := eventFields[1].Descriptor()
	// event.DefaultUserID holds the default value on creation for the user_id field.
	event.DefaultUserID = eventDescUserID.Default.(string)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[6].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescResponseTimeMs is the schema descriptor for response_time_ms field.
	interactionDescResponseTimeMs := interactionFields[4].Descriptor()
	// interaction.ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	interaction.ResponseTimeMsValidator = interactionDescResponseTimeMs.Validators[0].(func(int) error)
	// interactionDescTaskCompleted is the schema descriptor for task_completed field.
	interactionDescTaskCompleted := interactionFields[5].Descriptor()
	// interaction.DefaultTaskCompleted holds the default value on creation for the task_completed field.
	interaction.DefaultTaskCompleted = interactionDescTaskCompleted.Default.(bool)
	// interactionDescCreatedAt is the schema descriptor for created_at field.
	interactionDescCreatedAt := interactionFields[9].Descriptor()
	// interaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	interaction.DefaultCreatedAt = interactionDescCreatedAt.Default.(func() time.Time)
	memoryfactFields := schema.MemoryFact{}.Fields()
	_ = memoryfactFields
	// memoryfactDescSubjectID is the schema descriptor for subject_id field.
	memoryfactDescSubjectID := memoryfactFields[3].Descriptor()
	// memoryfact.DefaultSubjectID holds the default value on creation for the subject_id field.
	memoryfact.DefaultSubjectID = memoryfactDescSubjectID.Default.(string)
	// memoryfactDescText is the schema descriptor for text field.
	memoryfactDescText := memoryfactFields[4].Descriptor()
	// memoryfact.TextValidator is a validator for the "text" field. It is called by the builders before save.
	memoryfact.TextValidator = memoryfactDescText.Validators[0].(func(string) error)
	// memoryfactDescImportance is the schema descriptor for importance field.
	memoryfactDescImportance := memoryfactFields[5].Descriptor()
	// memoryfact.DefaultImportance holds the default value on creation for the importance field.
	memoryfact.DefaultImportance = memoryfactDescImportance.Default.(float64)
	// memoryfact.ImportanceValidator is a validator for the "importance" field. It is called by the builders before save.
	memoryfact.ImportanceValidator = func() func(float64) error {
		validators := memoryfactDescImportance.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(importance float64) error {
			for _, fn := range fns {
				if err := fn(importance); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// memoryfactDescCreatedAt is the schema descriptor for created_at field.
	memoryfactDescCreatedAt := memoryfactFields[7].Descriptor()
	// memoryfact.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryfact.DefaultCreatedAt = memoryfactDescCreatedAt.Default.(func() time.Time)
	// memoryfactDescLastAccessedAt is the schema descriptor for last_accessed_at field.
	memoryfactDescLastAccessedAt := memoryfactFields[8].Descriptor()
	// memoryfact.DefaultLastAccessedAt holds the default value on creation for the last_accessed_at field.
	memoryfact.DefaultLastAccessedAt = memoryfactDescLastAccessedAt.Default.(func() time.Time)
	// memoryfactDescAccessCount is the schema descriptor for access_count field.
	memoryfactDescAccessCount := memoryfactFields[9].Descriptor()
	// memoryfact.DefaultAccessCount holds the default value on creation for the access_count field.
	memoryfact.DefaultAccessCount = memoryfactDescAccessCount.Default.(int)
	// memoryfact.AccessCountValidator is a validator for the "access_count" field. It is called by the builders before save.
	memoryfact.AccessCountValidator = memoryfactDescAccessCount.Validators[0].(func(int) error)
	turnFields := schema.Turn{}.Fields()
	_ = turnFields
	// turnDescCreatedAt is the schema descriptor for created_at field.
	turnDescCreatedAt := turnFields[4].Descriptor()
	// turn.DefaultCreatedAt holds the default value on creation for the created_at field.
	turn.DefaultCreatedAt = turnDescCreatedAt.Default.(func() time.Time)
}
