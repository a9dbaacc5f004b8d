// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rajat/learnhub/ent/attemptevent"
	"github.com/rajat/learnhub/ent/schema"
	"github.com/rajat/learnhub/ent/student"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescQuizID is the schema descriptor for quiz_id field.
	attempteventDescQuizID := attempteventFields[1].Descriptor()
	// attemptevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	attemptevent.QuizIDValidator = attempteventDescQuizID.Validators[0].(func(string) error)
	// attempteventDescQuizTitle is the schema descriptor for quiz_title field.
	attempteventDescQuizTitle := attempteventFields[2].Descriptor()
	// attemptevent.QuizTitleValidator is a validator for the "quiz_title" field. It is called by the builders before save.
	attemptevent.QuizTitleValidator = attempteventDescQuizTitle.Validators[0].(func(string) error)
	// attempteventDescSubject is the schema descriptor for subject field.
	attempteventDescSubject := attempteventFields[3].Descriptor()
	// attemptevent.DefaultSubject holds the default value on creation for the subject field.
	attemptevent.DefaultSubject = attempteventDescSubject.Default.(string)
	// attempteventDescTotal is the schema descriptor for total field.
	attempteventDescTotal := attempteventFields[4].Descriptor()
	// attemptevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	attemptevent.TotalValidator = attempteventDescTotal.Validators[0].(func(int) error)
	// attempteventDescCorrect is the schema descriptor for correct field.
	attempteventDescCorrect := attempteventFields[5].Descriptor()
	// attemptevent.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	attemptevent.CorrectValidator = attempteventDescCorrect.Validators[0].(func(int) error)
	// attempteventDescReported is the schema descriptor for reported field.
	attempteventDescReported := attempteventFields[8].Descriptor()
	// attemptevent.DefaultReported holds the default value on creation for the reported field.
	attemptevent.DefaultReported = attempteventDescReported.Default.(bool)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescStudentID is the schema descriptor for student_id field.
	studentDescStudentID := studentFields[0].Descriptor()
	// student.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	student.StudentIDValidator = studentDescStudentID.Validators[0].(func(string) error)
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[1].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescLoggedInAt is the schema descriptor for logged_in_at field.
	studentDescLoggedInAt := studentFields[3].Descriptor()
	// student.DefaultLoggedInAt holds the default value on creation for the logged_in_at field.
	student.DefaultLoggedInAt = studentDescLoggedInAt.Default.(func() time.Time)
}
