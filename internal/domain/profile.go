package domain

import "fmt"

// SplitType is the policy partitioning a week's target body parts across days.
type SplitType string

const (
	SplitTwoWay   SplitType = "two_way"
	SplitThreeWay SplitType = "three_way"
	SplitFullBody SplitType = "full_body"
)

func (s SplitType) Valid() bool {
	switch s {
	case SplitTwoWay, SplitThreeWay, SplitFullBody:
		return true
	}
	return false
}

// FieldError reports a validation failure with the offending field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UserGoalProfile is the request-scoped input to routine building.
// It is never persisted; a fresh value is constructed and validated at the
// API boundary for every request.
type UserGoalProfile struct {
	WeeklyFrequency      int        `json:"weeklyFrequency"`
	SplitType            SplitType  `json:"splitType"`
	PrimaryGoal          Goal       `json:"primaryGoal"`
	ExperienceLevel      Difficulty `json:"experienceLevel"`
	AvailableTimeMinutes int        `json:"availableTimeMinutes"`
}

// Validate rejects malformed profiles with a field-level reason. A profile
// that passes is a hard precondition for the assembler: no value checked
// here is re-checked downstream.
func (p *UserGoalProfile) Validate() error {
	if p.WeeklyFrequency < 1 || p.WeeklyFrequency > 7 {
		return &FieldError{Field: "weeklyFrequency", Reason: "must be between 1 and 7"}
	}
	if !p.SplitType.Valid() {
		return &FieldError{Field: "splitType", Reason: "must be one of two_way, three_way, full_body"}
	}
	if !p.PrimaryGoal.Valid() {
		return &FieldError{Field: "primaryGoal", Reason: "must be one of muscle_gain, fat_loss, fitness"}
	}
	if !p.ExperienceLevel.Valid() {
		return &FieldError{Field: "experienceLevel", Reason: "must be one of beginner, intermediate, advanced"}
	}
	if p.AvailableTimeMinutes <= 0 {
		return &FieldError{Field: "availableTimeMinutes", Reason: "must be greater than zero"}
	}
	return nil
}
