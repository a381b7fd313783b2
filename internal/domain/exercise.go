package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BodyPart is the muscle region an exercise primarily works.
type BodyPart string

const (
	BodyPartChest     BodyPart = "chest"
	BodyPartBack      BodyPart = "back"
	BodyPartLegs      BodyPart = "legs"
	BodyPartShoulders BodyPart = "shoulders"
	BodyPartArms      BodyPart = "arms"
	BodyPartCore      BodyPart = "core"
)

// AllBodyParts lists every body part in display order. The order is load
// bearing: split mappings and full-body day targets derive from it.
var AllBodyParts = []BodyPart{
	BodyPartChest,
	BodyPartBack,
	BodyPartLegs,
	BodyPartShoulders,
	BodyPartArms,
	BodyPartCore,
}

func (b BodyPart) Valid() bool {
	switch b {
	case BodyPartChest, BodyPartBack, BodyPartLegs, BodyPartShoulders, BodyPartArms, BodyPartCore:
		return true
	}
	return false
}

// Category describes how an exercise is performed.
type Category string

const (
	CategoryWeight     Category = "weight"
	CategoryBodyweight Category = "bodyweight"
	CategoryCardio     Category = "cardio"
	CategoryStretch    Category = "stretch"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWeight, CategoryBodyweight, CategoryCardio, CategoryStretch:
		return true
	}
	return false
}

// Difficulty is an ordered enumeration; Rank gives the ordering.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank maps a difficulty to its position in the ordering (1..3).
// Unknown values rank as 0 so they never pass a "<=" filter.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 0
}

func (d Difficulty) Valid() bool {
	return d.Rank() > 0
}

// Goal is a training goal an exercise targets (or a user pursues).
type Goal string

const (
	GoalMuscleGain Goal = "muscle_gain"
	GoalFatLoss    Goal = "fat_loss"
	GoalFitness    Goal = "fitness"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalMuscleGain, GoalFatLoss, GoalFitness:
		return true
	}
	return false
}

// Exercise is a single catalog record. Records are written through the
// catalog API and read-only everywhere else; the recommendation path only
// ever sees immutable snapshot copies.
type Exercise struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ExerciseID int64              `bson:"exerciseId" json:"exerciseId"` // Unique catalog identifier, used for deterministic ordering
	Name       string             `bson:"name" json:"name"`
	BodyPart   BodyPart           `bson:"bodyPart" json:"bodyPart"`
	Category   Category           `bson:"category" json:"category"`
	Difficulty Difficulty         `bson:"difficulty" json:"difficulty"`
	Duration   int                `bson:"durationMinutes" json:"durationMinutes"` // Estimated minutes to perform, always > 0
	Equipment  string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	TargetGoal Goal               `bson:"targetGoal" json:"targetGoal"`

	// Optional demo media stored in object storage. Responses carry
	// presigned URLs derived from these keys, never the keys themselves.
	VideoObjectKey string `bson:"videoObjectKey,omitempty" json:"-"`
	ImageObjectKey string `bson:"imageObjectKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the catalog record invariants.
func (e *Exercise) Validate() error {
	switch {
	case e.ExerciseID <= 0:
		return &FieldError{Field: "exerciseId", Reason: "must be a positive integer"}
	case e.Name == "":
		return &FieldError{Field: "name", Reason: "must not be empty"}
	case !e.BodyPart.Valid():
		return &FieldError{Field: "bodyPart", Reason: "unknown body part"}
	case !e.Category.Valid():
		return &FieldError{Field: "category", Reason: "unknown category"}
	case !e.Difficulty.Valid():
		return &FieldError{Field: "difficulty", Reason: "unknown difficulty"}
	case e.Duration <= 0:
		return &FieldError{Field: "durationMinutes", Reason: "must be greater than zero"}
	case !e.TargetGoal.Valid():
		return &FieldError{Field: "targetGoal", Reason: "unknown target goal"}
	}
	return nil
}
