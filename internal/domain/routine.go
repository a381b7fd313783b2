package domain

import "time"

// Prescription is the templated sets/reps/rest guidance attached to a
// selected exercise. Values come from fixed per-category tables, nothing
// here is learned or user-specific beyond goal and experience level.
type Prescription struct {
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`             // "8-12", "20 min", "30 sec hold"
	Rest   string `json:"rest"`             // "2-3 min", "none"
	Weight string `json:"weight,omitempty"` // Guidance for weight exercises only
}

// RoutineExercise is one selected catalog entry inside a routine day.
type RoutineExercise struct {
	ExerciseID   int64        `json:"exerciseId"`
	Name         string       `json:"name"`
	BodyPart     BodyPart     `json:"bodyPart"`
	Category     Category     `json:"category"`
	Difficulty   Difficulty   `json:"difficulty"`
	Duration     int          `json:"durationMinutes"`
	Equipment    string       `json:"equipment,omitempty"`
	Prescription Prescription `json:"prescription"`

	// Optional enrichment from the external video provider. Absent unless
	// the caller asked for it and the lookup succeeded.
	Video *VideoInfo `json:"video,omitempty"`
}

// VideoInfo is the reshaped subset of an external video search hit that we
// attach to a routine entry.
type VideoInfo struct {
	VideoID     int64  `json:"videoId"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl,omitempty"`
	LengthSecs  int    `json:"lengthSeconds,omitempty"`
	TargetGroup string `json:"targetGroup,omitempty"`
}

// RoutineDay is one day of a weekly routine. Derived and ephemeral: built
// per request, returned, discarded.
type RoutineDay struct {
	Day             int               `json:"day"` // 1-based calendar index within the week
	TargetBodyParts []BodyPart        `json:"targetBodyParts"`
	Exercises       []RoutineExercise `json:"exercises"`
	Duration        int               `json:"estimatedDurationMinutes"`
	TimeConstrained bool              `json:"timeConstrained"`
	Notes           []string          `json:"notes,omitempty"` // e.g. body parts with no catalog match
}

// WeeklyRoutine is the full assembler output.
type WeeklyRoutine struct {
	RoutineID       string       `json:"routineId"`
	Days            []RoutineDay `json:"days"`
	TotalDuration   int          `json:"totalWeeklyDurationMinutes"`
	DifficultyScore float64      `json:"difficultyScore"` // 1.0-5.0 display scale
	Tips            []string     `json:"tips"`
	CreatedAt       time.Time    `json:"createdAt"`
}
