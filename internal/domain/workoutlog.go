package domain

// Intensity is the user-reported effort for one logged exercise.
type Intensity string

const (
	IntensityHigh   Intensity = "high"
	IntensityMedium Intensity = "medium"
	IntensityLow    Intensity = "low"
)

// LoggedExerciseInfo describes the exercise referenced by a log entry, as
// delivered by the external journal provider.
type LoggedExerciseInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	BodyPart    string   `json:"bodyPart,omitempty"`
	Tool        string   `json:"exerciseTool,omitempty"`
	Muscles     []string `json:"muscles,omitempty"`
}

// LoggedExercise is one performed exercise inside a workout log.
type LoggedExercise struct {
	Exercise     LoggedExerciseInfo `json:"exercise"`
	ExerciseTime int                `json:"exerciseTime"` // minutes
	Intensity    Intensity          `json:"intensity"`
}

// WorkoutLog is a user-submitted workout journal for a single day. The
// shape mirrors the external journal API payload; we forward it to the LLM
// provider and derive rule-based statistics from it, but never store it.
type WorkoutLog struct {
	Date      string           `json:"date"`
	Memo      string           `json:"memo,omitempty"`
	Exercises []LoggedExercise `json:"exercises"`
}
