package models

// QuizResult carries a completed quiz score and its elapsed time in seconds.
type QuizResult struct {
	Score     float64 `json:"score"`
	TimeTaken float64 `json:"time_taken"`
}

// UserLevel is the classified skill level derived from a QuizResult.
type UserLevel string

const (
	LevelBeginner     UserLevel = "Beginner"
	LevelIntermediate UserLevel = "Intermediate"
	LevelAdvanced     UserLevel = "Advanced"
)
