package services

import "coursegen-backend/internal/models"

// PredictUserLevel maps a quiz outcome to a proficiency level. Advanced
// requires both a high score and a fast completion; a slow perfect score
// still lands on Beginner because speed is part of the bar.
func PredictUserLevel(result models.QuizResult) models.UserLevel {
	switch {
	case result.Score >= 7 && result.TimeTaken <= 80:
		return models.LevelAdvanced
	case result.Score >= 4 && result.Score < 7:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}
