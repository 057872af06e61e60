package services

import (
	"testing"

	"coursegen-backend/internal/models"
)

func TestPredictUserLevel(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		timeTaken float64
		want      models.UserLevel
	}{
		{"high score fast", 8, 50, models.LevelAdvanced},
		{"boundary score and time", 7, 80, models.LevelAdvanced},
		{"high score too slow", 8, 200, models.LevelBeginner},
		{"just over the time bar", 7, 80.0001, models.LevelBeginner},
		{"mid score", 5, 200, models.LevelIntermediate},
		{"mid score boundary low", 4, 30, models.LevelIntermediate},
		{"just under advanced score", 6.9, 30, models.LevelIntermediate},
		{"low score", 2, 30, models.LevelBeginner},
		{"zero everything", 0, 0, models.LevelBeginner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PredictUserLevel(models.QuizResult{Score: tc.score, TimeTaken: tc.timeTaken})
			if got != tc.want {
				t.Errorf("score=%v time=%v: expected %q, got %q", tc.score, tc.timeTaken, tc.want, got)
			}
		})
	}
}

func TestPredictUserLevel_SlowPerfectScoreSkipsIntermediate(t *testing.T) {
	// A slow 7+ fails the Advanced time bar and is above the
	// Intermediate score band, so it falls through to Beginner.
	got := PredictUserLevel(models.QuizResult{Score: 9, TimeTaken: 300})
	if got != models.LevelBeginner {
		t.Errorf("expected %q, got %q", models.LevelBeginner, got)
	}
}
