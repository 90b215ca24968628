package service

import (
	"testing"
	"time"

	"github.com/gostays/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTransitionValues(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("first move to IN_PROGRESS stamps started_at", func(t *testing.T) {
		progress := &model.TrainingProgress{Status: model.TrainingNotStarted}

		values := transitionValues(progress, model.TrainingInProgress, now)

		assert.Equal(t, "IN_PROGRESS", values["status"])
		assert.Equal(t, now, values["started_at"])
		assert.Equal(t, now, values["last_accessed_at"])
		assert.NotContains(t, values, "completed_at")
	})

	t.Run("repeat IN_PROGRESS keeps original start time", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		progress := &model.TrainingProgress{
			Status:    model.TrainingInProgress,
			StartedAt: &earlier,
		}

		values := transitionValues(progress, model.TrainingInProgress, now)

		assert.NotContains(t, values, "started_at")
		assert.Equal(t, now, values["last_accessed_at"])
	})

	t.Run("first COMPLETED stamps completed_at", func(t *testing.T) {
		started := now.Add(-time.Hour)
		progress := &model.TrainingProgress{
			Status:    model.TrainingInProgress,
			StartedAt: &started,
		}

		values := transitionValues(progress, model.TrainingCompleted, now)

		assert.Equal(t, "COMPLETED", values["status"])
		assert.Equal(t, now, values["completed_at"])
	})

	t.Run("repeat COMPLETED keeps original completion time", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		progress := &model.TrainingProgress{
			Status:      model.TrainingCompleted,
			CompletedAt: &earlier,
		}

		values := transitionValues(progress, model.TrainingCompleted, now)

		assert.NotContains(t, values, "completed_at")
	})

	t.Run("FAILED only touches status and access time", func(t *testing.T) {
		progress := &model.TrainingProgress{Status: model.TrainingInProgress}

		values := transitionValues(progress, model.TrainingFailed, now)

		assert.Equal(t, "FAILED", values["status"])
		assert.NotContains(t, values, "started_at")
		assert.NotContains(t, values, "completed_at")
	})
}

func TestValidTrainingStatus(t *testing.T) {
	assert.True(t, validTrainingStatus(model.TrainingNotStarted))
	assert.True(t, validTrainingStatus(model.TrainingInProgress))
	assert.True(t, validTrainingStatus(model.TrainingCompleted))
	assert.True(t, validTrainingStatus(model.TrainingFailed))
	assert.False(t, validTrainingStatus("PAUSED"))
	assert.False(t, validTrainingStatus(""))
}

func TestGradeQuiz(t *testing.T) {
	questions := map[string]string{
		"q1": "Paris",
		"q2": "42",
		"q3": "true",
	}

	t.Run("all correct", func(t *testing.T) {
		correct, total := gradeQuiz(questions, map[string]string{
			"q1": "Paris", "q2": "42", "q3": "true",
		})

		assert.Equal(t, 3, correct)
		assert.Equal(t, 3, total)
	})

	t.Run("comparison is exact", func(t *testing.T) {
		correct, _ := gradeQuiz(questions, map[string]string{
			"q1": "paris", "q2": " 42", "q3": "true",
		})

		assert.Equal(t, 1, correct)
	})

	t.Run("unanswered counts as wrong", func(t *testing.T) {
		correct, total := gradeQuiz(questions, map[string]string{"q1": "Paris"})

		assert.Equal(t, 1, correct)
		assert.Equal(t, 3, total)
	})

	t.Run("extra answers are ignored", func(t *testing.T) {
		correct, total := gradeQuiz(questions, map[string]string{
			"q1": "Paris", "q9": "bogus",
		})

		assert.Equal(t, 1, correct)
		assert.Equal(t, 3, total)
	})

	t.Run("no answers", func(t *testing.T) {
		correct, total := gradeQuiz(questions, nil)

		assert.Equal(t, 0, correct)
		assert.Equal(t, 3, total)
	})
}
