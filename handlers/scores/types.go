package scores

import (
	"api/models"
	"api/repository"
)

// Constants for error messages
const (
	ErrInvalidRequest = "judgeId, contestantId, categoryId and criteriaScores are required"
)

// Handler holds the injected store for the score endpoints
type Handler struct {
	store repository.Store
}

// SubmitScoreRequest model for score submission. Any client-supplied total
// is deliberately absent: the server derives the total from criteriaScores.
type SubmitScoreRequest struct {
	JudgeID        int                   `json:"judgeId" binding:"required"`
	ContestantID   int                   `json:"contestantId" binding:"required"`
	CategoryID     int                   `json:"categoryId" binding:"required"`
	CriteriaScores models.CriteriaScores `json:"criteriaScores" binding:"required"`
}
