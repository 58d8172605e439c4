package services

import (
	"fmt"
	"math"

	"api/metrics"
	"api/models"
	"api/repository"
	"api/utils/apperrors"
)

// SubmitScore validates and persists one judge's judgment of one contestant
// in one category. The total is always recomputed server-side from the
// criteria mapping; any client-supplied total is ignored.
func SubmitScore(store repository.Store, judgeID, contestantID, categoryID int, criteriaScores models.CriteriaScores) (*models.Score, error) {
	if judgeID <= 0 || contestantID <= 0 || categoryID <= 0 {
		return nil, apperrors.New(apperrors.Validation, "judgeId, contestantId and categoryId are required")
	}
	if len(criteriaScores) == 0 {
		return nil, apperrors.New(apperrors.Validation, "criteriaScores must not be empty")
	}
	for name, points := range criteriaScores {
		if math.IsNaN(points) || math.IsInf(points, 0) || points < 0 {
			return nil, apperrors.New(apperrors.Validation,
				fmt.Sprintf("invalid value for criterion %q", name))
		}
	}

	// Referential integrity: every id must resolve before a score is accepted.
	if _, err := store.GetJudge(judgeID); err != nil {
		return nil, asValidation(err, "judgeId does not reference an existing judge")
	}
	if _, err := store.GetContestant(contestantID); err != nil {
		return nil, asValidation(err, "contestantId does not reference an existing contestant")
	}
	if _, err := store.GetCategory(categoryID); err != nil {
		return nil, asValidation(err, "categoryId does not reference an existing category")
	}

	score, created, err := store.UpsertScore(judgeID, contestantID, categoryID, criteriaScores, criteriaScores.Sum())
	if err != nil {
		return nil, err
	}

	outcome := "updated"
	if created {
		outcome = "created"
	}
	metrics.ScoreSubmissions.WithLabelValues(outcome).Inc()

	return score, nil
}

// asValidation downgrades a missing-record error to a request validation
// failure; store failures pass through untouched.
func asValidation(err error, msg string) error {
	if apperrors.Is(err, apperrors.NotFound) {
		return apperrors.New(apperrors.Validation, msg)
	}
	return err
}
