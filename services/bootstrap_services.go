package services

import (
	"api/models"
	"api/repository"
)

// BootstrapData is everything a scoring client needs to render its form:
// the category list in display order, the contestant roster in number order,
// and the requesting judge's previously submitted scores.
type BootstrapData struct {
	Categories  []models.Category   `json:"categories"`
	Contestants []models.Contestant `json:"contestants"`
	Scores      []models.Score      `json:"scores"`
}

// GetBootstrapData assembles the initial data set. When judgeID is nil (the
// admin view, or an unparsable judge id) the score set is empty.
func GetBootstrapData(store repository.Store, judgeID *int) (*BootstrapData, error) {
	categories, err := store.ListCategories()
	if err != nil {
		return nil, err
	}

	contestants, err := store.ListContestants()
	if err != nil {
		return nil, err
	}

	scores := []models.Score{}
	if judgeID != nil {
		scores, err = store.ListScoresForJudge(*judgeID)
		if err != nil {
			return nil, err
		}
		if scores == nil {
			scores = []models.Score{}
		}
	}

	return &BootstrapData{
		Categories:  categories,
		Contestants: contestants,
		Scores:      scores,
	}, nil
}
