package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"api/metrics"
	"api/models"
	"api/repository"
)

// BreakdownEntry is one judge's contribution inside a result group, in the
// order the score was recorded.
type BreakdownEntry struct {
	JudgeID        int                   `json:"judgeId"`
	JudgeName      string                `json:"judgeName"`
	Score          float64               `json:"score"`
	CriteriaScores models.CriteriaScores `json:"criteriaScores"`
}

// ContestantSummary embeds the contestant metadata a leaderboard row needs.
type ContestantSummary struct {
	ID     int    `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// CategorySummary embeds the category metadata a leaderboard row needs.
type CategorySummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Order  int    `json:"order"`
}

// ResultGroup is one leaderboard row: all judges' scores for one contestant
// in one category, with their accumulated total.
type ResultGroup struct {
	ID               string            `json:"_id"`
	Contestant       ContestantSummary `json:"contestant"`
	Category         CategorySummary   `json:"category"`
	Breakdown        []BreakdownEntry  `json:"breakdown"`
	TotalAccumulated float64           `json:"totalAccumulated"`
}

// GetResults loads every score with its joined metadata and folds them into
// the ranked leaderboard.
func GetResults(store repository.Store) ([]ResultGroup, error) {
	start := time.Now()
	defer func() {
		metrics.TabulationDuration.Observe(time.Since(start).Seconds())
	}()

	scores, err := store.ListScoresWithJoins()
	if err != nil {
		return nil, err
	}
	return BuildResults(scores), nil
}

type groupKey struct {
	contestantID int
	categoryID   int
}

// BuildResults groups scores by (contestant, category), accumulating each
// group's total as the sum of all contributing judges' totals (the event's
// scoring format adds judges' totals together, it does not average them).
// Groups are ordered by accumulated total descending; ties break by category
// display order, then contestant number, then contestant gender, so equal
// totals always rank deterministically.
//
// Scores whose contestant or category no longer resolves are skipped with a
// warning rather than failing the whole tabulation; a missing judge record
// only degrades the display name.
func BuildResults(scores []models.Score) []ResultGroup {
	groups := make(map[groupKey]*ResultGroup)
	order := make([]groupKey, 0, len(scores))

	for _, score := range scores {
		if score.Contestant == nil || score.Category == nil {
			log.Printf("Skipping score %d: dangling contestant or category reference", score.ID)
			continue
		}

		key := groupKey{score.ContestantID, score.CategoryID}
		group, exists := groups[key]
		if !exists {
			group = &ResultGroup{
				ID: fmt.Sprintf("%d-%d", score.ContestantID, score.CategoryID),
				Contestant: ContestantSummary{
					ID:     score.Contestant.ID,
					Number: score.Contestant.Number,
					Name:   score.Contestant.Name,
					Gender: score.Contestant.Gender,
				},
				Category: CategorySummary{
					ID:     score.Category.ID,
					Name:   score.Category.Name,
					Gender: score.Category.Gender,
					Order:  score.Category.Order,
				},
				Breakdown: []BreakdownEntry{},
			}
			groups[key] = group
			order = append(order, key)
		}

		group.Breakdown = append(group.Breakdown, BreakdownEntry{
			JudgeID:        score.JudgeID,
			JudgeName:      judgeName(score),
			Score:          score.TotalScore,
			CriteriaScores: score.CriteriaScores,
		})
		group.TotalAccumulated += score.TotalScore
	}

	results := make([]ResultGroup, 0, len(order))
	for _, key := range order {
		results = append(results, *groups[key])
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.TotalAccumulated != b.TotalAccumulated {
			return a.TotalAccumulated > b.TotalAccumulated
		}
		if a.Category.Order != b.Category.Order {
			return a.Category.Order < b.Category.Order
		}
		if a.Contestant.Number != b.Contestant.Number {
			return a.Contestant.Number < b.Contestant.Number
		}
		return a.Contestant.Gender < b.Contestant.Gender
	})

	return results
}

// judgeName resolves the display name for a score's judge, synthesizing a
// label when the judge record is stale. One bad judge reference must never
// take down the whole leaderboard.
func judgeName(score models.Score) string {
	if score.Judge != nil {
		return score.Judge.Name
	}
	return fmt.Sprintf("Judge %d", score.JudgeID)
}
