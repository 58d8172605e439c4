package repository

import (
	"api/models"
)

// Store is the narrow persistence contract the handlers and services depend
// on. Keeping it small lets the upsert and tabulation logic run against an
// in-memory database in tests.
type Store interface {
	// FindJudgeByPin looks up a judge by their PIN credential.
	FindJudgeByPin(pin string) (*models.Judge, error)

	// GetJudge, GetContestant and GetCategory resolve single records by id;
	// used for referential validation before a score is accepted.
	GetJudge(id int) (*models.Judge, error)
	GetContestant(id int) (*models.Contestant, error)
	GetCategory(id int) (*models.Category, error)

	// ListCategories returns all categories ordered by display order.
	ListCategories() ([]models.Category, error)

	// ListContestants returns all contestants ordered by number.
	ListContestants() ([]models.Contestant, error)

	// ListScoresForJudge returns the scores one judge has submitted so far.
	ListScoresForJudge(judgeID int) ([]models.Score, error)

	// ListScoresWithJoins returns every score with its judge, contestant and
	// category records resolved. Association pointers are nil when the
	// referenced record no longer exists.
	ListScoresWithJoins() ([]models.Score, error)

	// UpsertScore stores the unique score for a (judge, contestant, category)
	// triple: updates in place when one exists, inserts otherwise. A
	// concurrent insert for the same triple is retried as an update. The
	// bool reports whether a new record was created.
	UpsertScore(judgeID, contestantID, categoryID int, criteriaScores models.CriteriaScores, totalScore float64) (*models.Score, bool, error)

	// Ping verifies the store connection is alive.
	Ping() error
}
