package services

import (
	"testing"

	"api/database"
	"api/models"
	"api/repository"
	"api/utils/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *repository.GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return repository.NewGormStore(db)
}

func seedEvent(t *testing.T, store *repository.GormStore) (models.Judge, models.Contestant, models.Category) {
	t.Helper()

	judge := models.Judge{Name: "Judge 1", Pin: "1111"}
	require.NoError(t, store.DB.Create(&judge).Error)
	contestant := models.Contestant{Number: 1, Name: "Gayapa, Eco", Gender: "Male"}
	require.NoError(t, store.DB.Create(&contestant).Error)
	category := models.Category{
		Name: "College Uniform - Male", Gender: "Male", Order: 1,
		Criteria: models.CriterionList{
			{Name: "Runway", MaxScore: 40},
			{Name: "Attire Presentation", MaxScore: 40},
			{Name: "Introduction", MaxScore: 10},
			{Name: "Overall Impression", MaxScore: 10},
		},
	}
	require.NoError(t, store.DB.Create(&category).Error)
	return judge, contestant, category
}

func TestSubmitScoreDerivesTotal(t *testing.T) {
	store := newTestStore(t)
	judge, contestant, category := seedEvent(t, store)

	score, err := SubmitScore(store, judge.ID, contestant.ID, category.ID, models.CriteriaScores{
		"Runway": 35, "Attire Presentation": 38, "Introduction": 9, "Overall Impression": 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 91.0, score.TotalScore, "total is the sum of the criteria values")
}

func TestSubmitScoreIsIdempotentPerTriple(t *testing.T) {
	store := newTestStore(t)
	judge, contestant, category := seedEvent(t, store)

	first, err := SubmitScore(store, judge.ID, contestant.ID, category.ID,
		models.CriteriaScores{"Runway": 35})
	require.NoError(t, err)

	second, err := SubmitScore(store, judge.ID, contestant.ID, category.ID,
		models.CriteriaScores{"Runway": 38})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 38.0, second.TotalScore, "the second submission's values win")

	var count int64
	store.DB.Model(&models.Score{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitScoreValidation(t *testing.T) {
	store := newTestStore(t)
	judge, contestant, category := seedEvent(t, store)

	t.Run("missing ids", func(t *testing.T) {
		_, err := SubmitScore(store, 0, contestant.ID, category.ID, models.CriteriaScores{"Runway": 10})
		assert.True(t, apperrors.Is(err, apperrors.Validation))
	})

	t.Run("empty criteria mapping", func(t *testing.T) {
		_, err := SubmitScore(store, judge.ID, contestant.ID, category.ID, models.CriteriaScores{})
		assert.True(t, apperrors.Is(err, apperrors.Validation))
	})

	t.Run("negative criterion value", func(t *testing.T) {
		_, err := SubmitScore(store, judge.ID, contestant.ID, category.ID, models.CriteriaScores{"Runway": -1})
		assert.True(t, apperrors.Is(err, apperrors.Validation))
	})

	t.Run("dangling judge reference", func(t *testing.T) {
		_, err := SubmitScore(store, 999, contestant.ID, category.ID, models.CriteriaScores{"Runway": 10})
		assert.True(t, apperrors.Is(err, apperrors.Validation))
	})

	t.Run("dangling contestant reference", func(t *testing.T) {
		_, err := SubmitScore(store, judge.ID, 999, category.ID, models.CriteriaScores{"Runway": 10})
		assert.True(t, apperrors.Is(err, apperrors.Validation))
	})

	t.Run("dangling category reference", func(t *testing.T) {
		_, err := SubmitScore(store, judge.ID, contestant.ID, 999, models.CriteriaScores{"Runway": 10})
		assert.True(t, apperrors.Is(err, apperrors.Validation))
	})
}

// failingStore overrides only what the test exercises; everything else is
// unreachable.
type failingStore struct {
	repository.Store
}

func (failingStore) GetJudge(id int) (*models.Judge, error) {
	return nil, apperrors.New(apperrors.Store, "Failed to fetch record")
}

func TestSubmitScoreSurfacesStoreFailures(t *testing.T) {
	_, err := SubmitScore(failingStore{}, 1, 1, 1, models.CriteriaScores{"Runway": 10})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Store), "store failures must not be masked as validation errors")
}

func TestGetBootstrapData(t *testing.T) {
	store := newTestStore(t)
	judge, contestant, category := seedEvent(t, store)

	_, err := SubmitScore(store, judge.ID, contestant.ID, category.ID,
		models.CriteriaScores{"Runway": 35})
	require.NoError(t, err)

	t.Run("with judge id includes that judge's scores", func(t *testing.T) {
		data, err := GetBootstrapData(store, &judge.ID)
		require.NoError(t, err)
		assert.Len(t, data.Categories, 1)
		assert.Len(t, data.Contestants, 1)
		require.Len(t, data.Scores, 1)
		assert.Equal(t, judge.ID, data.Scores[0].JudgeID)
	})

	t.Run("without judge id the score set is empty", func(t *testing.T) {
		data, err := GetBootstrapData(store, nil)
		require.NoError(t, err)
		assert.NotNil(t, data.Scores)
		assert.Empty(t, data.Scores)
	})
}

func TestGetResultsEndToEnd(t *testing.T) {
	store := newTestStore(t)
	judge, contestant, category := seedEvent(t, store)
	other := models.Judge{Name: "Judge 2", Pin: "2222"}
	require.NoError(t, store.DB.Create(&other).Error)

	_, err := SubmitScore(store, judge.ID, contestant.ID, category.ID, models.CriteriaScores{
		"Runway": 35, "Attire Presentation": 38, "Introduction": 9, "Overall Impression": 9,
	})
	require.NoError(t, err)
	_, err = SubmitScore(store, other.ID, contestant.ID, category.ID, models.CriteriaScores{
		"Runway": 30, "Attire Presentation": 37, "Introduction": 9, "Overall Impression": 9,
	})
	require.NoError(t, err)

	results, err := GetResults(store)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 176.0, results[0].TotalAccumulated)
	assert.Len(t, results[0].Breakdown, 2)
}
