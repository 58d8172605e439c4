package database

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestPopulateSeedsFixedEventData(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Populate(db))

	var judges, categories, contestants int64
	db.Model(&models.Judge{}).Count(&judges)
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.Contestant{}).Count(&contestants)

	assert.EqualValues(t, 5, judges)
	assert.EqualValues(t, 6, categories)
	assert.EqualValues(t, 24, contestants)

	// Criteria survive the JSONB round trip.
	var first models.Category
	require.NoError(t, db.Order("display_order asc").First(&first).Error)
	assert.Equal(t, "College Uniform - Male", first.Name)
	require.Len(t, first.Criteria, 4)
	assert.Equal(t, "Runway", first.Criteria[0].Name)
	assert.Equal(t, 40.0, first.Criteria[0].MaxScore)

	// Both genders share contestant numbers; pairs link by number.
	var male, female models.Contestant
	require.NoError(t, db.Where("gender = ? AND number = ?", "Male", 1).First(&male).Error)
	require.NoError(t, db.Where("gender = ? AND number = ?", "Female", 1).First(&female).Error)
	require.NotNil(t, male.PartnerNumber)
	assert.Equal(t, female.Number, *male.PartnerNumber)
}

func TestPopulateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Populate(db))
	require.NoError(t, Populate(db))

	var judges int64
	db.Model(&models.Judge{}).Count(&judges)
	assert.EqualValues(t, 5, judges)
}

func TestReseedClearsScores(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Populate(db))

	score := models.Score{
		JudgeID: 1, ContestantID: 1, CategoryID: 1,
		CriteriaScores: models.CriteriaScores{"Runway": 35}, TotalScore: 35,
	}
	require.NoError(t, db.Create(&score).Error)

	require.NoError(t, Reseed(db))

	var scores int64
	db.Model(&models.Score{}).Count(&scores)
	assert.EqualValues(t, 0, scores)

	var judges int64
	db.Model(&models.Judge{}).Count(&judges)
	assert.EqualValues(t, 5, judges, "fixed data is reloaded after the clear")
}
