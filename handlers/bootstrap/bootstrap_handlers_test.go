package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/database"
	"api/models"
	"api/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.GormStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := repository.NewGormStore(db)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), store)
	return r, store
}

func seedInitData(t *testing.T, store *repository.GormStore) models.Judge {
	t.Helper()

	judge := models.Judge{Name: "Judge 1", Pin: "1111"}
	require.NoError(t, store.DB.Create(&judge).Error)
	contestant := models.Contestant{Number: 1, Name: "Gayapa, Eco", Gender: "Male"}
	require.NoError(t, store.DB.Create(&contestant).Error)
	category := models.Category{
		Name: "College Uniform - Male", Gender: "Male", Order: 1,
		Criteria: models.CriterionList{{Name: "Runway", MaxScore: 40}},
	}
	require.NoError(t, store.DB.Create(&category).Error)

	score := models.Score{
		JudgeID: judge.ID, ContestantID: contestant.ID, CategoryID: category.ID,
		CriteriaScores: models.CriteriaScores{"Runway": 35}, TotalScore: 35,
	}
	require.NoError(t, store.DB.Create(&score).Error)
	return judge
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestInitJudge(t *testing.T) {
	r, store := newTestRouter(t)
	judge := seedInitData(t, store)

	t.Run("numeric judge id includes their scores", func(t *testing.T) {
		w := get(r, "/api/init/1")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Categories  []models.Category   `json:"categories"`
			Contestants []models.Contestant `json:"contestants"`
			Scores      []models.Score      `json:"scores"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Categories, 1)
		assert.Len(t, body.Contestants, 1)
		require.Len(t, body.Scores, 1)
		assert.Equal(t, judge.ID, body.Scores[0].JudgeID)
	})

	t.Run("non-numeric judge id still returns data with empty scores", func(t *testing.T) {
		w := get(r, "/api/init/not-a-number")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.JSONEq(t, `[]`, string(body["scores"]))
	})
}

func TestInitAdmin(t *testing.T) {
	r, store := newTestRouter(t)
	seedInitData(t, store)

	w := get(r, "/api/init/admin")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "categories")
	assert.Contains(t, body, "contestants")
	assert.NotContains(t, body, "scores", "the admin view carries no score filter")
}
