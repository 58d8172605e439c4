package repository

import (
	"errors"
	"time"

	"api/metrics"
	"api/models"
	"api/utils/apperrors"

	"gorm.io/gorm"
)

// GormStore implements Store on top of an injected gorm handle.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore wraps an open database connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindJudgeByPin(pin string) (*models.Judge, error) {
	defer metrics.TrackDBOperation("select", "judges", time.Now())

	var judge models.Judge
	if err := s.DB.Where("pin = ?", pin).First(&judge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.Auth, "Invalid PIN")
		}
		return nil, apperrors.Wrap(apperrors.Store, "Failed to look up judge", err)
	}
	return &judge, nil
}

func (s *GormStore) GetJudge(id int) (*models.Judge, error) {
	var judge models.Judge
	if err := s.first(&judge, id, "judges", "Judge not found"); err != nil {
		return nil, err
	}
	return &judge, nil
}

func (s *GormStore) GetContestant(id int) (*models.Contestant, error) {
	var contestant models.Contestant
	if err := s.first(&contestant, id, "contestants", "Contestant not found"); err != nil {
		return nil, err
	}
	return &contestant, nil
}

func (s *GormStore) GetCategory(id int) (*models.Category, error) {
	var category models.Category
	if err := s.first(&category, id, "categories", "Category not found"); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) first(dest interface{}, id int, table string, notFoundMsg string) error {
	defer metrics.TrackDBOperation("select", table, time.Now())

	if err := s.DB.First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, notFoundMsg)
		}
		return apperrors.Wrap(apperrors.Store, "Failed to fetch record", err)
	}
	return nil
}

func (s *GormStore) ListCategories() ([]models.Category, error) {
	defer metrics.TrackDBOperation("select", "categories", time.Now())

	var categories []models.Category
	if err := s.DB.Order("display_order asc").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Store, "Failed to fetch categories", err)
	}
	return categories, nil
}

func (s *GormStore) ListContestants() ([]models.Contestant, error) {
	defer metrics.TrackDBOperation("select", "contestants", time.Now())

	var contestants []models.Contestant
	if err := s.DB.Order("number asc").Find(&contestants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Store, "Failed to fetch contestants", err)
	}
	return contestants, nil
}

func (s *GormStore) ListScoresForJudge(judgeID int) ([]models.Score, error) {
	defer metrics.TrackDBOperation("select", "scores", time.Now())

	var scores []models.Score
	if err := s.DB.Where("judge_id = ?", judgeID).Find(&scores).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Store, "Failed to fetch scores", err)
	}
	return scores, nil
}

func (s *GormStore) ListScoresWithJoins() ([]models.Score, error) {
	defer metrics.TrackDBOperation("select", "scores", time.Now())

	var scores []models.Score
	err := s.DB.
		Preload("Judge").
		Preload("Contestant").
		Preload("Category").
		Order("id asc").
		Find(&scores).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Store, "Failed to fetch scores", err)
	}
	return scores, nil
}

func (s *GormStore) UpsertScore(judgeID, contestantID, categoryID int, criteriaScores models.CriteriaScores, totalScore float64) (*models.Score, bool, error) {
	defer metrics.TrackDBOperation("upsert", "scores", time.Now())

	existing, err := s.findByTriple(judgeID, contestantID, categoryID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		updated, err := s.updateScore(existing, criteriaScores, totalScore)
		return updated, false, err
	}

	score := models.Score{
		JudgeID:        judgeID,
		ContestantID:   contestantID,
		CategoryID:     categoryID,
		CriteriaScores: criteriaScores,
		TotalScore:     totalScore,
	}
	if err := s.DB.Create(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race for this triple; the winner's record is
			// the one to update.
			existing, err = s.findByTriple(judgeID, contestantID, categoryID)
			if err != nil {
				return nil, false, err
			}
			if existing == nil {
				return nil, false, apperrors.New(apperrors.Integrity, "Score record vanished during upsert")
			}
			updated, err := s.updateScore(existing, criteriaScores, totalScore)
			return updated, false, err
		}
		return nil, false, apperrors.Wrap(apperrors.Store, "Failed to save score", err)
	}
	return &score, true, nil
}

func (s *GormStore) findByTriple(judgeID, contestantID, categoryID int) (*models.Score, error) {
	var score models.Score
	err := s.DB.Where("judge_id = ? AND contestant_id = ? AND category_id = ?",
		judgeID, contestantID, categoryID).First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.Store, "Failed to look up score", err)
	}
	return &score, nil
}

func (s *GormStore) updateScore(score *models.Score, criteriaScores models.CriteriaScores, totalScore float64) (*models.Score, error) {
	score.CriteriaScores = criteriaScores
	score.TotalScore = totalScore
	if err := s.DB.Save(score).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Store, "Failed to update score", err)
	}
	return score, nil
}

func (s *GormStore) Ping() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
