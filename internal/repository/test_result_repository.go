package repository

import (
	"github.com/lhgiang/eduquest/internal/model"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	Create(result *model.TestResult) error
	FindByUsername(username string) ([]model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(result *model.TestResult) error {
	// Rows are append-only; there is no update path for results.
	return r.db.Create(result).Error
}

func (r *testResultRepository) FindByUsername(username string) ([]model.TestResult, error) {
	var results []model.TestResult
	if err := r.db.Where("username = ?", username).Order("test_date asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
