package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrNoResults marks the client-visible empty state for analytics. It is
// distinct from a storage error: zero rows is not a fault.
var ErrNoResults = errors.New("no test results found")

type AnalyticsService interface {
	ResultsForUser(username string) ([]dto.TestResultRow, error)
}

type analyticsService struct {
	resultRepo repository.TestResultRepository
}

func NewAnalyticsService(resultRepo repository.TestResultRepository) AnalyticsService {
	return &analyticsService{resultRepo: resultRepo}
}

func (s *analyticsService) ResultsForUser(username string) ([]dto.TestResultRow, error) {
	results, err := s.resultRepo.FindByUsername(username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("ResultsForUser: query failed")
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	var rows []dto.TestResultRow
	if err := copier.Copy(&rows, &results); err != nil {
		return nil, err
	}
	return rows, nil
}
