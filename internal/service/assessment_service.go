package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/model"
	"github.com/lhgiang/eduquest/internal/repository"
	"github.com/rs/zerolog/log"
)

// AssessmentService runs the submit-test pipeline: AI analysis of the wrong
// answers, video enrichment per weak concept, then the authoritative write of
// the result row. Analysis output is only returned if the write succeeds.
type AssessmentService interface {
	SubmitTest(req dto.SubmitTestRequest) ([]dto.AnalysisItem, error)
}

type assessmentService struct {
	gemini     GeminiService
	video      VideoSearchService
	resultRepo repository.TestResultRepository
}

func NewAssessmentService(gemini GeminiService, video VideoSearchService, resultRepo repository.TestResultRepository) AssessmentService {
	return &assessmentService{
		gemini:     gemini,
		video:      video,
		resultRepo: resultRepo,
	}
}

func (s *assessmentService) SubmitTest(req dto.SubmitTestRequest) ([]dto.AnalysisItem, error) {
	items, err := s.gemini.AnalyzeAnswers(req.Questions, req.UserAnswers, req.Topic)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("SubmitTest: answer analysis failed")
		return nil, err
	}

	concepts := make([]string, 0, len(items))
	for i := range items {
		// FindVideo never fails, so enrichment cannot abort the pipeline.
		items[i].VideoURL = s.video.FindVideo(items[i].ConceptName + " tutorial")
		concepts = append(concepts, items[i].ConceptName)
	}

	result := model.TestResult{
		Username:     req.Username,
		Subject:      req.Subject,
		Topic:        req.Topic,
		Score:        req.Score,
		WeakConcepts: joinWeakConcepts(concepts),
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("SubmitTest: failed to save test result")
		return nil, fmt.Errorf("failed to save test result: %w", err)
	}

	log.Info().
		Str("username", req.Username).
		Str("topic", req.Topic).
		Int("weak_concepts", len(items)).
		Msg("Test submission recorded")
	return items, nil
}

// joinWeakConcepts deduplicates concept names and joins them sorted, so the
// persisted string is independent of analysis order and each concept appears
// exactly once.
func joinWeakConcepts(concepts []string) string {
	seen := make(map[string]struct{}, len(concepts))
	unique := make([]string, 0, len(concepts))
	for _, c := range concepts {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}
