package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lhgiang/eduquest/config"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrGenerationFailed covers every Gemini failure mode: transport errors,
// empty responses, unparseable payloads and in-band error markers.
var ErrGenerationFailed = errors.New("ai generation failed")

// errorMarker is the in-band failure signal: the model is instructed to start
// its reply with it when it cannot fulfil a request, so a success-shaped
// response containing it must be treated as a failure.
const errorMarker = "Error:"

type GeminiService interface {
	GetNotes(topic string) (string, error)
	GenerateQuiz(topic string) ([]dto.QuizQuestion, error)
	AnalyzeAnswers(questions []dto.QuizQuestion, userAnswers map[string]string, topic string) ([]dto.AnalysisItem, error)
	GenerateDynamicQuiz(topic string, weakConcepts []string) ([]dto.QuizQuestion, error)
}

type geminiService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return &geminiService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiService{client: model, cfg: cfg}, nil
}

// generate sends a single text prompt and returns the concatenated text parts
// of the first candidate.
func (s *geminiService) generate(prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", ErrGenerationFailed)
	}

	ctx := context.Background()
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API call failed")
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: no text content", ErrGenerationFailed)
	}
	return text.String(), nil
}

func (s *geminiService) GetNotes(topic string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a friendly school tutor writing study notes for a student.\n")
	prompt.WriteString(fmt.Sprintf("Write clear, well-structured study notes on the topic %q.\n", topic))
	prompt.WriteString("Cover the key definitions, the core ideas and one worked example. Keep it under 500 words.\n")
	prompt.WriteString(fmt.Sprintf("If you cannot produce notes for this topic, reply with a single line starting with %q.\n", errorMarker))

	notes, err := s.generate(prompt.String())
	if err != nil {
		return "", err
	}
	if strings.Contains(notes, errorMarker) {
		log.Warn().Str("topic", topic).Msg("Gemini signalled an in-band error while generating notes")
		return "", fmt.Errorf("%w: model declined to generate notes", ErrGenerationFailed)
	}
	return notes, nil
}

func (s *geminiService) GenerateQuiz(topic string) ([]dto.QuizQuestion, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a school examiner creating a multiple-choice quiz.\n")
	prompt.WriteString(fmt.Sprintf("Generate exactly 5 multiple-choice questions on the topic %q.\n", topic))
	writeQuizFormatInstruction(&prompt)
	return s.generateQuizFromPrompt(prompt.String())
}

func (s *geminiService) GenerateDynamicQuiz(topic string, weakConcepts []string) ([]dto.QuizQuestion, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a school examiner creating a remedial multiple-choice quiz.\n")
	prompt.WriteString(fmt.Sprintf("The student is studying %q and previously struggled with these concepts: %s.\n",
		topic, strings.Join(weakConcepts, ", ")))
	prompt.WriteString("Generate exactly 5 multiple-choice questions that re-test ONLY those weak concepts.\n")
	writeQuizFormatInstruction(&prompt)
	return s.generateQuizFromPrompt(prompt.String())
}

func (s *geminiService) generateQuizFromPrompt(prompt string) ([]dto.QuizQuestion, error) {
	raw, err := s.generate(prompt)
	if err != nil {
		return nil, err
	}

	var questions []dto.QuizQuestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &questions); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse quiz JSON from Gemini response")
		return nil, fmt.Errorf("%w: unparseable quiz payload: %v", ErrGenerationFailed, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: quiz payload contained no questions", ErrGenerationFailed)
	}
	return questions, nil
}

func (s *geminiService) AnalyzeAnswers(questions []dto.QuizQuestion, userAnswers map[string]string, topic string) ([]dto.AnalysisItem, error) {
	wrong := wrongQuestions(questions, userAnswers)
	if len(wrong) == 0 {
		// Perfect score. Nothing to analyze; not a failure.
		return []dto.AnalysisItem{}, nil
	}

	var prompt strings.Builder
	prompt.WriteString("You are a school tutor reviewing a student's quiz mistakes.\n")
	prompt.WriteString(fmt.Sprintf("The quiz topic was %q. The student answered each question below incorrectly or not at all.\n\n", topic))
	for i, w := range wrong {
		prompt.WriteString(fmt.Sprintf("Question %d: %s\n", i+1, w.question.Question))
		for _, letter := range sortedOptionKeys(w.question.Options) {
			prompt.WriteString(fmt.Sprintf("  %s: %s\n", letter, w.question.Options[letter]))
		}
		prompt.WriteString(fmt.Sprintf("  Correct answer: %s\n", w.question.Answer))
		if w.given == "" {
			prompt.WriteString("  Student's answer: (not answered)\n")
		} else {
			prompt.WriteString(fmt.Sprintf("  Student's answer: %s\n", w.given))
		}
		if w.question.Concept != "" {
			prompt.WriteString(fmt.Sprintf("  Concept: %s\n", w.question.Concept))
		}
		prompt.WriteString("\n")
	}
	prompt.WriteString("For each question, identify the underlying concept the student is weak in and explain the mistake.\n")
	prompt.WriteString("Respond with ONLY a JSON array, one object per question above, no prose and no markdown fences. Each object must have:\n")
	prompt.WriteString(`  "concept_name": short name of the weak concept` + "\n")
	prompt.WriteString(`  "explanation": a clear explanation of the concept and why the chosen answer was wrong` + "\n")
	prompt.WriteString(`  "practice_questions": an array of 2 new multiple-choice questions on that concept, each with "question", "options" (object keyed "A".."D"), "answer" and "concept"` + "\n")

	raw, err := s.generate(prompt.String())
	if err != nil {
		return nil, err
	}

	var items []dto.AnalysisItem
	if err := json.Unmarshal([]byte(extractJSON(raw)), &items); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse analysis JSON from Gemini response")
		return nil, fmt.Errorf("%w: unparseable analysis payload: %v", ErrGenerationFailed, err)
	}
	return items, nil
}

func writeQuizFormatInstruction(prompt *strings.Builder) {
	prompt.WriteString("Respond with ONLY a JSON array, no prose and no markdown fences. Each element must have:\n")
	prompt.WriteString(`  "question": the question text` + "\n")
	prompt.WriteString(`  "options": an object with exactly the keys "A", "B", "C", "D"` + "\n")
	prompt.WriteString(`  "answer": the letter of the correct option` + "\n")
	prompt.WriteString(`  "concept": a short name for the concept the question tests` + "\n")
}

type wrongAnswer struct {
	question dto.QuizQuestion
	given    string
}

// wrongQuestions matches answers to questions by question text. A question
// with no matching entry counts as unanswered (wrong); answer entries that
// match no question are ignored.
func wrongQuestions(questions []dto.QuizQuestion, userAnswers map[string]string) []wrongAnswer {
	var wrong []wrongAnswer
	for _, q := range questions {
		given := strings.TrimSpace(userAnswers[q.Question])
		if given == "" || !strings.EqualFold(given, strings.TrimSpace(q.Answer)) {
			wrong = append(wrong, wrongAnswer{question: q, given: given})
		}
	}
	return wrong
}

// extractJSON strips a surrounding markdown code fence, which Gemini tends to
// add to JSON payloads despite instructions not to.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

func sortedOptionKeys(options map[string]string) []string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
