package dto

import "time"

type ErrorResponse struct {
	Message string `json:"error"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// QuizQuestion is one generated multiple-choice question. Options is keyed by
// option letter ("A".."D"), Answer holds the correct letter and Concept is the
// concept tag the question probes.
type QuizQuestion struct {
	Question string            `json:"question" binding:"required"`
	Options  map[string]string `json:"options" binding:"required"`
	Answer   string            `json:"answer" binding:"required"`
	Concept  string            `json:"concept"`
}

type TopicDetailsResponse struct {
	Notes    string `json:"notes"`
	VideoURL string `json:"video_url"`
}

// AnalysisItem is the feedback for one incorrectly answered question. VideoURL
// is attached by the submit pipeline after generation; it is never empty.
type AnalysisItem struct {
	ConceptName       string         `json:"concept_name"`
	Explanation       string         `json:"explanation"`
	PracticeQuestions []QuizQuestion `json:"practice_questions"`
	VideoURL          string         `json:"video_url"`
}

// TestResultRow is one row of the per-user analytics listing.
type TestResultRow struct {
	TestDate time.Time `json:"test_date"`
	Subject  string    `json:"subject"`
	Topic    string    `json:"topic"`
	Score    int       `json:"score"`
}
