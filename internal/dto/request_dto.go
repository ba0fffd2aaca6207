package dto

// RegisterRequest creates a new account. The raw password never leaves the
// auth service unhashed.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TopicDetailsRequest identifies a catalogued topic for notes + video lookup.
type TopicDetailsRequest struct {
	Class   string `json:"class" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Topic   string `json:"topic" binding:"required"`
}

type GenerateTestRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// SubmitTestRequest carries the quiz as it was served plus the user's picks.
// UserAnswers is keyed by question text, not position: entries for unknown
// questions are ignored and questions with no entry count as wrong.
type SubmitTestRequest struct {
	Username    string            `json:"username" binding:"required"`
	Subject     string            `json:"subject" binding:"required"`
	Topic       string            `json:"topic" binding:"required"`
	Score       int               `json:"score"`
	Questions   []QuizQuestion    `json:"questions" binding:"required,dive"`
	UserAnswers map[string]string `json:"user_answers"`
}

type DynamicTestRequest struct {
	Topic        string   `json:"topic" binding:"required"`
	WeakConcepts []string `json:"weak_concepts" binding:"required,min=1"`
}
