package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lhgiang/eduquest/config"
	"github.com/lhgiang/eduquest/internal/catalog"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/model"
	"github.com/lhgiang/eduquest/internal/repository"
	"github.com/lhgiang/eduquest/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGeminiService struct {
	notes string
	err   error
}

func (s *stubGeminiService) GetNotes(topic string) (string, error) { return s.notes, s.err }
func (s *stubGeminiService) GenerateQuiz(topic string) ([]dto.QuizQuestion, error) {
	return nil, s.err
}
func (s *stubGeminiService) AnalyzeAnswers(questions []dto.QuizQuestion, userAnswers map[string]string, topic string) ([]dto.AnalysisItem, error) {
	return nil, s.err
}
func (s *stubGeminiService) GenerateDynamicQuiz(topic string, weakConcepts []string) ([]dto.QuizQuestion, error) {
	return nil, s.err
}

func newTestRouter(t *testing.T, gemini service.GeminiService) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.TestResult{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	resultRepo := repository.NewTestResultRepository(db)
	video := service.NewVideoSearchService(&config.Config{})
	cat := catalog.New()

	authCtrl := NewAuthController(service.NewAuthService(userRepo))
	contentCtrl := NewContentController(cat, gemini)
	testCtrl := NewTestController(gemini, service.NewAssessmentService(gemini, video, resultRepo))
	analyticsCtrl := NewAnalyticsController(service.NewAnalyticsService(resultRepo))

	router := gin.New()
	api := router.Group("/api")
	api.POST("/register", authCtrl.Register)
	api.POST("/login", authCtrl.Login)
	api.GET("/content", contentCtrl.GetContent)
	api.POST("/get-topic-details", contentCtrl.GetTopicDetails)
	api.POST("/generate-test", testCtrl.GenerateTest)
	api.POST("/submit-test", testCtrl.SubmitTest)
	api.POST("/generate-dynamic-test", testCtrl.GenerateDynamicTest)
	api.GET("/analytics", analyticsCtrl.GetAnalytics)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router, _ := newTestRouter(t, &stubGeminiService{})

	w := doJSON(t, router, http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "pw1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "pw2"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/login", gin.H{"username": "alice", "password": "pw1"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var login dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("login: bad response body: %v", err)
	}
	if !login.Success || login.Username != "alice" {
		t.Fatalf("login: unexpected response: %+v", login)
	}

	w = doJSON(t, router, http.MethodPost, "/api/login", gin.H{"username": "alice", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", w.Code)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t, &stubGeminiService{})

	w := doJSON(t, router, http.MethodPost, "/api/register", gin.H{"username": "alice"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestGetContent_ReturnsSkeleton(t *testing.T) {
	router, _ := newTestRouter(t, &stubGeminiService{})

	w := doJSON(t, router, http.MethodGet, "/api/content", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var structure map[string]map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &structure); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(structure["Class 10"]["Physics"]) == 0 {
		t.Fatalf("expected physics topics, got %v", structure)
	}
}

func TestGetTopicDetails(t *testing.T) {
	router, _ := newTestRouter(t, &stubGeminiService{notes: "Gravity pulls things down."})

	// Missing fields are rejected before any collaborator is touched.
	w := doJSON(t, router, http.MethodPost, "/api/get-topic-details", gin.H{"class": "Class 10"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/get-topic-details", gin.H{
		"class": "Class 10", "subject": "Physics", "topic": "Gravity",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var details dto.TopicDetailsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &details); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if details.Notes == "" {
		t.Fatalf("expected non-empty notes")
	}
	if details.VideoURL != "https://www.youtube.com/watch?v=E-b-mz14sD8" {
		t.Fatalf("expected catalogue video URL, got %q", details.VideoURL)
	}

	// Uncatalogued topic: empty video_url, still a 200.
	w = doJSON(t, router, http.MethodPost, "/api/get-topic-details", gin.H{
		"class": "Class 10", "subject": "Physics", "topic": "Magnetism",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for uncatalogued topic, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &details); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if details.VideoURL != "" {
		t.Fatalf("expected empty video_url, got %q", details.VideoURL)
	}
}

func TestGetTopicDetails_GenerationFailure(t *testing.T) {
	router, _ := newTestRouter(t, &stubGeminiService{err: service.ErrGenerationFailed})

	w := doJSON(t, router, http.MethodPost, "/api/get-topic-details", gin.H{
		"class": "Class 10", "subject": "Physics", "topic": "Gravity",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on generation failure, got %d", w.Code)
	}
}

func TestGenerateTest_FailureIs500(t *testing.T) {
	router, _ := newTestRouter(t, &stubGeminiService{err: service.ErrGenerationFailed})

	w := doJSON(t, router, http.MethodPost, "/api/generate-test", gin.H{"topic": "Gravity"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/generate-test", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing topic, got %d", w.Code)
	}
}

func TestAnalytics(t *testing.T) {
	router, db := newTestRouter(t, &stubGeminiService{})

	w := doJSON(t, router, http.MethodGet, "/api/analytics?username=alice", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for user with no rows, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/analytics", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing username, got %d", w.Code)
	}

	result := model.TestResult{Username: "alice", Subject: "Physics", Topic: "Gravity", Score: 70}
	if err := db.Create(&result).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	w = doJSON(t, router, http.MethodGet, "/api/analytics?username=alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var rows []dto.TestResultRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(rows) != 1 || rows[0].Score != 70 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
