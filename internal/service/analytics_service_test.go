package service

import (
	"errors"
	"testing"

	"github.com/lhgiang/eduquest/internal/model"
	"github.com/lhgiang/eduquest/internal/repository"
)

func TestResultsForUser_NoRowsIsNoResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(repository.NewTestResultRepository(db))

	if _, err := svc.ResultsForUser("ghost"); !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestResultsForUser_ReturnsOnlyThatUsersRows(t *testing.T) {
	db := newTestDB(t)
	for _, r := range []model.TestResult{
		{Username: "alice", Subject: "Physics", Topic: "Gravity", Score: 60, WeakConcepts: "Newton's Laws"},
		{Username: "alice", Subject: "Chemistry", Topic: "The Atom", Score: 80},
		{Username: "bob", Subject: "Physics", Topic: "Gravity", Score: 40},
	} {
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	svc := NewAnalyticsService(repository.NewTestResultRepository(db))
	rows, err := svc.ResultsForUser("alice")
	if err != nil {
		t.Fatalf("ResultsForUser failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for alice, got %d", len(rows))
	}
	scoresBySubject := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.TestDate.IsZero() {
			t.Fatalf("expected test_date to be populated, got zero value")
		}
		scoresBySubject[row.Subject] = row.Score
	}
	if scoresBySubject["Physics"] != 60 || scoresBySubject["Chemistry"] != 80 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestResultsForUser_MultipleAttemptsAreAllRetained(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 3; i++ {
		r := model.TestResult{Username: "alice", Subject: "Physics", Topic: "Gravity", Score: 50 + i}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	svc := NewAnalyticsService(repository.NewTestResultRepository(db))
	rows, err := svc.ResultsForUser("alice")
	if err != nil {
		t.Fatalf("ResultsForUser failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 attempts retained, got %d", len(rows))
	}
}
