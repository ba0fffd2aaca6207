package model

import (
	"time"
)

// TestResult is one immutable quiz attempt. Username is a soft reference to
// User (no foreign key constraint), matching how results are queried: by
// username only, with multiple attempts per user/topic expected and retained.
type TestResult struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Username string `json:"username" gorm:"not null;index"`
	Subject  string `json:"subject" gorm:"not null"`
	Topic    string `json:"topic" gorm:"not null"`
	Score    int    `json:"score"`
	// WeakConcepts is a deduplicated, ", "-joined list of concept names.
	WeakConcepts string    `json:"weak_concepts" gorm:"type:text"`
	TestDate     time.Time `json:"test_date" gorm:"autoCreateTime"`
}
