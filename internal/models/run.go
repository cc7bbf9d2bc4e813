package models

import "time"

const (
	RunCompleted = "completed"
	RunPartial   = "partial"
)

// RunLog records one harvest of a single source.
type RunLog struct {
	SourceName   string    `json:"source_name"`
	ItemsScraped int       `json:"items_scraped"`
	Inserted     int       `json:"items_inserted"`
	Duplicates   int       `json:"items_duplicates"`
	Errors       int       `json:"errors"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	Status       string    `json:"status"`
}

// ContactMessage is a visitor message submitted through the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" binding:"required,max=200"`
	Email      string    `json:"email" binding:"required,email,max=255"`
	Subject    string    `json:"subject" binding:"required,max=200"`
	Message    string    `json:"message" binding:"required,max=5000"`
	Phone      string    `json:"phone,omitempty" binding:"omitempty,max=40"`
	ReceivedAt time.Time `json:"received_at"`
}
