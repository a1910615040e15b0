package models

import "time"

// Announcement is a school-wide notice published by staff.
type Announcement struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Category       string     `json:"category"`
	TargetAudience string     `json:"target_audience"`
	Priority       string     `json:"priority"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	IsActive       bool       `json:"is_active"`
	PublishedBy    string     `json:"published_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	PublishedByName string `json:"published_by_name,omitempty"`
}
