package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Teacher represents a teaching staff record.
type Teacher struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Subject       *string          `json:"subject,omitempty"`
	Qualification *string          `json:"qualification,omitempty"`
	Experience    *int             `json:"experience,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}
