package investor

import (
	"time"
)

// UpsertInvestorInput is the shared create/update payload: every field except
// the server-assigned id and timestamps.
type UpsertInvestorInput struct {
	FullName         string  `json:"full_name"         validate:"required"`
	IDNumber         string  `json:"id_number"         validate:"required"`
	Email            string  `json:"email"             validate:"required,email"`
	Phone            string  `json:"phone"             validate:"required"`
	InvestmentAmount float64 `json:"investment_amount" validate:"gte=0"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	StartDate    string  `json:"start_date"    validate:"required,datetime=2006-01-02"`
	InvestorType string  `json:"investor_type" validate:"required"`
	Notes        *string `json:"notes"`
}

type InvestorDTO struct {
	ID               uint64     `json:"id"`
	FullName         string     `json:"full_name"`
	IDNumber         string     `json:"id_number"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	InvestmentAmount float64    `json:"investment_amount"`
	StartDate        string     `json:"start_date"`
	InvestorType     string     `json:"investor_type"`
	Notes            *string    `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}
