package investor

import (
	"time"
)

type Investor struct {
	ID               uint64     `gorm:"primaryKey;column:id" json:"id"`
	FullName         string     `gorm:"size:255;not null" json:"full_name"`
	IDNumber         string     `gorm:"size:50;not null;uniqueIndex:ux_investors_id_number" json:"id_number"`
	Email            string     `gorm:"size:255;not null" json:"email"`
	Phone            string     `gorm:"size:50;not null" json:"phone"`
	InvestmentAmount float64    `gorm:"type:decimal(18,2);not null" json:"investment_amount"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	InvestorType     string     `gorm:"size:50;not null" json:"investor_type"`
	Notes            *string    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	// Stays NULL until the first successful update; set explicitly by the
	// update path, gorm's auto tracking is disabled.
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

func (Investor) TableName() string { return "investors" }
