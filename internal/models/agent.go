// internal/models/agent.go
package models

import (
	"github.com/google/uuid"
)

// Agent is a realtor profile. Slug is assigned once at profile creation and
// never regenerated; referral links embed it.
type Agent struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	DisplayName string    `json:"display_name" gorm:"size:120;not null"`
	Phone       string    `json:"phone" gorm:"size:30"`
	Agency      string    `json:"agency" gorm:"size:120"`

	// Payout details
	BankName          string `json:"bank_name" gorm:"size:120"`
	BankAccountName   string `json:"bank_account_name" gorm:"size:120"`
	BankAccountNumber string `json:"bank_account_number" gorm:"size:60"`

	// Relationships
	User        User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Properties  []Property   `json:"properties,omitempty" gorm:"foreignKey:AgentID"`
	Leads       []Lead       `json:"leads,omitempty" gorm:"foreignKey:RealtorID"`
	Commissions []Commission `json:"commissions,omitempty" gorm:"foreignKey:AgentID"`
}
