// internal/models/commission.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Commission is a monetary record owed to an agent. Amount is in minor
// currency units, computed once at creation and never recalculated.
type Commission struct {
	BaseModel
	Client          string           `json:"client" gorm:"size:120;not null"`
	Amount          int64            `json:"amount" gorm:"not null"`
	Status          CommissionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	TransactionDate time.Time        `json:"transaction_date" gorm:"not null"`
	Notes           string           `json:"notes" gorm:"type:text"`

	AgentID    uuid.UUID  `json:"agent_id" gorm:"type:uuid;not null;index"`
	PropertyID uuid.UUID  `json:"property_id" gorm:"type:uuid;not null;index"`
	LeadID     *uuid.UUID `json:"lead_id" gorm:"type:uuid;index"`

	// Relationships
	Agent    Agent    `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Lead     *Lead    `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
}
