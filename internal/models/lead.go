// internal/models/lead.go
package models

import (
	"github.com/google/uuid"
)

// Lead is an inbound inquiry. RealtorID is resolved once at creation time
// and is never overwritten by later resolution attempts; nil means the lead
// is unassigned and waiting for admin triage.
type Lead struct {
	BaseModel
	Name    string     `json:"name" gorm:"size:120;not null"`
	Email   string     `json:"email" gorm:"size:255;not null;index"`
	Phone   string     `json:"phone" gorm:"size:30"`
	Message string     `json:"message" gorm:"type:text"`
	Source  string     `json:"source" gorm:"size:60;index"`
	Status  LeadStatus `json:"status" gorm:"type:varchar(20);default:'new';index"`

	RealtorID  *uuid.UUID `json:"realtor_id" gorm:"type:uuid;index"`
	PropertyID *uuid.UUID `json:"property_id" gorm:"type:uuid;index"`

	// Relationships
	Realtor  *Agent    `json:"realtor,omitempty" gorm:"foreignKey:RealtorID"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
