// internal/models/property.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Property prices and commission amounts are stored in minor currency units
// (cents) to keep monetary arithmetic exact.
type Property struct {
	BaseModel
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Address     string         `json:"address" gorm:"size:255"`
	City        string         `json:"city" gorm:"size:100;index"`
	Price       int64          `json:"price" gorm:"not null"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	AreaSqm     float64        `json:"area_sqm" gorm:"type:decimal(10,2)"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Status      PropertyStatus `json:"status" gorm:"type:varchar(20);default:'draft';index"`

	// Commission policy. Nil falls back to the platform defaults.
	CommissionRate *float64        `json:"commission_rate" gorm:"type:decimal(12,2)"`
	CommissionType *CommissionType `json:"commission_type" gorm:"type:varchar(20)"`

	// Owning agent; optional, properties may be platform-listed.
	AgentID *uuid.UUID `json:"agent_id" gorm:"type:uuid;index"`

	// Relationships
	Agent *Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	Leads []Lead `json:"leads,omitempty" gorm:"foreignKey:PropertyID"`
}
