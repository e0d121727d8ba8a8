// internal/services/commission_calculator.go
package services

import (
	"math"

	"github.com/redoak/realty-backend/internal/config"
	"github.com/redoak/realty-backend/internal/models"
)

// CommissionCalculator computes commission amounts in minor currency units.
// Percentage rates are applied as scaled integer (basis point)
// multiplication with round-half-up, so stored monetary values never carry
// floating-point drift.
type CommissionCalculator struct {
	defaultRate float64
}

func NewCommissionCalculator(cfg config.CommissionConfig) *CommissionCalculator {
	return &CommissionCalculator{defaultRate: cfg.DefaultRate}
}

// Calculate returns the commission for a property sale. A property without
// a commission policy of its own falls back to the platform default rate
// applied as a percentage. A fixed-type rate is the amount verbatim, never
// scaled by price.
func (c *CommissionCalculator) Calculate(property *models.Property) int64 {
	rate := c.defaultRate
	if property.CommissionRate != nil {
		rate = *property.CommissionRate
	}

	commissionType := models.CommissionTypePercentage
	if property.CommissionType != nil {
		commissionType = *property.CommissionType
	}

	if commissionType == models.CommissionTypeFixed {
		return int64(math.Round(rate))
	}

	// rate percent -> basis points, then round half up on the division.
	rateBps := int64(math.Round(rate * 100))
	return (property.Price*rateBps + 5000) / 10000
}
