// internal/services/commission_calculator_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redoak/realty-backend/internal/config"
	"github.com/redoak/realty-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func commissionTypePtr(v models.CommissionType) *models.CommissionType { return &v }

func TestCommissionCalculator(t *testing.T) {
	calc := NewCommissionCalculator(config.CommissionConfig{DefaultRate: 3.0})

	tests := []struct {
		name     string
		property models.Property
		want     int64
	}{
		{
			name: "explicit percentage rate",
			property: models.Property{
				Price:          50_000_000,
				CommissionRate: floatPtr(3.0),
				CommissionType: commissionTypePtr(models.CommissionTypePercentage),
			},
			want: 1_500_000,
		},
		{
			name: "fixed amount ignores price",
			property: models.Property{
				Price:          50_000_000,
				CommissionRate: floatPtr(25_000),
				CommissionType: commissionTypePtr(models.CommissionTypeFixed),
			},
			want: 25_000,
		},
		{
			name:     "default rate when property has no policy",
			property: models.Property{Price: 1_000_000},
			want:     30_000,
		},
		{
			name: "rate without type defaults to percentage",
			property: models.Property{
				Price:          1_000_000,
				CommissionRate: floatPtr(5.0),
			},
			want: 50_000,
		},
		{
			name: "fractional result rounds half up",
			property: models.Property{
				Price:          3_333,
				CommissionRate: floatPtr(1.5),
				CommissionType: commissionTypePtr(models.CommissionTypePercentage),
			},
			// 3333 * 1.5% = 49.995
			want: 50,
		},
		{
			name: "exact half rounds up",
			property: models.Property{
				Price:          100,
				CommissionRate: floatPtr(2.5),
				CommissionType: commissionTypePtr(models.CommissionTypePercentage),
			},
			// 100 * 2.5% = 2.5
			want: 3,
		},
		{
			name: "zero rate yields zero",
			property: models.Property{
				Price:          50_000_000,
				CommissionRate: floatPtr(0),
				CommissionType: commissionTypePtr(models.CommissionTypePercentage),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Calculate(&tt.property))
		})
	}
}
