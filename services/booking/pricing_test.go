package booking

import (
	"testing"

	"servana/models"
)

func TestRecomputeTotal(t *testing.T) {
	tests := []struct {
		name    string
		pricing models.Pricing
		want    float64
	}{
		{
			name:    "base only",
			pricing: models.Pricing{BaseAmount: 80},
			want:    80,
		},
		{
			name: "all components",
			pricing: models.Pricing{
				BaseAmount: 100,
				AdditionalCharges: []models.AdditionalCharge{
					{Description: "parts", Amount: 25.50},
					{Description: "travel", Amount: 10},
				},
				Discount: 15,
				Taxes:    models.Taxes{Total: 9.64},
			},
			want: 130.14,
		},
		{
			name: "rounds to two decimals",
			pricing: models.Pricing{
				BaseAmount: 33.333,
				Taxes:      models.Taxes{Total: 3.333},
			},
			want: 36.67,
		},
		{
			name: "discount exceeding charges goes negative",
			pricing: models.Pricing{
				BaseAmount: 20,
				Discount:   30,
			},
			want: -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecomputeTotal(&tt.pricing)
			if tt.pricing.TotalAmount != tt.want {
				t.Fatalf("got total %v, want %v", tt.pricing.TotalAmount, tt.want)
			}
		})
	}
}
