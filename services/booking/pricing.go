package booking

import (
	"math"

	"servana/models"
)

// RecomputeTotal derives pricing.totalAmount from its components:
// baseAmount + sum(additionalCharges) - discount + taxes.total, rounded to
// 2 decimal places. Called on every save that touches pricing.
func RecomputeTotal(p *models.Pricing) {
	total := p.BaseAmount
	for _, charge := range p.AdditionalCharges {
		total += charge.Amount
	}
	total -= p.Discount
	total += p.Taxes.Total
	p.TotalAmount = round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
