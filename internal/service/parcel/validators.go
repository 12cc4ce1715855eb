package parcel

import (
	"strings"

	"parceltrack/internal/entities"
)

const maxWeightKg = 1000

func isValidContactPoint(p entities.ContactPoint) bool {
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Phone) != "" &&
		strings.TrimSpace(p.Address) != "" &&
		strings.TrimSpace(p.City) != ""
}

func isValidCategory(category string) bool {
	switch category {
	case "documents", "electronics", "clothing", "food", "other":
		return true
	default:
		return false
	}
}

func isValidPaymentMode(mode string) bool {
	switch mode {
	case "prepaid", "cod":
		return true
	default:
		return false
	}
}

func isValidWeight(weightKg float64) bool {
	return weightKg > 0 && weightKg <= maxWeightKg
}

// isValidCODAmount проверяет инвариант: codAmount > 0 ⟺ paymentMode = cod.
func isValidCODAmount(mode entities.PaymentModeType, amount int64) bool {
	if mode == entities.PaymentCOD {
		return amount > 0
	}
	return amount == 0
}
