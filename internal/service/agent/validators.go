package agent

import "strings"

const (
	minCapacity = 1
	maxCapacity = 50
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidVehicle(vehicle string) bool {
	switch vehicle {
	case "bicycle", "motorcycle", "van":
		return true
	default:
		return false
	}
}

func isValidVehicleNumber(number string) bool {
	return strings.TrimSpace(number) != ""
}

func isValidCapacity(capacity int) bool {
	return capacity >= minCapacity && capacity <= maxCapacity
}
