package professional

import (
	"time"

	"github.com/google/uuid"
)

// Professional maps to the professional table. Records are immutable once
// created; one is inserted per intake session.
type Professional struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Categories is the fixed set of professional categories offered at intake,
// in display order.
var Categories = []string{
	"Medical Professionals",
	"Allied Health Professionals",
	"Other Healthcare Professionals",
	"Support Staff",
}

// roleMap maps each category to its valid role set.
var roleMap = map[string][]string{
	"Medical Professionals":          {"Doctor", "Nurse", "Midwife", "Dentist"},
	"Allied Health Professionals":    {"Physiotherapy", "Occupational Therapy"},
	"Other Healthcare Professionals": {"Clinical Scientist", "Hearing Aid Dispenser"},
	"Support Staff":                  {"Technician", "Administrative Staff", "Medical Secretaries", "Receptionist"},
}

// RolesFor returns the roles valid for a category, or nil for an unknown
// category.
func RolesFor(category string) []string {
	return roleMap[category]
}

// ValidCategory reports whether category is one of the fixed categories.
func ValidCategory(category string) bool {
	_, ok := roleMap[category]
	return ok
}

// ValidRole reports whether role belongs to the given category's role set.
func ValidRole(category, role string) bool {
	for _, r := range roleMap[category] {
		if r == role {
			return true
		}
	}
	return false
}
