package patient

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sex is the closed enumeration used on patient records.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

// Sexes lists the valid values in display order.
var Sexes = []Sex{SexMale, SexFemale, SexOther}

// ParseSex validates a raw string against the enumeration.
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale, SexOther:
		return Sex(s), nil
	}
	return "", fmt.Errorf("invalid sex %q", s)
}

// Patient maps to the patient table. Two people sharing the same
// (name, age, sex) triple collapse to the same record on lookup; duplicate
// rows for a triple can still exist when a professional explicitly registers
// a new patient after reviewing a match.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Sex       Sex       `db:"sex" json:"sex"`
	History   string    `db:"history" json:"history"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Validate checks the record's field constraints.
func (p *Patient) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("patient name is required")
	}
	if p.Age < 0 || p.Age > 120 {
		return fmt.Errorf("patient age must be between 0 and 120, got %d", p.Age)
	}
	if _, err := ParseSex(string(p.Sex)); err != nil {
		return err
	}
	return nil
}
