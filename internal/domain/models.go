package domain

import "fmt"

// Field identifies one half of an expiration date
type Field string

const (
	FieldMonth Field = "month"
	FieldYear  Field = "year"
)

// Expiration is the month/year pair held by the expiration context.
// Month is "01".."12", Year is four digits. Either may be empty.
type Expiration struct {
	Month string
	Year  string
}

// IsZero reports whether neither half has been set
func (e Expiration) IsZero() bool {
	return e.Month == "" && e.Year == ""
}

// String renders the pair as MM/YYYY with placeholders for unset halves
func (e Expiration) String() string {
	month, year := e.Month, e.Year
	if month == "" {
		month = "MM"
	}
	if year == "" {
		year = "YYYY"
	}
	return fmt.Sprintf("%s/%s", month, year)
}
