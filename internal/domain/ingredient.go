package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for parsing and rendering
// expiration dates.
const DateLayout = "2006-01-02"

// Ingredient is a named quantity of a consumable. Two ingredients are the
// same ingredient when their names match case-insensitively; unit, date and
// price are informational.
type Ingredient struct {
	Name       string
	Amount     float64
	Unit       string // opaque label: "pcs", "kg", "liter", ...
	ExpireDate time.Time
	UnitPrice  float64
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar day. Zero stays zero.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return Date(y, m, d)
}

// SameName reports whether the ingredient is called name, ignoring case.
func (i Ingredient) SameName(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// Value is amount times price.
func (i Ingredient) Value() float64 {
	return i.Amount * i.UnitPrice
}

// ExpiredAt reports whether the ingredient expired strictly before asOf.
func (i Ingredient) ExpiredAt(asOf time.Time) bool {
	return DateOf(i.ExpireDate).Before(DateOf(asOf))
}

// String returns a field-complete summary of the ingredient.
func (i Ingredient) String() string {
	return fmt.Sprintf("Ingredient: %s %s %s\nExpire date: %s\nPrice: %s kr\n",
		i.Name, FormatAmount(i.Amount), i.Unit, FormatDate(i.ExpireDate), FormatAmount(i.UnitPrice))
}

// CompareIngredients orders by name (case-insensitive), then expiration date.
func CompareIngredients(a, b Ingredient) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return DateOf(a.ExpireDate).Compare(DateOf(b.ExpireDate))
}

// FormatAmount renders a quantity without trailing zeros ("2", "0.5").
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatDate renders a calendar date, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}
