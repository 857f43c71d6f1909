package domain

import "fmt"

// Shortfall is a required ingredient that is absent from the pantry or
// under-supplied.
type Shortfall struct {
	Name      string
	Unit      string
	Required  float64
	Available float64 // 0 when Absent
	Absent    bool
}

// String renders e.g. "Eggs (only 1 available, requires 2 pcs)".
func (s Shortfall) String() string {
	reason := "not available"
	if !s.Absent {
		reason = fmt.Sprintf("only %s available", FormatAmount(s.Available))
	}
	return fmt.Sprintf("%s (%s, requires %s %s)", s.Name, reason, FormatAmount(s.Required), s.Unit)
}

// Feasibility is the result of checking one recipe against the pantry.
type Feasibility struct {
	Recipe     *Recipe
	OK         bool
	Shortfalls []Shortfall // in requirement order; empty when OK
}

// PantrySummary is a point-in-time overview shown in the status bar.
type PantrySummary struct {
	Items        int
	Expired      int
	TotalValue   float64
	ExpiredValue float64
	Makeable     int
	Recipes      int
}
