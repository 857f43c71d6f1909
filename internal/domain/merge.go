package domain

import "strings"

// Mismatch flags which informational fields of an incoming ingredient differ
// from the stored record with the same name.
type Mismatch struct {
	Unit       bool
	ExpireDate bool
	Price      bool
}

// Any reports whether at least one field differs.
func (m Mismatch) Any() bool {
	return m.Unit || m.ExpireDate || m.Price
}

// Compare returns the mismatch between a stored record and an incoming one.
// Units compare ignoring case, dates by calendar day, prices exactly.
func Compare(existing, incoming Ingredient) Mismatch {
	return Mismatch{
		Unit:       !strings.EqualFold(existing.Unit, incoming.Unit),
		ExpireDate: !DateOf(existing.ExpireDate).Equal(DateOf(incoming.ExpireDate)),
		Price:      existing.UnitPrice != incoming.UnitPrice,
	}
}

// MergeChoice is the caller's answer when an add conflicts with a stored
// record.
type MergeChoice int

const (
	// ChoiceCancel leaves the pantry untouched.
	ChoiceCancel MergeChoice = iota
	// ChoiceMerge adds the amount to the existing record and overwrites the
	// mismatched fields the decision consents to.
	ChoiceMerge
	// ChoiceAddDuplicate appends an independent record under the same name.
	ChoiceAddDuplicate
)

// String returns a human-readable merge choice.
func (c MergeChoice) String() string {
	switch c {
	case ChoiceCancel:
		return "cancel"
	case ChoiceMerge:
		return "merge"
	case ChoiceAddDuplicate:
		return "add_duplicate"
	default:
		return "unknown"
	}
}

// MergeDecision is returned by a MergeDecider. The Overwrite flags are only
// consulted for ChoiceMerge and only for fields flagged in the Mismatch.
type MergeDecision struct {
	Choice              MergeChoice
	OverwriteUnit       bool
	OverwriteExpireDate bool
	OverwritePrice      bool
}

// MergeDecider is asked how to resolve an add whose unit, date or price
// differs from the stored record of the same name.
type MergeDecider func(existing, incoming Ingredient, m Mismatch) MergeDecision

// DeclineMerge never changes the pantry on a conflict.
func DeclineMerge(existing, incoming Ingredient, m Mismatch) MergeDecision {
	return MergeDecision{Choice: ChoiceCancel}
}

// MergeKeepExisting merges the amount and keeps every stored field.
func MergeKeepExisting(existing, incoming Ingredient, m Mismatch) MergeDecision {
	return MergeDecision{Choice: ChoiceMerge}
}

// MergeOverwrite merges the amount and takes every incoming field.
func MergeOverwrite(existing, incoming Ingredient, m Mismatch) MergeDecision {
	return MergeDecision{
		Choice:              ChoiceMerge,
		OverwriteUnit:       true,
		OverwriteExpireDate: true,
		OverwritePrice:      true,
	}
}

// AddAsDuplicate keeps both records.
func AddAsDuplicate(existing, incoming Ingredient, m Mismatch) MergeDecision {
	return MergeDecision{Choice: ChoiceAddDuplicate}
}

// AddOutcome describes what an add did.
type AddOutcome int

const (
	AddInserted AddOutcome = iota
	AddMerged
	AddDuplicated
	AddUnchanged
)

// String returns a human-readable add outcome.
func (o AddOutcome) String() string {
	switch o {
	case AddInserted:
		return "inserted"
	case AddMerged:
		return "merged"
	case AddDuplicated:
		return "duplicated"
	case AddUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// AddResult reports the outcome of an add and the affected record as it is
// after the call (for AddUnchanged, the untouched existing record).
type AddResult struct {
	Outcome  AddOutcome
	Record   Ingredient
	Mismatch Mismatch
}

// RemoveOutcome describes what a removal did.
type RemoveOutcome int

const (
	RemoveNotFound RemoveOutcome = iota
	RemoveDecremented
	RemoveDeleted
)

// String returns a human-readable remove outcome.
func (o RemoveOutcome) String() string {
	switch o {
	case RemoveNotFound:
		return "not_found"
	case RemoveDecremented:
		return "decremented"
	case RemoveDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// RemoveResult reports the outcome of a removal. Remaining is the amount
// left on the record (0 when deleted or not found).
type RemoveResult struct {
	Outcome   RemoveOutcome
	Remaining float64
	Unit      string
}
