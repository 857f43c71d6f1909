// Package storage provides the pantry: the ingredient store behind every
// inventory operation.
package storage

import (
	"slices"
	"time"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

// Compile-time interface check.
var _ domain.IngredientStore = (*Pantry)(nil)

// Option configures a Pantry.
type Option func(*Pantry)

// WithMergeDecider sets the function consulted when an add conflicts with a
// stored record of the same name. The default is domain.DeclineMerge.
func WithMergeDecider(d domain.MergeDecider) Option {
	return func(p *Pantry) {
		if d != nil {
			p.decide = d
		}
	}
}

// Pantry holds ingredient records in insertion order. Each Pantry owns its
// own records. Not safe for concurrent use.
type Pantry struct {
	items  []*domain.Ingredient
	decide domain.MergeDecider
	log    *logger.Logger
}

// NewPantry creates an empty pantry.
func NewPantry(log *logger.Logger, opts ...Option) *Pantry {
	p := &Pantry{
		decide: domain.DeclineMerge,
		log:    log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add stores an ingredient. A new name is inserted. An existing name with the
// same unit, date and price has its amount increased. Any other conflict is
// handed to the merge decider, which may merge (with per-field overwrites),
// add a separate record, or cancel.
func (p *Pantry) Add(name string, amount float64, unit string, expireDate time.Time, unitPrice float64) domain.AddResult {
	incoming := domain.Ingredient{
		Name:       name,
		Amount:     amount,
		Unit:       unit,
		ExpireDate: domain.DateOf(expireDate),
		UnitPrice:  unitPrice,
	}

	existing := p.first(name)
	if existing == nil {
		p.items = append(p.items, &incoming)
		p.log.Debug("inserted %s (%s %s)", name, domain.FormatAmount(amount), unit)
		return domain.AddResult{Outcome: domain.AddInserted, Record: incoming}
	}

	mismatch := domain.Compare(*existing, incoming)
	if !mismatch.Any() {
		existing.Amount += amount
		p.log.Debug("merged %s, amount now %s", existing.Name, domain.FormatAmount(existing.Amount))
		return domain.AddResult{Outcome: domain.AddMerged, Record: *existing}
	}

	decision := p.decide(*existing, incoming, mismatch)
	p.log.Debug("conflicting add for %s (%+v): %s", name, mismatch, decision.Choice)

	switch decision.Choice {
	case domain.ChoiceMerge:
		existing.Amount += amount
		if mismatch.Unit && decision.OverwriteUnit {
			existing.Unit = incoming.Unit
		}
		if mismatch.ExpireDate && decision.OverwriteExpireDate {
			existing.ExpireDate = incoming.ExpireDate
		}
		if mismatch.Price && decision.OverwritePrice {
			existing.UnitPrice = incoming.UnitPrice
		}
		return domain.AddResult{Outcome: domain.AddMerged, Record: *existing, Mismatch: mismatch}
	case domain.ChoiceAddDuplicate:
		p.items = append(p.items, &incoming)
		p.log.Info("added separate %s record (%s %s)", name, domain.FormatAmount(amount), unit)
		return domain.AddResult{Outcome: domain.AddDuplicated, Record: incoming, Mismatch: mismatch}
	default:
		return domain.AddResult{Outcome: domain.AddUnchanged, Record: *existing, Mismatch: mismatch}
	}
}

// Remove takes amount from the first record named name. If the record holds
// no more than amount it is deleted. Duplicate records are not aggregated.
func (p *Pantry) Remove(name string, amount float64) domain.RemoveResult {
	for i, ing := range p.items {
		if !ing.SameName(name) {
			continue
		}
		if ing.Amount > amount {
			ing.Amount -= amount
			p.log.Debug("removed %s of %s, %s %s left", domain.FormatAmount(amount), ing.Name, domain.FormatAmount(ing.Amount), ing.Unit)
			return domain.RemoveResult{Outcome: domain.RemoveDecremented, Remaining: ing.Amount, Unit: ing.Unit}
		}
		p.items = slices.Delete(p.items, i, i+1)
		p.log.Debug("removed %s from pantry", ing.Name)
		return domain.RemoveResult{Outcome: domain.RemoveDeleted, Unit: ing.Unit}
	}
	p.log.Debug("remove: %s not in pantry", name)
	return domain.RemoveResult{Outcome: domain.RemoveNotFound}
}

// All returns a copy of every record in insertion order.
func (p *Pantry) All() []domain.Ingredient {
	return p.filter(func(domain.Ingredient) bool { return true })
}

// Len returns the number of records.
func (p *Pantry) Len() int {
	return len(p.items)
}

// FindByName returns every record named name, ignoring case.
func (p *Pantry) FindByName(name string) []domain.Ingredient {
	return p.filter(func(ing domain.Ingredient) bool { return ing.SameName(name) })
}

// FindInDateInterval returns the records expiring within [lower, upper],
// earliest first. Both bounds are required and lower must not be after
// upper.
func (p *Pantry) FindInDateInterval(lower, upper time.Time) ([]domain.Ingredient, error) {
	if lower.IsZero() || upper.IsZero() {
		p.log.Warn("date interval with missing bound")
		return nil, &RangeError{Lower: lower, Upper: upper, Reason: "date range cannot be empty"}
	}
	lo, hi := domain.DateOf(lower), domain.DateOf(upper)
	if lo.After(hi) {
		p.log.Warn("date interval %s..%s is inverted", domain.FormatDate(lo), domain.FormatDate(hi))
		return nil, &RangeError{Lower: lower, Upper: upper, Reason: "lower date cannot be after upper date"}
	}
	out := p.filter(func(ing domain.Ingredient) bool {
		d := domain.DateOf(ing.ExpireDate)
		return !d.Before(lo) && !d.After(hi)
	})
	sortByExpiry(out)
	return out, nil
}

// Expired returns the records that expired strictly before asOf, earliest
// first.
func (p *Pantry) Expired(asOf time.Time) []domain.Ingredient {
	out := p.filter(func(ing domain.Ingredient) bool { return ing.ExpiredAt(asOf) })
	sortByExpiry(out)
	return out
}

// TotalValue sums amount times price over every record.
func (p *Pantry) TotalValue() float64 {
	return sumValue(p.All())
}

// ExpiredValue sums amount times price over the records expired at asOf.
func (p *Pantry) ExpiredValue(asOf time.Time) float64 {
	return sumValue(p.Expired(asOf))
}

func (p *Pantry) first(name string) *domain.Ingredient {
	for _, ing := range p.items {
		if ing.SameName(name) {
			return ing
		}
	}
	return nil
}

func (p *Pantry) filter(keep func(domain.Ingredient) bool) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(p.items))
	for _, ing := range p.items {
		if keep(*ing) {
			out = append(out, *ing)
		}
	}
	return out
}

func sortByExpiry(items []domain.Ingredient) {
	slices.SortStableFunc(items, func(a, b domain.Ingredient) int {
		return domain.DateOf(a.ExpireDate).Compare(domain.DateOf(b.ExpireDate))
	})
}

func sumValue(items []domain.Ingredient) float64 {
	var total float64
	for _, ing := range items {
		total += ing.Value()
	}
	return total
}
