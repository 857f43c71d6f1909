package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/ottopantry/internal/command"
	"github.com/hammamikhairi/ottopantry/internal/display"
	"github.com/hammamikhairi/ottopantry/internal/domain"
)

// asker reads one answer per question. display.UI satisfies it.
type asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// askMerge builds a merge decider that asks the user how to resolve a
// conflicting add. Any failure to read an answer cancels the add.
func askMerge(ctx context.Context, in asker) domain.MergeDecider {
	return func(existing, incoming domain.Ingredient, m domain.Mismatch) domain.MergeDecision {
		q := fmt.Sprintf("%s is already in the pantry with a different %s. Merge (m), add as new entry (d) or cancel (c)?",
			existing.Name, describeMismatch(m))
		ans, err := in.Ask(ctx, q)
		if err != nil {
			return domain.MergeDecision{}
		}

		var d domain.MergeDecision
		switch strings.ToLower(ans) {
		case "m", "merge":
			d.Choice = domain.ChoiceMerge
		case "d", "duplicate", "new":
			d.Choice = domain.ChoiceAddDuplicate
			return d
		default:
			return d
		}

		if m.Unit {
			d.OverwriteUnit = confirm(ctx, in, fmt.Sprintf("Replace unit %q with %q? (y/n)", existing.Unit, incoming.Unit))
		}
		if m.ExpireDate {
			d.OverwriteExpireDate = confirm(ctx, in, fmt.Sprintf("Replace expiration date %s with %s? (y/n)",
				domain.FormatDate(existing.ExpireDate), domain.FormatDate(incoming.ExpireDate)))
		}
		if m.Price {
			d.OverwritePrice = confirm(ctx, in, fmt.Sprintf("Replace price %s with %s? (y/n)",
				domain.FormatAmount(existing.UnitPrice), domain.FormatAmount(incoming.UnitPrice)))
		}
		return d
	}
}

func describeMismatch(m domain.Mismatch) string {
	var parts []string
	if m.Unit {
		parts = append(parts, "unit")
	}
	if m.ExpireDate {
		parts = append(parts, "expiration date")
	}
	if m.Price {
		parts = append(parts, "price")
	}
	switch len(parts) {
	case 0:
		return "record"
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func confirm(ctx context.Context, in asker, question string) bool {
	ans, err := in.Ask(ctx, question)
	if err != nil {
		return false
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true
	}
	return false
}

// newRecipe walks the user through creating a recipe. Typing "cancel" at
// any prompt abandons it.
func (a *cliApp) newRecipe(ctx context.Context) {
	r, category, err := readRecipe(ctx, a.ui, a.engine.NextRecipeID)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if r == nil {
		a.ui.PrintHint("Recipe discarded.")
		return
	}
	added, err := a.engine.AddRecipe(r, category)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, fmt.Sprintf("Recipe %s added with id %d.", added.Name, added.ID))
	a.ui.PrintBlock(display.RenderRecipe(added))
}

// readRecipe collects a recipe and its canonical category name. A nil
// recipe with a nil error means the user cancelled.
func readRecipe(ctx context.Context, in asker, nextID func(category string) (int, error)) (*domain.Recipe, string, error) {
	ask := func(q string) (string, bool, error) {
		ans, err := in.Ask(ctx, q)
		if err != nil {
			return "", false, err
		}
		return ans, strings.EqualFold(ans, "cancel"), nil
	}

	const categoryQ = "Category? (Lunch, Dinner, Breakfast, Dessert)"
	var category string
	for q := categoryQ; category == ""; {
		ans, cancelled, err := ask(q)
		if err != nil || cancelled {
			return nil, "", err
		}
		if c, ok := domain.LookupCategory(ans); ok {
			category = c.String()
		} else {
			q = fmt.Sprintf("%q is not a category. %s", ans, categoryQ)
		}
	}
	id, err := nextID(category)
	if err != nil {
		return nil, "", err
	}

	name, cancelled, err := ask(fmt.Sprintf("Name of recipe %d?", id))
	if err != nil || cancelled {
		return nil, "", err
	}
	if name == "" {
		return nil, "", domain.ErrInvalidRecipeName
	}
	desc, cancelled, err := ask("Short description?")
	if err != nil || cancelled {
		return nil, "", err
	}
	steps, cancelled, err := ask("Instructions?")
	if err != nil || cancelled {
		return nil, "", err
	}

	const ingredientQ = "Ingredient as <name> <amount> <unit>, or 'done'."
	r := domain.NewRecipe(name, desc, steps)
	for q := ingredientQ; ; {
		ans, cancelled, err := ask(q)
		if err != nil || cancelled {
			return nil, "", err
		}
		if strings.EqualFold(ans, "done") {
			break
		}
		ingName, amount, unit, err := command.ParseRequirement(strings.Fields(ans))
		if err != nil {
			q = fmt.Sprintf("Could not read that: %v. %s", err, ingredientQ)
			continue
		}
		r.AddIngredient(ingName, amount, unit)
		q = ingredientQ
	}
	return r, category, nil
}
