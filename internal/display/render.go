package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottopantry/internal/domain"
)

var (
	colName   = lipgloss.NewStyle().Width(22)
	colAmount = lipgloss.NewStyle().Width(14)
	colDate   = lipgloss.NewStyle().Width(13)
	colPrice  = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)

	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5"))
)

// Money formats a value with two decimals and a currency suffix.
func Money(v float64, currency string) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// RenderIngredients lays the records out as a table. Records expired on
// today are flagged.
func RenderIngredients(items []domain.Ingredient, today time.Time, currency string) string {
	if len(items) == 0 {
		return secondaryStyle.Render("(no ingredients)")
	}
	var b strings.Builder
	b.WriteString(secondaryStyle.Render(row("NAME", "AMOUNT", "EXPIRES", "UNIT PRICE")))
	b.WriteByte('\n')
	for _, it := range items {
		line := row(
			it.Name,
			domain.FormatAmount(it.Amount)+" "+it.Unit,
			domain.FormatDate(it.ExpireDate),
			Money(it.UnitPrice, currency),
		)
		if it.ExpiredAt(today) {
			b.WriteString(urgentOutputStyle.Render(line + "  expired"))
		} else {
			b.WriteString(primaryStyle.Render(line))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func row(name, amount, date, price string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		colName.Render(name),
		colAmount.Render(amount),
		colDate.Render(date),
		colPrice.Render(price),
	)
}

// RenderRecipeList prints one line per recipe: id, category and name.
func RenderRecipeList(recipes []*domain.Recipe) string {
	if len(recipes) == 0 {
		return secondaryStyle.Render("(no recipes)")
	}
	var b strings.Builder
	for _, r := range recipes {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("%4d  %-10s", r.ID, r.Category)))
		b.WriteString(primaryStyle.Render(r.Name))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRecipe shows a recipe with its requirements.
func RenderRecipe(r *domain.Recipe) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  (#%d, %s)", r.Name, r.ID, r.Category)))
	b.WriteByte('\n')
	if r.Description != "" {
		b.WriteString(secondaryStyle.Render(r.Description))
		b.WriteByte('\n')
	}
	for _, ing := range r.Ingredients {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("- %s: %s %s", ing.Name, domain.FormatAmount(ing.Amount), ing.Unit)))
		b.WriteByte('\n')
	}
	if r.Instructions != "" {
		b.WriteString(primaryStyle.Render(r.Instructions))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderFeasibility reports whether a recipe can be made and, if not,
// what is missing.
func RenderFeasibility(f domain.Feasibility) string {
	if f.OK {
		return okStyle.Render(fmt.Sprintf("You can make %s.", f.Recipe.Name))
	}
	var b strings.Builder
	b.WriteString(missingStyle.Render(fmt.Sprintf("You can't make %s. Missing:", f.Recipe.Name)))
	for _, s := range f.Shortfalls {
		b.WriteByte('\n')
		b.WriteString(primaryStyle.Render("- " + s.String()))
	}
	return b.String()
}

// RenderSummary is the long form of the status bar.
func RenderSummary(s domain.PantrySummary, currency string) string {
	lines := []string{
		fmt.Sprintf("Ingredients:    %d", s.Items),
		fmt.Sprintf("Total value:    %s", Money(s.TotalValue, currency)),
		fmt.Sprintf("Expired:        %d (%s)", s.Expired, Money(s.ExpiredValue, currency)),
		fmt.Sprintf("Makeable:       %d of %d recipes", s.Makeable, s.Recipes),
	}
	return primaryStyle.Render(strings.Join(lines, "\n"))
}
