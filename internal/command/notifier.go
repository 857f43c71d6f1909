package command

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// PrintFunc prints one message. display.UI.PrintInfo and PrintUrgent match
// this signature.
type PrintFunc func(text string)

// CLINotifier reports engine outcomes to the terminal.
type CLINotifier struct {
	log      *logger.Logger
	normalFn PrintFunc
	urgentFn PrintFunc
}

// NewCLINotifier creates a terminal notifier. Nil print functions fall back
// to fmt.Println.
func NewCLINotifier(log *logger.Logger, normal, urgent PrintFunc) *CLINotifier {
	fallback := func(text string) { fmt.Println(text) }
	if normal == nil {
		normal = fallback
	}
	if urgent == nil {
		urgent = fallback
	}
	return &CLINotifier{log: log, normalFn: normal, urgentFn: urgent}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.normalFn(message)
	return nil
}

// NotifyUrgent prints a warning or rejection.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.urgentFn(message)
	return nil
}

// DescribeAdd turns an add result into a user-facing sentence.
func DescribeAdd(name string, res domain.AddResult) string {
	rec := res.Record
	switch res.Outcome {
	case domain.AddInserted:
		return fmt.Sprintf("Added new ingredient: %s (%s %s)", rec.Name, domain.FormatAmount(rec.Amount), rec.Unit)
	case domain.AddMerged:
		return fmt.Sprintf("Ingredient '%s' updated: now %s %s", rec.Name, domain.FormatAmount(rec.Amount), rec.Unit)
	case domain.AddDuplicated:
		return fmt.Sprintf("Added new ingredient entry: %s (%s %s)", rec.Name, domain.FormatAmount(rec.Amount), rec.Unit)
	default:
		return fmt.Sprintf("No changes were made to '%s'.", name)
	}
}

// DescribeRemove turns a remove result into a user-facing sentence.
func DescribeRemove(name string, res domain.RemoveResult) string {
	switch res.Outcome {
	case domain.RemoveDecremented:
		return fmt.Sprintf("%s: remaining amount %s %s", name, domain.FormatAmount(res.Remaining), res.Unit)
	case domain.RemoveDeleted:
		return fmt.Sprintf("Removed %s from the pantry.", name)
	default:
		return fmt.Sprintf("Ingredient %s not found in the pantry.", name)
	}
}
