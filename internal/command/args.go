package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hammamikhairi/ottopantry/internal/domain"
)

// ErrUsage reports arguments that do not fit a command's shape.
var ErrUsage = errors.New("wrong number of arguments")

// AddArgs are the validated arguments of an add command.
type AddArgs struct {
	Name       string
	Amount     float64
	Unit       string
	ExpireDate time.Time
	Price      float64
}

// ParseAddArgs reads "<name...> <amount> <unit> <yyyy-mm-dd> <price>". The
// name may span several words.
func ParseAddArgs(args []string) (AddArgs, error) {
	if len(args) < 5 {
		return AddArgs{}, fmt.Errorf("add <name> <amount> <unit> <yyyy-mm-dd> <price>: %w", ErrUsage)
	}
	n := len(args)
	amount, err := ParseQuantity(args[n-4])
	if err != nil {
		return AddArgs{}, fmt.Errorf("amount: %w", err)
	}
	date, err := ParseDate(args[n-2])
	if err != nil {
		return AddArgs{}, fmt.Errorf("expiration date: %w", err)
	}
	price, err := ParseQuantity(args[n-1])
	if err != nil {
		return AddArgs{}, fmt.Errorf("price: %w", err)
	}
	return AddArgs{
		Name:       strings.Join(args[:n-4], " "),
		Amount:     amount,
		Unit:       args[n-3],
		ExpireDate: date,
		Price:      price,
	}, nil
}

// ParseNameAmount reads "<name...> <amount>".
func ParseNameAmount(args []string) (string, float64, error) {
	if len(args) < 2 {
		return "", 0, fmt.Errorf("<name> <amount>: %w", ErrUsage)
	}
	amount, err := ParseQuantity(args[len(args)-1])
	if err != nil {
		return "", 0, fmt.Errorf("amount: %w", err)
	}
	return strings.Join(args[:len(args)-1], " "), amount, nil
}

// ParseRange reads "<yyyy-mm-dd> <yyyy-mm-dd>". Ordering is checked by the
// pantry, not here.
func ParseRange(args []string) (time.Time, time.Time, error) {
	if len(args) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("between <from> <to>: %w", ErrUsage)
	}
	lower, err := ParseDate(args[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
	}
	upper, err := ParseDate(args[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
	}
	return lower, upper, nil
}

// ParseQuantity accepts a finite, non-negative decimal number.
func ParseQuantity(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("%q is negative", s)
	}
	return f, nil
}

// ParseDate accepts a calendar date in yyyy-mm-dd form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a yyyy-mm-dd date", s)
	}
	return t, nil
}

// Join rebuilds a multi-word argument.
func Join(args []string) string {
	return strings.Join(args, " ")
}

// ParseRequirement reads a recipe line "<name...> <amount> <unit>".
func ParseRequirement(args []string) (string, float64, string, error) {
	if len(args) < 3 {
		return "", 0, "", fmt.Errorf("<name> <amount> <unit>: %w", ErrUsage)
	}
	n := len(args)
	amount, err := ParseQuantity(args[n-2])
	if err != nil {
		return "", 0, "", fmt.Errorf("amount: %w", err)
	}
	return strings.Join(args[:n-2], " "), amount, args[n-1], nil
}

// ParseRecipeID reports whether args is a single positive integer id.
func ParseRecipeID(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
