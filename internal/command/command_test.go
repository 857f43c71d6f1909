package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input    string
		wantType domain.CommandType
		wantArgs string
	}{
		{"help", domain.CommandHelp, ""},
		{"?", domain.CommandHelp, ""},
		{"QUIT", domain.CommandQuit, ""},
		{"q", domain.CommandQuit, ""},
		{"pantry", domain.CommandListIngredients, ""},
		{"ls", domain.CommandListIngredients, ""},
		{"find Tomato Sauce", domain.CommandFindIngredient, "Tomato Sauce"},
		{"add Tomato 5 kg 2023-12-02 50", domain.CommandAddIngredient, "Tomato 5 kg 2023-12-02 50"},
		{"stock up Eggs 2 pcs 2023-12-01 5", domain.CommandAddIngredient, "Eggs 2 pcs 2023-12-01 5"},
		{"remove Eggs 2", domain.CommandRemoveIngredient, "Eggs 2"},
		{"use  Ground   Beef 0.4", domain.CommandRemoveIngredient, "Ground Beef 0.4"},
		{"expired", domain.CommandExpired, ""},
		{"between 2023-11-01 2023-12-01", domain.CommandBetween, "2023-11-01 2023-12-01"},
		{"value", domain.CommandValue, ""},
		{"recipes", domain.CommandListRecipes, ""},
		{"category dessert", domain.CommandCategory, "dessert"},
		{"show Chocolate Cake", domain.CommandShowRecipe, "Chocolate Cake"},
		{"new recipe", domain.CommandNewRecipe, ""},
		{"can I make Pancake", domain.CommandCanMake, "Pancake"},
		{"check French Toast", domain.CommandCanMake, "French Toast"},
		{"what can i make?", domain.CommandSuggest, ""},
		{"suggest", domain.CommandSuggest, ""},
		{"status", domain.CommandStatus, ""},
		{"addition", domain.CommandUnknown, ""},
		{"flambé the cat", domain.CommandUnknown, ""},
		{"", domain.CommandUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, cmd.Type, tt.wantType)
			}
			if got := Join(cmd.Args); got != tt.wantArgs {
				t.Errorf("input=%q: got args %q, want %q", tt.input, got, tt.wantArgs)
			}
		})
	}
}

func TestParseAddArgs(t *testing.T) {
	got, err := ParseAddArgs(strings.Fields("Tomato Sauce 2 can 2024-03-10 50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := AddArgs{Name: "Tomato Sauce", Amount: 2, Unit: "can", ExpireDate: domain.Date(2024, 3, 10), Price: 50}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	bad := []string{
		"Tomato 2 can 2024-03-10",
		"Tomato two can 2024-03-10 50",
		"Tomato 2 can 10.03.2024 50",
		"Tomato 2 can 2024-03-10 -1",
		"Tomato NaN can 2024-03-10 1",
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseAddArgs(strings.Fields(in)); err == nil {
				t.Fatalf("expected error for %q", in)
			}
		})
	}
}

func TestParseNameAmount(t *testing.T) {
	name, amount, err := ParseNameAmount(strings.Fields("Ground Beef 0.4"))
	if err != nil || name != "Ground Beef" || amount != 0.4 {
		t.Fatalf("got %q %v %v", name, amount, err)
	}
	if _, _, err := ParseNameAmount([]string{"Eggs"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestParseRange(t *testing.T) {
	lower, upper, err := ParseRange([]string{"2023-12-01", "2023-11-01"})
	if err != nil {
		t.Fatalf("inverted ranges are rejected by the pantry, not the parser: %v", err)
	}
	if !lower.After(upper) {
		t.Fatalf("expected bounds passed through, got %s %s", lower, upper)
	}
	if _, _, err := ParseRange([]string{"2023-12-01"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{
			DescribeAdd("Tomato", domain.AddResult{Outcome: domain.AddMerged, Record: domain.Ingredient{Name: "Tomato", Amount: 8, Unit: "kg"}}),
			"Ingredient 'Tomato' updated: now 8 kg",
		},
		{
			DescribeAdd("Milk", domain.AddResult{Outcome: domain.AddUnchanged}),
			"No changes were made to 'Milk'.",
		},
		{
			DescribeRemove("Eggs", domain.RemoveResult{Outcome: domain.RemoveDecremented, Remaining: 7, Unit: "pcs"}),
			"Eggs: remaining amount 7 pcs",
		},
		{
			DescribeRemove("Caviar", domain.RemoveResult{Outcome: domain.RemoveNotFound}),
			"Ingredient Caviar not found in the pantry.",
		},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestCLINotifier(t *testing.T) {
	var normal, urgent []string
	n := NewCLINotifier(logger.New(logger.LevelOff, nil),
		func(s string) { normal = append(normal, s) },
		func(s string) { urgent = append(urgent, s) },
	)
	n.Notify(context.Background(), "ok")
	n.NotifyUrgent(context.Background(), "bad")
	if len(normal) != 1 || normal[0] != "ok" || len(urgent) != 1 || urgent[0] != "bad" {
		t.Fatalf("unexpected routing: %v %v", normal, urgent)
	}
}

func TestParseRequirement(t *testing.T) {
	name, amount, unit, err := ParseRequirement(strings.Fields("Baking Powder 10 g"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Baking Powder" || amount != 10 || unit != "g" {
		t.Fatalf("got %q %v %q", name, amount, unit)
	}
	if _, _, _, err := ParseRequirement([]string{"Eggs", "2"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestParseRecipeID(t *testing.T) {
	tests := []struct {
		input  string
		wantID int
		wantOK bool
	}{
		{"2001", 2001, true},
		{"7", 7, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"Pancake", 0, false},
		{"1001 Stew", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := ParseRecipeID(strings.Fields(tt.input))
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("got (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
