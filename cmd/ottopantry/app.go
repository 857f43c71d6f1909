package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/ottopantry/internal/command"
	"github.com/hammamikhairi/ottopantry/internal/display"
	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/engine"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

type cliApp struct {
	engine   *engine.Engine
	parser   domain.CommandParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI
	currency string
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat("Welcome to your pantry.")
	a.refreshStatus()

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case <-a.ui.QuitChan():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		cmd, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("command: %s (args=%q)", cmd.Type, cmd.Args)
		if cmd.Type == domain.CommandQuit {
			a.ui.PrintChat("Bye.")
			return
		}
		a.handle(ctx, cmd)
		a.refreshStatus()
	}
}

func (a *cliApp) handle(ctx context.Context, cmd *domain.Command) {
	switch cmd.Type {
	case domain.CommandHelp:
		a.showHelp()
	case domain.CommandListIngredients:
		a.ui.PrintBlock(display.RenderIngredients(a.engine.Ingredients(), a.engine.Today(), a.currency))
	case domain.CommandFindIngredient:
		a.findIngredient(ctx, cmd.Args)
	case domain.CommandAddIngredient:
		a.addIngredient(ctx, cmd.Args)
	case domain.CommandRemoveIngredient:
		a.removeIngredient(ctx, cmd.Args)
	case domain.CommandExpired:
		a.showExpired()
	case domain.CommandBetween:
		a.showBetween(ctx, cmd.Args)
	case domain.CommandValue:
		a.ui.PrintInfo("Total value: " + display.Money(a.engine.TotalValue(), a.currency))
		a.ui.PrintInfo("Expired value: " + display.Money(a.engine.ExpiredValue(), a.currency))
	case domain.CommandListRecipes:
		a.ui.PrintBlock(display.RenderRecipeList(a.engine.Recipes()))
	case domain.CommandCategory:
		a.showCategory(ctx, cmd.Args)
	case domain.CommandShowRecipe:
		a.showRecipe(ctx, cmd.Args)
	case domain.CommandNewRecipe:
		a.newRecipe(ctx)
	case domain.CommandCanMake:
		a.canMake(ctx, cmd.Args)
	case domain.CommandSuggest:
		a.suggest()
	case domain.CommandStatus:
		a.ui.PrintBlock(display.RenderSummary(a.engine.Summary(), a.currency))
	default:
		a.ui.PrintHint(fmt.Sprintf("I didn't catch %q. Type 'help' for commands.", cmd.Raw))
	}
}

func (a *cliApp) refreshStatus() {
	a.ui.SetStatus(a.engine.Summary())
}

func (a *cliApp) fail(ctx context.Context, err error) {
	a.notifier.NotifyUrgent(ctx, err.Error())
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeader("Pantry")
	a.ui.PrintInfo(`pantry                                   list every ingredient
find <name>                              show records with that name
add <name> <amount> <unit> <date> <price>  add or merge an ingredient
remove <name> <amount>                   use up some of an ingredient
expired                                  list expired ingredients
between <from> <to>                      ingredients expiring in a date range
value                                    total and expired value
status                                   pantry overview`)
	a.ui.PrintHeader("Recipes")
	a.ui.PrintInfo(`recipes                                  list every recipe
category <Lunch|Dinner|Breakfast|Dessert>  list one category
show <name|id>                           show a recipe
new recipe                               create a recipe step by step
can i make <name>                        check a recipe against the pantry
suggest                                  recipes you can make right now`)
	a.ui.PrintHint("Dates are yyyy-mm-dd. Names are matched ignoring case in the pantry and exactly in the cookbook.")
}

func (a *cliApp) findIngredient(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.fail(ctx, fmt.Errorf("find <name>: %w", command.ErrUsage))
		return
	}
	name := command.Join(args)
	found := a.engine.IngredientsByName(name)
	if len(found) == 0 {
		a.notifier.Notify(ctx, fmt.Sprintf("No %s in the pantry.", name))
		return
	}
	a.ui.PrintBlock(display.RenderIngredients(found, a.engine.Today(), a.currency))
}

func (a *cliApp) addIngredient(ctx context.Context, args []string) {
	in, err := command.ParseAddArgs(args)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	res := a.engine.AddIngredient(in.Name, in.Amount, in.Unit, in.ExpireDate, in.Price)
	a.notifier.Notify(ctx, command.DescribeAdd(in.Name, res))
}

func (a *cliApp) removeIngredient(ctx context.Context, args []string) {
	name, amount, err := command.ParseNameAmount(args)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	res := a.engine.RemoveIngredient(name, amount)
	msg := command.DescribeRemove(name, res)
	if res.Outcome == domain.RemoveNotFound {
		a.notifier.NotifyUrgent(ctx, msg)
		return
	}
	a.notifier.Notify(ctx, msg)
}

func (a *cliApp) showExpired() {
	expired := a.engine.Expired()
	if len(expired) == 0 {
		a.ui.PrintChat("Nothing has expired.")
		return
	}
	a.ui.PrintBlock(display.RenderIngredients(expired, a.engine.Today(), a.currency))
	a.ui.PrintHint("Expired value: " + display.Money(a.engine.ExpiredValue(), a.currency))
}

func (a *cliApp) showBetween(ctx context.Context, args []string) {
	lower, upper, err := command.ParseRange(args)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	items, err := a.engine.IngredientsBetween(lower, upper)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.ui.PrintBlock(display.RenderIngredients(items, a.engine.Today(), a.currency))
}

func (a *cliApp) showCategory(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.fail(ctx, fmt.Errorf("category <name>: %w", command.ErrUsage))
		return
	}
	name := command.Join(args)
	recipes := a.engine.RecipesByCategory(name)
	if _, ok := domain.LookupCategory(name); !ok {
		a.ui.PrintHint(fmt.Sprintf("%q is not a category. Try Lunch, Dinner, Breakfast or Dessert.", name))
	}
	a.ui.PrintBlock(display.RenderRecipeList(recipes))
}

// showRecipe accepts a catalog id or a recipe name. A numeric argument that
// is not a known id is tried as a name.
func (a *cliApp) showRecipe(ctx context.Context, args []string) {
	if id, ok := command.ParseRecipeID(args); ok {
		if r, err := a.engine.RecipeByID(id); err == nil {
			a.ui.PrintBlock(display.RenderRecipe(r))
			return
		}
	}
	r, ok := a.lookupRecipe(ctx, args)
	if !ok {
		return
	}
	a.ui.PrintBlock(display.RenderRecipe(r))
}

func (a *cliApp) canMake(ctx context.Context, args []string) {
	if _, ok := a.lookupRecipe(ctx, args); !ok {
		return
	}
	res, err := a.engine.CanMake(command.Join(args))
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.ui.PrintBlock(display.RenderFeasibility(res))
}

func (a *cliApp) lookupRecipe(ctx context.Context, args []string) (*domain.Recipe, bool) {
	if len(args) == 0 {
		a.fail(ctx, fmt.Errorf("<recipe name>: %w", command.ErrUsage))
		return nil, false
	}
	name := command.Join(args)
	r, err := a.engine.FindRecipe(name)
	if errors.Is(err, domain.ErrNotFound) {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf("No recipe named %q. Names are case-sensitive; try 'recipes'.", name))
		return nil, false
	}
	if err != nil {
		a.fail(ctx, err)
		return nil, false
	}
	return r, true
}

func (a *cliApp) suggest() {
	makeable := a.engine.Suggest()
	if len(makeable) == 0 {
		a.ui.PrintChat("Nothing in the cookbook can be made with what you have.")
		return
	}
	a.ui.PrintChat("You can make:")
	a.ui.PrintBlock(display.RenderRecipeList(makeable))
}
