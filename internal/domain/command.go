package domain

// CommandType classifies what the user typed at the prompt.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandHelp
	CommandQuit
	CommandListIngredients
	CommandFindIngredient
	CommandAddIngredient
	CommandRemoveIngredient
	CommandExpired
	CommandBetween
	CommandValue
	CommandListRecipes
	CommandCategory
	CommandShowRecipe
	CommandNewRecipe
	CommandCanMake
	CommandSuggest
	CommandStatus
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	case CommandListIngredients:
		return "list_ingredients"
	case CommandFindIngredient:
		return "find_ingredient"
	case CommandAddIngredient:
		return "add_ingredient"
	case CommandRemoveIngredient:
		return "remove_ingredient"
	case CommandExpired:
		return "expired"
	case CommandBetween:
		return "between"
	case CommandValue:
		return "value"
	case CommandListRecipes:
		return "list_recipes"
	case CommandCategory:
		return "category"
	case CommandShowRecipe:
		return "show_recipe"
	case CommandNewRecipe:
		return "new_recipe"
	case CommandCanMake:
		return "can_make"
	case CommandSuggest:
		return "suggest"
	case CommandStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Command is a parsed prompt line. Args holds the whitespace-separated
// tokens that followed the keyword.
type Command struct {
	Type CommandType
	Args []string
	Raw  string
}
