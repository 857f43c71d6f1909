// Package command turns prompt lines into commands and validates their
// arguments before they reach the engine.
package command

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*KeywordParser)(nil)

// KeywordParser matches the leading keyword of a line to a command. The
// rest of the line becomes the command's arguments.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	command domain.CommandType
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.CommandHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.CommandQuit},
		{regexp.MustCompile(`(?i)^(pantry|ingredients|stock|ls)$`), domain.CommandListIngredients},
		{regexp.MustCompile(`(?i)^(find|lookup)(\s+|$)`), domain.CommandFindIngredient},
		{regexp.MustCompile(`(?i)^(add|buy|stock up)(\s+|$)`), domain.CommandAddIngredient},
		{regexp.MustCompile(`(?i)^(remove|rm|use|take)(\s+|$)`), domain.CommandRemoveIngredient},
		{regexp.MustCompile(`(?i)^(expired|expiry)$`), domain.CommandExpired},
		{regexp.MustCompile(`(?i)^(between|expiring)(\s+|$)`), domain.CommandBetween},
		{regexp.MustCompile(`(?i)^(value|worth|total)$`), domain.CommandValue},
		{regexp.MustCompile(`(?i)^(recipes|cookbook|list)$`), domain.CommandListRecipes},
		{regexp.MustCompile(`(?i)^(category|cat)(\s+|$)`), domain.CommandCategory},
		{regexp.MustCompile(`(?i)^(new recipe|new)$`), domain.CommandNewRecipe},
		{regexp.MustCompile(`(?i)^(show|recipe)(\s+|$)`), domain.CommandShowRecipe},
		{regexp.MustCompile(`(?i)^(can i make|can make|canmake|check)(\s+|$)`), domain.CommandCanMake},
		{regexp.MustCompile(`(?i)^(suggest|what can i make\??|makeable)$`), domain.CommandSuggest},
		{regexp.MustCompile(`(?i)^(status|summary)$`), domain.CommandStatus},
	}
	return p
}

// Parse converts a prompt line into a command.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Command{Type: domain.CommandUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		loc := rule.regex.FindStringIndex(trimmed)
		if loc == nil {
			continue
		}
		p.log.Debug("matched command: %s", rule.command)
		return &domain.Command{
			Type: rule.command,
			Args: strings.Fields(trimmed[loc[1]:]),
			Raw:  trimmed,
		}, nil
	}

	p.log.Debug("no match, returning unknown command")
	return &domain.Command{Type: domain.CommandUnknown, Raw: trimmed}, nil
}
