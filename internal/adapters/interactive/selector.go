package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// Selector handles interactive disambiguation when several contracts
// match a query.
type Selector struct {
	cfg *config.RuntimeConfig
}

// NewSelector creates a selector.
func NewSelector(cfg *config.RuntimeConfig) *Selector {
	return &Selector{cfg: cfg}
}

// SelectContract prompts the user to pick one contract from a list.
func (s *Selector) SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error) {
	if s.cfg.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(contracts) == 0 {
		return nil, fmt.Errorf("no contracts provided for selection")
	}
	if len(contracts) == 1 {
		return contracts[0], nil
	}

	options := formatContractOptions(contracts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          fuzzySearcher(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return contracts[index], nil
}

func formatContractOptions(contracts []*models.Contract) []string {
	options := make([]string, len(contracts))
	nameStyle := color.New(color.FgWhite, color.Bold)
	pathStyle := color.New(color.Faint)
	for i, contract := range contracts {
		relPath := strings.TrimPrefix(contract.Path, "src/")
		options[i] = fmt.Sprintf("%s %s", nameStyle.Sprint(contract.Name), pathStyle.Sprintf("(%s)", relPath))
	}
	return options
}

func fuzzySearcher(options []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		matches := fuzzy.Find(input, []string{options[index]})
		return len(matches) > 0
	}
}
