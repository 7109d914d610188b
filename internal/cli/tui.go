package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sanuxal/SOCRATES.AI/internal/gemini"
	"github.com/Sanuxal/SOCRATES.AI/internal/keyring"
	"github.com/Sanuxal/SOCRATES.AI/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	apiKey, err := keyring.ResolveAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no API key configured: run 'socrates key set <key>' or set GEMINI_API_KEY")
		}
		return err
	}

	client := gemini.New(apiKey)
	p := tea.NewProgram(tui.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
