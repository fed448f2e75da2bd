package commands

import (
	"fmt"

	"github.com/akasprzok/chartfmt/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

type PreviewCmd struct {
	MaxTicks int `name:"maxticks" help:"Initial major tick count hint." default:"5"`
}

func (p *PreviewCmd) Run(ctx *Context) error {
	model := tui.NewModel(p.MaxTicks)

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}
