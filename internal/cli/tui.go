package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mealweek/internal/planner"
	"mealweek/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	p := planner.New(ctx.Store)
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(runCtx)
	defer p.Stop()

	program := tea.NewProgram(tui.NewModel(p), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
