package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/teostudio/catalog/internal/catalog"
	"github.com/teostudio/catalog/internal/queue"
	"github.com/teostudio/catalog/internal/shared"
	"github.com/teostudio/catalog/internal/ui"
)

// TUI launches the interactive terminal browser and player.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd.String("config"))

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/teocat-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	model := ui.NewModel(ctx, catalog.NewStore(db), r.classifier(), queue.New())
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
