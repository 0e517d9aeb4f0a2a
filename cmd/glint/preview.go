package main

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
)

// Fallback size when the terminal size cannot be determined.
const (
	defaultCols = 80
	defaultRows = 24
)

func newPreviewCmd(sf *sceneFlags) *cobra.Command {
	var (
		rf   renderFlags
		cols int
		rows int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a scene into the terminal",
		Long: "preview renders at the size of the terminal, two pixels per cell, " +
			"and prints the result using upper half block characters.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), sf.verbose)

			if cols <= 0 || rows <= 0 {
				w, h, err := uv.DefaultTerminal().GetSize()
				if err != nil {
					log.Debug("terminal size unavailable", "err", err)
					w, h = defaultCols, defaultRows
				}
				if cols <= 0 {
					cols = w
				}
				if rows <= 0 {
					// Leave a line for the shell prompt.
					rows = max(1, h-1)
				}
			}

			sc, err := loadScene(sf.scene)
			if err != nil {
				return err
			}

			rf.width, rf.height = cols, rows*2
			fb, err := renderScene(cmd.Context(), sc, rf)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			scr := uv.NewScreenBuffer(cols, rows)
			fb.Draw(scr, scr.Bounds())
			fmt.Fprintln(cmd.OutOrStdout(), scr.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "Preview width in terminal columns (0 = detect)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Preview height in terminal rows (0 = detect)")
	cmd.Flags().Float64Var(&rf.fov, "fov", 90, "Vertical field of view in degrees")
	cmd.Flags().IntVar(&rf.workers, "workers", 0, "Parallel render workers (0 = one per CPU)")
	return cmd
}
