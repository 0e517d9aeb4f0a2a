// glint - Minimal Offline Ray Tracer
// Renders diffuse spheres lit by point lights to PPM or PNG images, previews
// them in the terminal, and exports scenes as glTF.
//
// Commands:
//
//	render   - Render a scene to an image file (.ppm, .pnm, .png, optional .zst/.sz)
//	preview  - Render a scene at terminal size and draw it with half blocks
//	export   - Write a scene as a binary glTF (.glb) file
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"syscall"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/glint/pkg/render"
	"github.com/taigrr/glint/pkg/scene"
)

var version = "dev"

var (
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#33B3CC")).Bold(true)
	faint  = lipgloss.NewStyle().Faint(true)
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

// sceneFlags are shared by every command that reads a scene.
type sceneFlags struct {
	scene   string
	verbose bool
}

// renderFlags configure the camera and the render loop.
type renderFlags struct {
	width      int
	height     int
	fov        float64 // degrees
	workers    int
	sequential bool
}

func (f renderFlags) options() render.Options {
	return render.Options{
		Width:   f.width,
		Height:  f.height,
		FOV:     f.fov * math.Pi / 180,
		Workers: f.workers,
	}
}

func newRootCmd() *cobra.Command {
	var sf sceneFlags

	root := &cobra.Command{
		Use:   "glint",
		Short: "Minimal offline ray tracer",
		Long: "glint casts one ray per pixel through a pinhole camera and shades the " +
			"nearest sphere with diffuse light from point lights.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&sf.scene, "scene", "reference", "Built-in scene (reference, empty)")
	root.PersistentFlags().BoolVarP(&sf.verbose, "verbose", "v", false, "Log debug output")

	root.AddCommand(
		newRenderCmd(&sf),
		newPreviewCmd(&sf),
		newExportCmd(&sf),
	)
	return root
}

func bindRenderFlags(cmd *cobra.Command, f *renderFlags) {
	def := render.DefaultOptions()
	cmd.Flags().IntVar(&f.width, "width", def.Width, "Image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", def.Height, "Image height in pixels")
	cmd.Flags().Float64Var(&f.fov, "fov", def.FOV*180/math.Pi, "Vertical field of view in degrees")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Parallel render workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&f.sequential, "sequential", false, "Render on a single goroutine")
}

// newLogger returns a text logger writing to w.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadScene(name string) (*scene.Scene, error) {
	sc, ok := scene.Named(name)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (use one of: %s)", name, strings.Join(scene.Names(), ", "))
	}
	return sc, nil
}

// renderScene runs a sequential or parallel render.
func renderScene(ctx context.Context, sc *scene.Scene, f renderFlags) (*render.Framebuffer, error) {
	if f.sequential {
		return render.Render(sc, f.options())
	}
	return render.RenderParallel(ctx, sc, f.options())
}
