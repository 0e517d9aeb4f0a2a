package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/glint/pkg/encode"
)

func newRenderCmd(sf *sceneFlags) *cobra.Command {
	var (
		rf     renderFlags
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		Example: `  glint render
  glint render --out frame.png --width 640 --height 480
  glint render --out out.ppm.zst --fov 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), sf.verbose)

			target, err := encode.TargetFromPath(out)
			if err != nil {
				return err
			}
			if format != "" {
				if target.Format, err = encode.ParseFormat(format); err != nil {
					return err
				}
			}

			sc, err := loadScene(sf.scene)
			if err != nil {
				return err
			}

			log.Debug("rendering",
				"scene", sf.scene,
				"spheres", len(sc.Spheres),
				"lights", len(sc.Lights),
				"width", rf.width,
				"height", rf.height,
				"fov", rf.fov,
				"sequential", rf.sequential,
			)

			start := time.Now()
			fb, err := renderScene(cmd.Context(), sc, rf)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			elapsed := time.Since(start)

			if err := encode.Save(out, fb, target); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			log.Debug("wrote image", "path", out, "format", target.Format, "elapsed", elapsed)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				accent.Render("rendered"),
				out,
				faint.Render(fmt.Sprintf("%dx%d in %s", fb.Width, fb.Height, elapsed.Round(time.Millisecond))),
			)
			return nil
		},
	}

	bindRenderFlags(cmd, &rf)
	cmd.Flags().StringVarP(&out, "out", "o", "out.ppm", "Output image path")
	cmd.Flags().StringVar(&format, "format", "", "Force image format (p3, p6, png)")
	return cmd
}
