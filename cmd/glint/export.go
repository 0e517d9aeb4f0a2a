package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/glint/pkg/models"
)

func newExportCmd(sf *sceneFlags) *cobra.Command {
	var (
		out    string
		stacks int
		slices int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a scene as a binary glTF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), sf.verbose)

			sc, err := loadScene(sf.scene)
			if err != nil {
				return err
			}

			exporter := models.NewGLTFExporter()
			exporter.Stacks, exporter.Slices = stacks, slices
			if err := exporter.Save(sc, out); err != nil {
				return err
			}
			log.Debug("exported scene", "path", out, "spheres", len(sc.Spheres), "lights", len(sc.Lights))

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", accent.Render("exported"), out)
			return nil
		},
	}

	def := models.NewGLTFExporter()
	cmd.Flags().StringVarP(&out, "out", "o", "scene.glb", "Output .glb path")
	cmd.Flags().IntVar(&stacks, "stacks", def.Stacks, "Latitude bands per sphere")
	cmd.Flags().IntVar(&slices, "slices", def.Slices, "Longitude segments per sphere")
	return cmd
}
