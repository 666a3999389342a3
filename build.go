package main

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/cvsite/internal/config"
	"github.com/Zachkp/cvsite/internal/logger"
)

func newBuildCmd(cfg func() *config.Config) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page into the output directory",
		Long: "Loads the CV document once, renders each page shell and writes the site, " +
			"the document and the static assets to the output directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := newBuilder(cfg())
			if err != nil {
				return err
			}
			if _, err := b.Build(cmd.Context()); err != nil && !watch {
				return err
			}
			if !watch {
				return nil
			}
			logger.Info().Msg("watch mode, press Ctrl+C to stop")
			return b.Watch(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when the document, shells or assets change")
	return cmd
}
