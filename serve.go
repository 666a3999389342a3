package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/cvsite/internal/config"
	"github.com/Zachkp/cvsite/internal/logger"
	"github.com/Zachkp/cvsite/internal/server"
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	var (
		port  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it over HTTP",
		Long: "Builds the site, then serves the output directory. POST /contact answers " +
			"with a mailto link addressed to the CV's email.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if port != "" {
				c.Server.Port = port
			}
			b, err := newBuilder(c)
			if err != nil {
				return err
			}
			if _, err := b.Build(cmd.Context()); err != nil {
				logger.Warn().Err(err).Msg("serving the site with the load error shown")
			}

			srv := server.New(server.Config{
				Port: c.Server.Port,
				Mode: c.Server.Mode,
				Root: c.Output.Dir,
			}, func() string {
				if doc := b.Document(); doc != nil {
					return string(doc.Basics.Email)
				}
				return ""
			})

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.Run(ctx) })
			if watch {
				g.Go(func() error { return b.Watch(ctx) })
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides server.port and PORT)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when the document, shells or assets change")
	return cmd
}
