package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/cvsite/internal/config"
	"github.com/Zachkp/cvsite/internal/logger"
	"github.com/Zachkp/cvsite/internal/render"
	"github.com/Zachkp/cvsite/internal/site"
)

var version = "dev"

type rootFlags struct {
	configPath string
	data       string
	out        string
	assets     string
	templates  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var cfg *config.Config

	root := &cobra.Command{
		Use:          "cvsite",
		Short:        "Render a JSON CV into a static website",
		Long:         "cvsite renders cv.json into a small multi-page résumé site and can serve it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Init(cfg.Logger)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", config.DefaultFile, "path to the YAML config file")
	pf.StringVar(&flags.data, "data", "", "CV document path or URL (overrides data.source)")
	pf.StringVarP(&flags.out, "out", "o", "", "output directory (overrides output.dir)")
	pf.StringVar(&flags.assets, "assets", "", "static asset directory (overrides assets.dir)")
	pf.StringVar(&flags.templates, "templates", "", "directory of page shells replacing the built-in ones")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cfgFn := func() *config.Config { return cfg }
	root.AddCommand(newBuildCmd(cfgFn), newServeCmd(cfgFn), newVersionCmd())
	return root
}

func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.Load(flags.configPath, explicit)
	if err != nil {
		return nil, err
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Data.Source, flags.data)
	override(&cfg.Output.Dir, flags.out)
	override(&cfg.Assets.Dir, flags.assets)
	override(&cfg.Templates, flags.templates)
	override(&cfg.Logger.Level, flags.logLevel)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBuilder(cfg *config.Config) (*site.Builder, error) {
	r := render.New(
		render.WithLogos(cfg.Logos),
		render.WithDownloadName(cfg.Site.DownloadName),
	)
	b, err := site.New(site.Options{
		Source:       cfg.Data.Source,
		OutputDir:    cfg.Output.Dir,
		AssetsDir:    cfg.Assets.Dir,
		AssetExclude: cfg.Assets.Exclude,
		TemplatesDir: cfg.Templates,
		Title:        cfg.Site.Title,
		LoadTimeout:  cfg.Data.Timeout,
	}, r)
	if err != nil {
		return nil, fmt.Errorf("prepare site builder: %w", err)
	}
	return b, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:              "version",
		Short:            "Print the cvsite version",
		Args:             cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("cvsite %s\n", version)
		},
	}
}
