package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soocke/vqa-annotator/app"
	"github.com/soocke/vqa-annotator/config"
	"github.com/soocke/vqa-annotator/domain/settings"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfgPath      string
		settingsPath string
		debug        bool
		width        int
		height       int
		datasetRoot  string
		imageFolder  string
	)
	cmd := &cobra.Command{
		Use:           "vqa-annotator",
		Short:         "Attach question/answer pairs and selected box labels to dataset images",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config %s: %w", cfgPath, err)
			}
			// Flags override file values
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}
			if cmd.Flags().Changed("width") {
				cfg.DisplayWidth = width
			}
			if cmd.Flags().Changed("height") {
				cfg.DisplayHeight = height
			}
			_ = cfg.Validate()

			logger := NewLogger(cfg.Level())
			logger.Info("starting", "config", cfgPath, "settings", settingsPath,
				"display_width", cfg.DisplayWidth, "display_height", cfg.DisplayHeight)

			application := app.NewApp(app.Options{
				Title:        "VQA Annotator",
				ConfigPath:   cfgPath,
				SettingsPath: settingsPath,
				DatasetRoot:  datasetRoot,
				ImageFolder:  imageFolder,
			}, cfg, logger)
			application.Start()
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", config.DefaultPath(), "application config file (JSON)")
	f.StringVar(&settingsPath, "settings", settings.DefaultPath(), "persisted setup paths and last image (JSON)")
	f.BoolVar(&debug, "debug", false, "debug logging and runtime stat loggers")
	f.IntVar(&width, "width", 0, "display width the image is stretched to")
	f.IntVar(&height, "height", 0, "display height the image is stretched to")
	f.StringVar(&datasetRoot, "dataset", "", "pre-fill the dataset root path")
	f.StringVar(&imageFolder, "images", "", "pre-fill the image folder path")
	return cmd
}
