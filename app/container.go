package app

import (
	"log/slog"
	"time"

	"github.com/soocke/vqa-annotator/config"
	"github.com/soocke/vqa-annotator/domain/annotation"
	"github.com/soocke/vqa-annotator/domain/label"
	"github.com/soocke/vqa-annotator/domain/settings"
	"github.com/soocke/vqa-annotator/ui/images"
	"github.com/soocke/vqa-annotator/ui/model"
	"github.com/soocke/vqa-annotator/ui/presenter"
	"github.com/soocke/vqa-annotator/ui/view"
)

// Container assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Images     *images.Loader
	Settings   *settings.Store
	Session    *annotation.Session
	Status     *model.StatusModel
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	StatusPresenter     *presenter.StatusPresenter
	AnnotationPresenter *presenter.AnnotationPresenter
	Loop                *presenter.Loop
}

// BuildContainer constructs all components. No files are touched and no
// widgets are created until the session starts.
func BuildContainer(cfg *config.Config, cfgPath, settingsPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Images = images.NewLoader(cfg.ImageCacheSize, logger)
	c.Settings = settings.NewStore(settingsPath, logger)
	c.Session = annotation.New(annotation.Options{
		Decoder:  c.Images,
		Settings: c.Settings,
		Labels: func(sourceDir, outputDir string) annotation.LabelStore {
			return label.NewRepository(sourceDir, outputDir, logger)
		},
		DisplayWidth:  cfg.DisplayWidth,
		DisplayHeight: cfg.DisplayHeight,
		Logger:        logger,
	})
	c.Status = model.NewStatusModel(time.Duration(cfg.StatusSeconds) * time.Second)
	// View
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView
	// Presenters
	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, c.UI)
	c.AnnotationPresenter = presenter.NewAnnotationPresenter(c.Session, c.UI, c.StatusPresenter, presenter.DefaultBoxColors, logger)
	return c
}
