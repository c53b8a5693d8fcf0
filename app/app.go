package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/vqa-annotator/config"
	"github.com/soocke/vqa-annotator/debug"
	"github.com/soocke/vqa-annotator/domain/settings"
	"github.com/soocke/vqa-annotator/ui/presenter"
	"github.com/soocke/vqa-annotator/ui/theme"
	"github.com/soocke/vqa-annotator/ui/view"
)

const (
	tick = 250 * time.Millisecond
)

// Options are the startup parameters resolved by the command line.
type Options struct {
	Title        string
	ConfigPath   string
	SettingsPath string
	// Prefill overrides the stored setup paths when non-empty.
	DatasetRoot string
	ImageFolder string
}

type app struct {
	config  *config.Config
	logger  *slog.Logger
	opts    Options
	afterID string
	c       *AppContainer
}

func NewApp(opts Options, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{config: cfg, logger: logger, opts: opts}
	a.c = BuildContainer(cfg, opts.ConfigPath, opts.SettingsPath, logger)

	App.WmTitle(opts.Title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, "+100+100")
	return a
}

// Start builds the setup form and blocks in the Tk event loop.
func (a *app) Start() {
	theme.SetDark(a.config.DarkMode)
	if a.config.Debug {
		debug.StartGoroutineLogger(10*time.Second, a.logger)
		debug.StartMemLogger(10*time.Second, a.logger)
	}

	rec := a.c.Settings.Load()
	if a.opts.DatasetRoot != "" {
		rec.DatasetRoot = a.opts.DatasetRoot
	}
	if a.opts.ImageFolder != "" {
		rec.ImageFolder = a.opts.ImageFolder
	}
	a.buildUI(rec)

	a.c.Loop = presenter.NewLoop(a.c.StatusPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) buildUI(rec settings.Record) {
	dispatch := a.c.AnnotationPresenter.Dispatch
	a.c.RootView.Build(rec, view.Handlers{
		OnStart: func(root, folder string) { _ = dispatch(presenter.Start(root, folder)) },
		OnLoad:  func(key string) { _ = dispatch(presenter.Load(key)) },
		OnNext:  func() { _ = dispatch(presenter.Next()) },
		OnPrev:  func() { _ = dispatch(presenter.Prev()) },
		OnClick: func(x, y float64) { _ = dispatch(presenter.Click(x, y)) },
		OnSave:  func(q, ans string) { _ = dispatch(presenter.Save(q, ans)) },
		OnResize: func(w, h int) {
			if err := dispatch(presenter.Resize(w, h)); err != nil {
				return
			}
			a.persistDisplaySize(w, h)
		},
	}, a.exitHandler)
}

// persistDisplaySize stores a user-chosen display size so the next run starts with it.
func (a *app) persistDisplaySize(w, h int) {
	a.config.DisplayWidth, a.config.DisplayHeight = w, h
	if a.opts.ConfigPath == "" {
		return
	}
	if err := a.config.Save(a.opts.ConfigPath); err != nil {
		a.logger.Warn("config save failed", "path", a.opts.ConfigPath, "error", err)
		a.c.StatusPresenter.Warn(fmt.Sprintf("display size applied but not saved: %v", err))
	}
}

func (a *app) update() {
	if a.c.Loop != nil {
		a.c.Loop.Tick()
	}
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.logger.Info("exit", "key", a.c.Session.Key(), "cached_images", a.c.Images.Cached())
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}
