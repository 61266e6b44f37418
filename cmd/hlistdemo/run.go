package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/atomic"

	"github.com/xqrs/hlist"
	"github.com/xqrs/hlist/help"
	"github.com/xqrs/hlist/loaders"
	"github.com/xqrs/hlist/locale"
)

// runOptions are the flags of the run command.
type runOptions struct {
	mode         string
	total        int
	pageSize     int
	delay        time.Duration
	failEvery    int
	unknownEvery int
	noInfinite   bool
	divider      string
	scrollBar    bool
	settings     string
	lang         string
}

func newRunCmd(logs *logOptions) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show a paginated list in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, logs, &opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.mode, "mode", "registry", "presentation mode (registry|renderItem|elements)")
	flags.IntVar(&opts.total, "total", 200, "number of generated entries")
	flags.IntVar(&opts.pageSize, "page-size", 0, "entries per page (0 uses the settings or the default)")
	flags.DurationVar(&opts.delay, "delay", 400*time.Millisecond, "artificial latency per page")
	flags.IntVar(&opts.failEvery, "fail-every", 0, "fail every n-th page request (0 never fails)")
	flags.IntVar(&opts.unknownEvery, "unknown-every", 0, "give every n-th entry a kind without renderer")
	flags.BoolVar(&opts.noInfinite, "no-infinite", false, "load further pages by button instead of scrolling")
	flags.StringVar(&opts.divider, "divider", "", "divider between rows (none|line|dashed)")
	flags.BoolVar(&opts.scrollBar, "scroll-bar", true, "draw a scroll bar")
	flags.StringVar(&opts.settings, "settings", "", "TOML settings file")
	flags.StringVar(&opts.lang, "lang", "", "language of the status row")
	return cmd
}

var errInjected = errors.New("injected failure")

// flaky fails every n-th call of next.
func flaky[E any](next hlist.Loader[E], every int) hlist.Loader[E] {
	if every <= 0 {
		return next
	}
	calls := atomic.NewInt64(0)
	return func(ctx context.Context, req hlist.PageRequest) (hlist.Page[E], error) {
		if calls.Inc()%int64(every) == 0 {
			return hlist.Page[E]{}, errInjected
		}
		return next(ctx, req)
	}
}

// asElements renders every fetched item up front for elements mode.
func asElements(next hlist.Loader[feedItem]) hlist.Loader[hlist.ListItem] {
	return func(ctx context.Context, req hlist.PageRequest) (hlist.Page[hlist.ListItem], error) {
		page, err := next(ctx, req)
		if err != nil {
			return hlist.Page[hlist.ListItem]{}, err
		}
		elements := make([]hlist.ListItem, len(page.Data))
		offset := (req.Page - 1) * req.Limit
		for i, item := range page.Data {
			elements[i] = renderNote(item, offset+i)
		}
		return hlist.Page[hlist.ListItem]{Data: elements, HasMore: page.HasMore}, nil
	}
}

// buildConfig turns the flags and the settings file into a list
// configuration without loaders or hooks.
func buildConfig(cmd *cobra.Command, opts *runOptions) (hlist.Config[feedItem], hlist.Settings, error) {
	cfg := hlist.DefaultConfig[feedItem]()
	var settings hlist.Settings

	mode, err := hlist.ParseMode(opts.mode)
	if err != nil {
		return cfg, settings, err
	}
	cfg.Mode = mode

	if opts.settings != "" {
		if settings, err = hlist.LoadSettings(opts.settings); err != nil {
			return cfg, settings, err
		}
		if err := hlist.ApplySettings(settings, &cfg); err != nil {
			return cfg, settings, err
		}
	}
	if opts.pageSize > 0 {
		cfg.PageSize = opts.pageSize
	}
	if opts.noInfinite {
		cfg.InfiniteScroll = false
	}
	if cmd.Flags().Changed("scroll-bar") || settings.List.ScrollBar == nil {
		cfg.ScrollBar = opts.scrollBar
	}
	if opts.divider != "" {
		if cfg.Divider, err = hlist.ParseDividerMode(opts.divider); err != nil {
			return cfg, settings, err
		}
	}
	lang := opts.lang
	if lang == "" {
		lang = settings.Language
	}
	if cfg.Translator, err = locale.New(lang); err != nil {
		return cfg, settings, err
	}
	return cfg, settings, nil
}

func runList(cmd *cobra.Command, logs *logOptions, opts *runOptions) error {
	cmd.SilenceUsage = true

	cfg, settings, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}
	if err := setupLogging(logs, true); err != nil {
		return err
	}
	defer hlist.CloseLogger()
	if err := settings.ApplyAmbient(); err != nil {
		return err
	}

	feed := loaders.FromSlice(generateFeed(opts.total, opts.unknownEvery))
	feed = flaky(loaders.WithDelay(feed, opts.delay), opts.failEvery)
	feed = loaders.WithTimeout(loaders.Dedupe(feed), opts.delay+5*time.Second)

	switch cfg.Mode {
	case hlist.ModeRegistry:
		cfg.Registry = feedRegistry()
		cfg.DataLoader = feed
	case hlist.ModeRenderItem:
		cfg.RenderItem = renderGeneric
		cfg.DataLoader = feed
	case hlist.ModeElements:
		cfg.ElementsLoader = asElements(feed)
	}

	pages := 0
	cfg.OnLoad = func(page, count int) {
		pages++
		hlist.GetLogger().Info("page loaded", "page", page, "count", count)
	}
	cfg.OnEnd = func() {
		hlist.GetLogger().Info("feed exhausted", "pages", pages)
	}
	cfg.OnError = func(err error) {
		hlist.GetLogger().Warn("page failed", "error", err)
	}

	list, err := hlist.NewHeterogeneousList(cfg)
	if err != nil {
		reportConfigError(cmd.ErrOrStderr(), err)
		return err
	}
	list.SetBorders(hlist.BordersAll).
		SetBorderSet(hlist.BorderSetByName(settings.Border)).
		SetTitle(fmt.Sprintf(" %s mode ", cfg.Mode))

	translator := cfg.Translator
	footer := help.New().SetKeyMap(list.KeyMap()).SetStatusFunc(func() string {
		state := list.State()
		status := translator.ItemCount(state.Len)
		if state.Loading {
			status += " \u00b7 " + translator.Loading()
		}
		return status
	})
	list.SetSelectedFunc(func(index int) {
		items := list.Items()
		if index < len(items) {
			hlist.GetLogger().Info("selected", "id", items[index].ID, "kind", items[index].Kind)
		}
	})

	app := hlist.NewApplication()
	if err := list.Mount(app); err != nil {
		return err
	}
	defer list.Unmount()

	return app.SetRoot(newFrame(list, footer)).Run()
}
