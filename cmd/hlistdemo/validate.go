package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/xqrs/hlist"
)

// validateOptions are the flags of the validate command. The booleans say
// which sources the configuration supplies.
type validateOptions struct {
	mode            string
	divider         string
	pageSize        int
	threshold       float64
	items           bool
	initialItems    bool
	loader          bool
	registry        bool
	renderItem      bool
	elements        bool
	initialElements bool
	elementsLoader  bool
	renderDivider   bool
}

func newValidateCmd(logs *logOptions) *cobra.Command {
	var opts validateOptions
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a list configuration assembled from flags",
		Long: `validate builds a list configuration from the given flags and reports the
first rule it breaks, with a suggestion. It exits non-zero on a bad configuration.`,
		Example: `  hlistdemo validate --mode registry --registry --items
  hlistdemo validate --mode elements --loader`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, logs, &opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.mode, "mode", "registry", "presentation mode (registry|renderItem|elements)")
	flags.StringVar(&opts.divider, "divider", "none", "divider (none|line|dashed|custom)")
	flags.IntVar(&opts.pageSize, "page-size", hlist.DefaultPageSize, "page size")
	flags.Float64Var(&opts.threshold, "threshold", 0, "sentinel threshold")
	flags.BoolVar(&opts.items, "items", false, "supply Items")
	flags.BoolVar(&opts.initialItems, "initial-items", false, "supply InitialItems")
	flags.BoolVar(&opts.loader, "loader", false, "supply a DataLoader")
	flags.BoolVar(&opts.registry, "registry", false, "supply a Registry")
	flags.BoolVar(&opts.renderItem, "render-item", false, "supply RenderItem")
	flags.BoolVar(&opts.elements, "elements", false, "supply Elements")
	flags.BoolVar(&opts.initialElements, "initial-elements", false, "supply InitialElements")
	flags.BoolVar(&opts.elementsLoader, "elements-loader", false, "supply an ElementsLoader")
	flags.BoolVar(&opts.renderDivider, "render-divider", false, "supply RenderDivider")
	return cmd
}

func runValidate(cmd *cobra.Command, logs *logOptions, opts *validateOptions) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	stderr := cmd.ErrOrStderr()

	if err := setupLogging(logs, false); err != nil {
		return err
	}

	cfg, err := opts.config()
	if err != nil {
		errorColor.Fprintln(stderr, err)
		return err
	}
	if err := hlist.Validate(cfg); err != nil {
		reportConfigError(stderr, err)
		return err
	}
	okColor.Fprintf(cmd.OutOrStdout(), "ok: valid %s configuration\n", cfg.Mode)
	return nil
}

// config assembles a configuration with empty stand-ins for every supplied
// source.
func (o *validateOptions) config() (hlist.Config[feedItem], error) {
	cfg := hlist.DefaultConfig[feedItem]()
	mode, err := hlist.ParseMode(o.mode)
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode
	if cfg.Divider, err = hlist.ParseDividerMode(o.divider); err != nil {
		return cfg, err
	}
	cfg.PageSize = o.pageSize
	cfg.Threshold = o.threshold

	if o.items {
		cfg.Items = []feedItem{}
	}
	if o.initialItems {
		cfg.InitialItems = []feedItem{}
	}
	if o.loader {
		cfg.DataLoader = func(context.Context, hlist.PageRequest) (hlist.Page[feedItem], error) {
			return hlist.Page[feedItem]{}, nil
		}
	}
	if o.registry {
		cfg.Registry = feedRegistry()
	}
	if o.renderItem {
		cfg.RenderItem = renderGeneric
	}
	if o.elements {
		cfg.Elements = []hlist.ListItem{}
	}
	if o.initialElements {
		cfg.InitialElements = []hlist.ListItem{}
	}
	if o.elementsLoader {
		cfg.ElementsLoader = func(context.Context, hlist.PageRequest) (hlist.Page[hlist.ListItem], error) {
			return hlist.Page[hlist.ListItem]{}, nil
		}
	}
	if o.renderDivider {
		cfg.RenderDivider = func(int) hlist.ListItem { return hlist.NewDivider(hlist.BoxDrawingsHeavyHorizontal) }
	}
	return cfg, nil
}

// reportConfigError prints a configuration error with its suggestion.
func reportConfigError(w io.Writer, err error) {
	var configErr *hlist.ConfigurationError
	if !errors.As(err, &configErr) {
		errorColor.Fprintln(w, err)
		return
	}
	errorColor.Fprintln(w, "configuration error:", configErr.Message)
	if configErr.Suggestion != "" {
		suggestionColor.Fprintln(w, "  suggestion:", configErr.Suggestion)
	}
}
