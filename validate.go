package hlist

// Validate checks cfg without side effects and returns a
// *ConfigurationError for the first rule it breaks. The rules run in a fixed
// order so the same configuration always yields the same message.
func Validate[T any](cfg Config[T]) error {
	hasItems := cfg.Items != nil
	hasInitialItems := cfg.InitialItems != nil
	hasDataLoader := cfg.DataLoader != nil
	hasRegistry := cfg.Registry != nil
	hasRenderItem := cfg.RenderItem != nil
	hasElements := cfg.Elements != nil
	hasInitialElements := cfg.InitialElements != nil
	hasElementsLoader := cfg.ElementsLoader != nil

	if hasDataLoader && hasElementsLoader {
		return newConfigurationError(
			"DataLoader and ElementsLoader are mutually exclusive",
			"keep DataLoader for registry or renderItem mode, ElementsLoader for elements mode",
		)
	}

	itemSource := hasItems || hasDataLoader || hasInitialItems

	switch cfg.Mode {
	case ModeRegistry:
		if !hasRegistry {
			return newConfigurationError(
				"registry mode requires a Registry",
				"map every item kind to a RenderFunc in Config.Registry",
			)
		}
		if !itemSource {
			return newConfigurationError(
				"registry mode requires Items, InitialItems or a DataLoader",
				"supply the data to render",
			)
		}
		if hasElementsLoader || hasElements {
			return newConfigurationError(
				"registry mode does not accept Elements or an ElementsLoader",
				"use ModeElements for pre-built rows",
			)
		}
	case ModeRenderItem:
		if !hasRenderItem {
			return newConfigurationError(
				"renderItem mode requires RenderItem",
				"set Config.RenderItem to build a row per item",
			)
		}
		if !itemSource {
			return newConfigurationError(
				"renderItem mode requires Items, InitialItems or a DataLoader",
				"supply the data to render",
			)
		}
		if hasElementsLoader || hasRegistry || hasElements {
			return newConfigurationError(
				"renderItem mode does not accept a Registry, Elements or an ElementsLoader",
				"use ModeRegistry for kind-based rendering or ModeElements for pre-built rows",
			)
		}
	case ModeElements:
		if !hasElements && !hasElementsLoader && !hasInitialElements {
			return newConfigurationError(
				"elements mode requires Elements, InitialElements or an ElementsLoader",
				"supply the pre-built rows to show",
			)
		}
		if hasDataLoader || hasItems || hasRegistry || hasRenderItem {
			return newConfigurationError(
				"elements mode does not accept Items, a DataLoader, a Registry or RenderItem",
				"use ModeRegistry or ModeRenderItem to render data items",
			)
		}
	}

	if cfg.Divider == DividerCustom && cfg.RenderDivider == nil {
		return newConfigurationError(
			"a custom divider requires RenderDivider",
			"set Config.RenderDivider or choose DividerLine",
		)
	}

	switch cfg.Mode {
	case ModeRegistry, ModeRenderItem, ModeElements:
	default:
		return newConfigurationError(
			"unknown mode "+cfg.Mode.String(),
			"set Config.Mode to ModeRegistry, ModeRenderItem or ModeElements",
		)
	}
	if cfg.PageSize < 0 {
		return newConfigurationError("PageSize must not be negative", "use 0 for the default page size")
	}
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return newConfigurationError("Threshold must be between 0 and 1", "use 0 to trigger on the first visible row")
	}
	if cfg.RootMargin < 0 || cfg.Gap < 0 {
		return newConfigurationError("RootMargin and Gap must not be negative", "use 0 to disable them")
	}
	return nil
}
