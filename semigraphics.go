package hlist

// Glyphs used for frames, dividers and truncation. Written as \u escapes to
// keep the source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal           = "\u2500" // ─
	BoxDrawingsHeavyHorizontal           = "\u2501" // ━
	BoxDrawingsLightVertical             = "\u2502" // │
	BoxDrawingsHeavyVertical             = "\u2503" // ┃
	BoxDrawingsLightTripleDashHorizontal = "\u2504" // ┄
	BoxDrawingsLightDownAndRight         = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight         = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft          = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft          = "\u2513" // ┓
	BoxDrawingsLightUpAndRight           = "\u2514" // └
	BoxDrawingsHeavyUpAndRight           = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft            = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft            = "\u251b" // ┛
	BoxDrawingsLightArcDownAndRight      = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft       = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft         = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight        = "\u2570" // ╰

	// Cursor marker drawn in front of the selected list row.
	SemigraphicsCursor = "\u258c" // ▌
)
