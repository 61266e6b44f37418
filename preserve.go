package hlist

// ScrollPosition locates the viewport: the index of the top row and how many
// of its lines are scrolled out above the viewport.
type ScrollPosition struct {
	Top    int
	Offset int
}

// ScrollPreserver keeps the viewport still while rows are appended. The list
// captures the position right before the row count grows and restores it at
// the start of the next layout pass.
type ScrollPreserver struct {
	enabled bool
	count   int

	pending  bool
	captured ScrollPosition
}

// NewScrollPreserver returns a preserver that tracks count rows.
func NewScrollPreserver(enabled bool, count int) *ScrollPreserver {
	return &ScrollPreserver{enabled: enabled, count: count}
}

// SetEnabled turns preservation on or off. Disabling drops a pending restore.
func (p *ScrollPreserver) SetEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled {
		p.pending = false
	}
}

// Capture records current if newCount is larger than the tracked count.
// Shrinking or equal counts are only tracked.
func (p *ScrollPreserver) Capture(newCount int, current ScrollPosition) {
	grew := newCount > p.count
	p.count = newCount
	if !p.enabled || !grew {
		return
	}
	if !p.pending {
		p.captured = current
		p.pending = true
	}
}

// Restore returns the captured position once. ok is false when nothing was
// captured since the last call.
func (p *ScrollPreserver) Restore() (pos ScrollPosition, ok bool) {
	if !p.enabled || !p.pending {
		return ScrollPosition{}, false
	}
	p.pending = false
	return p.captured, true
}

// Count returns the tracked row count.
func (p *ScrollPreserver) Count() int {
	return p.count
}
