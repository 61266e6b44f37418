package hlist

// SentinelOptions tunes when a Sentinel fires.
type SentinelOptions struct {
	Enabled bool
	// RootMargin grows the viewport by this many rows on the top and bottom
	// edges.
	RootMargin int
	// Threshold is the share of the anchor's rows, from 0 to 1, that must be
	// inside the grown viewport. Zero means any row.
	Threshold float64
}

// Sentinel watches the trailing anchor of a list and calls onIntersect each
// time the anchor scrolls into view. It holds at most one observer, and the
// previous one is disconnected before another is created.
type Sentinel struct {
	onIntersect func()
	opts        SentinelOptions

	anchor      *Anchor
	observer    *IntersectionObserver
	attachments int
}

// NewSentinel returns a sentinel without an anchor.
func NewSentinel(onIntersect func(), opts SentinelOptions) *Sentinel {
	return &Sentinel{
		onIntersect: onIntersect,
		opts:        opts,
	}
}

// SetRef attaches the sentinel to anchor. A nil anchor detaches it.
func (s *Sentinel) SetRef(anchor *Anchor) {
	if s.anchor == anchor {
		return
	}
	s.anchor = anchor
	s.reattach()
}

// SetEnabled turns observation on or off. Disabling disconnects the observer
// at once, so no callback can follow.
func (s *Sentinel) SetEnabled(enabled bool) {
	if s.opts.Enabled == enabled {
		return
	}
	s.opts.Enabled = enabled
	s.reattach()
}

// Enabled reports whether the sentinel is enabled.
func (s *Sentinel) Enabled() bool {
	return s.opts.Enabled
}

func (s *Sentinel) reattach() {
	s.Disconnect()
	if !s.opts.Enabled || s.anchor == nil {
		return
	}
	s.observer = newIntersectionObserver(s.anchor, s.opts.RootMargin, s.opts.Threshold, s.onIntersect)
	s.attachments++
}

// Disconnect drops the current observer. The list calls it on unmount.
func (s *Sentinel) Disconnect() {
	if s.observer == nil {
		return
	}
	s.observer.Disconnect()
	s.observer = nil
}

// Observing reports whether an observer is connected.
func (s *Sentinel) Observing() bool {
	return s.observer != nil
}

// Attachments returns how many observers the sentinel has created.
func (s *Sentinel) Attachments() int {
	return s.attachments
}

// Check feeds the latest layout to the observer. viewport is the list's inner
// rectangle.
func (s *Sentinel) Check(viewport Rect) {
	if s.observer == nil {
		return
	}
	s.observer.Observe(viewport)
}

// IntersectionObserver reports when a target enters a viewport. It remembers
// the last visibility so the callback runs once per transition.
type IntersectionObserver struct {
	target     *Anchor
	rootMargin int
	threshold  float64
	callback   func()

	visible   bool
	connected bool
}

func newIntersectionObserver(target *Anchor, rootMargin int, threshold float64, callback func()) *IntersectionObserver {
	return &IntersectionObserver{
		target:     target,
		rootMargin: rootMargin,
		threshold:  threshold,
		callback:   callback,
		connected:  true,
	}
}

// Observe compares the target's current placement against viewport and runs
// the callback on a hidden to visible transition.
func (o *IntersectionObserver) Observe(viewport Rect) {
	if !o.connected {
		return
	}
	visible := o.intersects(viewport)
	entered := visible && !o.visible
	o.visible = visible
	if entered && o.callback != nil {
		o.callback()
	}
}

// Disconnect stops the observer for good.
func (o *IntersectionObserver) Disconnect() {
	o.connected = false
}

// Connected reports whether Disconnect has not been called yet.
func (o *IntersectionObserver) Connected() bool {
	return o.connected
}

func (o *IntersectionObserver) intersects(viewport Rect) bool {
	if viewport.Empty() || !o.target.Placed() {
		return false
	}
	x, y, width, height := o.target.GetRect()
	if width <= 0 || height <= 0 {
		return false
	}
	if x+width <= viewport.X || x >= viewport.X+viewport.Width {
		return false
	}

	top := viewport.Y - o.rootMargin
	bottom := viewport.Y + viewport.Height + o.rootMargin
	overlap := min(y+height, bottom) - max(y, top)
	if overlap <= 0 {
		return false
	}
	return float64(overlap)/float64(height) >= o.threshold
}
