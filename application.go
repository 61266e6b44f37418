package hlist

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v3"
	"go.uber.org/atomic"
)

// dispatchQueueSize is the number of dispatched functions buffered before
// Dispatch hands them to a goroutine.
const dispatchQueueSize = 100

// MouseAction is what the mouse did, derived from consecutive mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
)

// Application runs the terminal event loop around a root primitive. It is the
// usual Dispatcher for a HeterogeneousList: page results produced on loader
// goroutines are applied inside the loop and followed by a redraw.
//
//	app := hlist.NewApplication()
//	list, err := hlist.NewHeterogeneousList(cfg)
//	...
//	list.Mount(app)
//	if err := app.SetRoot(list).Run(); err != nil {
//	    log.Fatal(err)
//	}
type Application struct {
	mu     sync.Mutex
	screen tcell.Screen
	root   Primitive
	focus  Primitive
	// clearNext clears the screen before the next frame.
	clearNext bool

	updates  chan func()
	running  *atomic.Bool
	stopped  chan struct{}
	stopOnce sync.Once

	// Only touched by the loop.
	mouse   mouseState
	pasting bool
	paste   strings.Builder
}

type mouseState struct {
	capture      Primitive
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
}

// NewApplication returns an application that creates its terminal screen
// when it runs.
func NewApplication() *Application {
	return &Application{
		updates: make(chan func(), dispatchQueueSize),
		running: atomic.NewBool(false),
		stopped: make(chan struct{}),
	}
}

// SetScreen sets the screen Run uses instead of opening the terminal. It has
// no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.clearNext = true
	}
	return a
}

// SetRoot sets the primitive that fills the screen and gives it focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	a.clearNext = true
	a.mu.Unlock()

	a.setFocus(root)
	return a
}

// Run opens the terminal unless a screen was set, then handles events and
// dispatched functions until Stop is called or the terminal fails.
func (a *Application) Run() error {
	screen, err := a.openScreen()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.running.Store(true)
	defer a.running.Store(false)
	internalLogger().Debug("event loop started")

	a.draw()
	events := screen.EventQ()
	for {
		select {
		case event := <-events:
			if event == nil {
				return nil
			}
			redraw, err := a.handleEvent(event)
			if err != nil {
				internalLogger().Error("terminal error", "error", err)
				a.Stop()
				return err
			}
			if redraw {
				a.draw()
			}
		case f := <-a.updates:
			f()
			a.draw()
		case <-a.stopped:
			return nil
		}
	}
}

func (a *Application) openScreen() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen != nil {
		return a.screen, nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnablePaste()
	a.screen = screen
	return screen, nil
}

// Stop ends Run and releases the terminal. Later calls do nothing.
func (a *Application) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopped)
		a.mu.Lock()
		screen := a.screen
		a.screen = nil
		a.mu.Unlock()
		if screen != nil {
			screen.Fini()
		}
	})
}

// Dispatch queues f for the event loop, which runs it and redraws. It never
// blocks, so loader goroutines and the loop itself may call it. Functions
// dispatched before Run wait for the loop; those dispatched after Stop are
// dropped.
func (a *Application) Dispatch(f func()) {
	select {
	case <-a.stopped:
		internalLogger().Debug("dispatch after stop dropped")
		return
	default:
	}
	select {
	case a.updates <- f:
	default:
		// The queue is full. The loop may be the caller, so wait elsewhere.
		go func() {
			select {
			case a.updates <- f:
			case <-a.stopped:
			}
		}()
	}
}

// handleEvent reports whether the screen needs a redraw.
func (a *Application) handleEvent(event tcell.Event) (bool, error) {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.pasting {
			a.collectPaste(event)
			return false, nil
		}
		if root := a.rootPrimitive(); root != nil && root.HasFocus() {
			return a.execute(root.InputHandler(event)), nil
		}
	case *tcell.EventPaste:
		if event.Start() {
			a.pasting = true
			a.paste.Reset()
			return false, nil
		}
		a.pasting = false
		if root := a.rootPrimitive(); root != nil && root.HasFocus() && a.paste.Len() > 0 {
			return a.execute(root.PasteHandler(a.paste.String())), nil
		}
	case *tcell.EventResize:
		a.mu.Lock()
		a.clearNext = true
		a.mu.Unlock()
		return true, nil
	case *tcell.EventMouse:
		return a.handleMouse(event), nil
	case *tcell.EventError:
		return false, event
	}
	return false, nil
}

func (a *Application) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		a.paste.WriteString(event.Str())
	case tcell.KeyEnter:
		a.paste.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.WriteByte('\t')
	}
}

// handleMouse turns a raw mouse event into actions and sends them to the
// capturing primitive, or to the root. A click is a press and release on the
// same cell.
func (a *Application) handleMouse(event *tcell.EventMouse) bool {
	x, y := event.Position()
	buttons := event.Buttons()
	m := &a.mouse

	var actions []MouseAction
	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
	}
	if (buttons^m.buttons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			actions = append(actions, MouseLeftDown)
			m.downX, m.downY = x, y
		} else {
			actions = append(actions, MouseLeftUp)
			if x == m.downX && y == m.downY {
				actions = append(actions, MouseLeftClick)
			}
		}
	}
	if buttons&tcell.WheelUp != 0 {
		actions = append(actions, MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		actions = append(actions, MouseScrollDown)
	}
	m.x, m.y, m.buttons = x, y, buttons

	redraw := false
	for _, action := range actions {
		target := m.capture
		if target == nil {
			target = a.rootPrimitive()
		}
		if target == nil {
			continue
		}
		capture, cmd := target.MouseHandler(action, event)
		m.capture = capture
		if a.execute(cmd) {
			redraw = true
		}
	}
	return redraw
}

func (a *Application) rootPrimitive() Primitive {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.root
}

// execute runs cmd and reports whether the screen needs a redraw.
func (a *Application) execute(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.execute(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.mu.Lock()
		changed := a.focus != c.Target
		a.mu.Unlock()
		a.setFocus(c.Target)
		return changed
	}
	return false
}

// setFocus blurs the focused primitive and focuses p, following delegation.
func (a *Application) setFocus(p Primitive) {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.mu.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(a.setFocus)
	}
}

func (a *Application) draw() {
	a.mu.Lock()
	screen, root, clear := a.screen, a.root, a.clearNext
	a.clearNext = false
	a.mu.Unlock()

	if screen == nil || root == nil {
		return
	}
	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell diffs against its back buffer, so only clear after a resize or
	// a new root.
	if clear {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

var _ Dispatcher = (*Application)(nil)
