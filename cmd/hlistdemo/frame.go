package main

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/hlist"
	"github.com/xqrs/hlist/help"
)

// frame stacks the list above its help footer and handles the global keys.
type frame struct {
	*hlist.Box
	list   hlist.Primitive
	footer *help.Help
}

func newFrame(list hlist.Primitive, footer *help.Help) *frame {
	return &frame{Box: hlist.NewBox(), list: list, footer: footer}
}

func (f *frame) Draw(screen tcell.Screen) {
	f.DrawForSubclass(screen, f)
	x, y, width, height := f.GetInnerRect()
	footerHeight := min(f.footer.Height(width), height)
	f.list.SetRect(x, y, width, height-footerHeight)
	f.footer.SetRect(x, y+height-footerHeight, width, footerHeight)
	f.list.Draw(screen)
	f.footer.Draw(screen)
}

func (f *frame) InputHandler(event *tcell.EventKey) hlist.Command {
	switch {
	case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyCtrlC, event.Key() == tcell.KeyRune && event.Str() == "q":
		return hlist.QuitCommand{}
	case event.Key() == tcell.KeyRune && event.Str() == "?":
		f.footer.SetShowAll(!f.footer.ShowAll())
		return hlist.RedrawCommand{}
	}
	return f.list.InputHandler(event)
}

func (f *frame) MouseHandler(action hlist.MouseAction, event *tcell.EventMouse) (hlist.Primitive, hlist.Command) {
	return f.list.MouseHandler(action, event)
}

func (f *frame) Focus(delegate func(p hlist.Primitive)) {
	delegate(f.list)
}

func (f *frame) HasFocus() bool {
	return f.list.HasFocus()
}
