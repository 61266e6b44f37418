package main

import (
	"fmt"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/hlist"
)

// feedItem is one entry of the generated feed. Kind selects its renderer in
// registry mode.
type feedItem struct {
	ID    int
	Kind  string
	Title string
	Body  string
	Done  bool
}

func (f feedItem) KindComponent() string {
	return f.Kind
}

var feedKinds = []string{"note", "task", "banner", "note", "task"}

// generateFeed returns total items cycling through the known kinds. Every
// unknownEvery-th item gets a kind without renderer; zero disables that.
func generateFeed(total, unknownEvery int) []feedItem {
	items := make([]feedItem, total)
	for i := range items {
		kind := feedKinds[i%len(feedKinds)]
		if unknownEvery > 0 && (i+1)%unknownEvery == 0 {
			kind = "poll"
		}
		items[i] = feedItem{
			ID:    i + 1,
			Kind:  kind,
			Title: fmt.Sprintf("Entry %d", i+1),
			Body:  fmt.Sprintf("Generated %s number %d. Long bodies wrap onto further lines when the terminal is narrow.", kind, i+1),
			Done:  i%3 == 0,
		}
	}
	return items
}

func feedRegistry() hlist.Registry[feedItem] {
	return hlist.Registry[feedItem]{
		"note":   renderNote,
		"task":   renderTask,
		"banner": renderBanner,
	}
}

func renderNote(item feedItem, index int) hlist.ListItem {
	return hlist.NewText(item.Title + ": " + item.Body)
}

func renderTask(item feedItem, index int) hlist.ListItem {
	mark := "[ ]"
	if item.Done {
		mark = "[x]"
	}
	return hlist.NewText(mark + " " + item.Title).
		SetStyle(tcell.StyleDefault.Foreground(hlist.Styles.SecondaryTextColor))
}

func renderBanner(item feedItem, index int) hlist.ListItem {
	return hlist.NewText(item.Title).
		SetAlignment(hlist.AlignmentCenter).
		SetStyle(tcell.StyleDefault.Foreground(hlist.Styles.InverseTextColor).Background(hlist.Styles.PrimaryTextColor).Bold(true))
}

// renderGeneric draws every item the same way, for renderItem mode.
func renderGeneric(item feedItem, index int) hlist.ListItem {
	return hlist.NewText(fmt.Sprintf("#%d %s (%s)", index+1, item.Title, item.Kind)).SetMaxLines(1)
}
