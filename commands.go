package hlist

import "slices"

// Command is a side effect an input handler asks the Application to carry
// out once the event is handled.
type Command any

// BatchCommand runs several commands in order.
type BatchCommand []Command

// AppendCommand merges next into current. Nil commands are skipped and
// batches are flattened.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	merged := slices.Clone(asBatch(current))
	return append(merged, asBatch(next)...)
}

func asBatch(cmd Command) BatchCommand {
	if batch, ok := cmd.(BatchCommand); ok {
		return batch
	}
	return BatchCommand{cmd}
}

// SetFocusCommand moves keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen after the event.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}
