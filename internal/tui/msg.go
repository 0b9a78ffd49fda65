package tui

import "github.com/rgplazas/TaskMaster/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgSnapshot carries a manager state snapshot into the update loop. The
// manager's listener pushes snapshots onto a channel; a pump command
// delivers them here one at a time.
type MsgSnapshot struct {
	Snapshot usecase.Snapshot
}

func (MsgSnapshot) sealed() {}

// MsgClearNotice expires the transient notification line.
type MsgClearNotice struct{}

func (MsgClearNotice) sealed() {}
