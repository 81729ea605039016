package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsFlush(t *testing.T) {
	cmds := newCommands()
	cmds.Notify(EventPieceLocked)
	cmds.Notify(EventRowsCleared)

	assert.Equal(t, []Event{EventPieceLocked, EventRowsCleared}, cmds.Pending())

	rec := &eventRecorder{}
	cmds.Flush(rec)

	assert.Equal(t, []Event{EventPieceLocked, EventRowsCleared}, rec.events)
	assert.Empty(t, cmds.Pending())

	cmds.Flush(rec)
	assert.Len(t, rec.events, 2)
}
