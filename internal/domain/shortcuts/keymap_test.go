package shortcuts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name   string
		evt    KeyEvent
		want   Command
		wantOK bool
	}{
		{name: "meta o", evt: KeyEvent{Key: "o", MetaKey: true}, want: CommandOpen, wantOK: true},
		{name: "ctrl O", evt: KeyEvent{Key: "O", CtrlKey: true}, want: CommandOpen, wantOK: true},
		{name: "save", evt: KeyEvent{Key: "s", CtrlKey: true}, want: CommandSave, wantOK: true},
		{name: "save as", evt: KeyEvent{Key: "S", CtrlKey: true, ShiftKey: true}, want: CommandSaveAs, wantOK: true},
		{name: "edit", evt: KeyEvent{Key: "e", MetaKey: true}, want: CommandEdit, wantOK: true},
		{name: "preview", evt: KeyEvent{Key: "r", MetaKey: true}, want: CommandPreview, wantOK: true},
		{name: "split", evt: KeyEvent{Key: "\\", CtrlKey: true}, want: CommandSplit, wantOK: true},
		{name: "no modifier", evt: KeyEvent{Key: "s"}},
		{name: "alt rejects", evt: KeyEvent{Key: "s", CtrlKey: true, AltKey: true}},
		{name: "unbound key", evt: KeyEvent{Key: "x", CtrlKey: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCommand(tt.evt)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeAction(t *testing.T) {
	action, ok := CommandEdit.ModeAction()
	assert.True(t, ok)
	assert.Equal(t, ActionEdit, action)

	action, ok = CommandSplit.ModeAction()
	assert.True(t, ok)
	assert.Equal(t, ActionSplit, action)

	_, ok = CommandSave.ModeAction()
	assert.False(t, ok)
}
