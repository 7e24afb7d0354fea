package layout

import (
	"reflect"
	"testing"
)

func TestCommands_SinglePass(t *testing.T) {
	a := DrawRectangle{ID: "a", Width: 10, Height: 10}
	b := DrawText{Text: "b"}
	c := DrawCustom{ID: "c", Data: 7}

	cmds := NewCommands(a, b)
	cmds.Push(c)

	if got := cmds.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	first, ok := cmds.Next()
	if !ok || first != Command(a) {
		t.Fatalf("Next() = %v, %v, want %v, true", first, ok, a)
	}
	if got := cmds.Len(); got != 2 {
		t.Errorf("Len() after Next = %d, want 2", got)
	}

	var rest []Command
	for cmd := range cmds.All() {
		rest = append(rest, cmd)
	}
	if want := []Command{b, c}; !reflect.DeepEqual(rest, want) {
		t.Errorf("All() = %v, want %v", rest, want)
	}
	if !cmds.IsEmpty() {
		t.Error("IsEmpty() = false after consuming all commands")
	}
	if cmd, ok := cmds.Next(); ok {
		t.Errorf("Next() on empty = %v, true", cmd)
	}
}

func TestCommands_AllStopsEarly(t *testing.T) {
	cmds := NewCommands(DrawText{Text: "1"}, DrawText{Text: "2"}, DrawText{Text: "3"})
	for range cmds.All() {
		break
	}
	if got := cmds.Len(); got != 2 {
		t.Errorf("Len() after early break = %d, want 2", got)
	}
}

func TestCommand_Bounds(t *testing.T) {
	tests := map[string]struct {
		cmd      Command
		expected Rect
	}{
		"rectangle": {cmd: DrawRectangle{X: 1, Y: 2, Width: 3, Height: 4}, expected: NewRect(1, 2, 3, 4)},
		"text":      {cmd: DrawText{X: 5, Y: 6}, expected: NewRect(5, 6, 0, 0)},
		"custom":    {cmd: DrawCustom{X: 1, Y: 1, Width: 2, Height: 2}, expected: NewRect(1, 1, 2, 2)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cmd.Bounds(); got != tt.expected {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
