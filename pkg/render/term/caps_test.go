package term

import "testing"

func TestColorLevel(t *testing.T) {
	type tc struct {
		env      map[string]string
		expected ColorLevel
	}

	tests := map[string]tc{
		"colorterm truecolor": {env: map[string]string{"COLORTERM": "truecolor"}, expected: ColorTrue},
		"colorterm 24bit":     {env: map[string]string{"COLORTERM": "24bit", "TERM": "dumb"}, expected: ColorTrue},
		"kitty":               {env: map[string]string{"KITTY_WINDOW_ID": "1"}, expected: ColorTrue},
		"xterm 256":           {env: map[string]string{"TERM": "xterm-256color"}, expected: Color256},
		"dumb":                {env: map[string]string{"TERM": "dumb"}, expected: ColorNone},
		"plain xterm":         {env: map[string]string{"TERM": "xterm"}, expected: Color16},
		"nothing set":         {env: map[string]string{}, expected: Color16},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := colorLevel(getenv); got != tt.expected {
				t.Errorf("colorLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}
