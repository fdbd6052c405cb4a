package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dora-styles/internal/config"
)

func TestTerminalCollect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Choices
	}{
		{
			name:  "all defaults",
			input: "\n\n\n",
			want:  Choices{UseAliases: true, StyleLanguage: config.SCSS, GlobalStylePath: "src/styles/global.scss"},
		},
		{
			name:  "explicit answers",
			input: "n\ncss\napp/styles/main.css\n",
			want:  Choices{UseAliases: false, StyleLanguage: config.CSS, GlobalStylePath: "app/styles/main.css"},
		},
		{
			name:  "default path follows language",
			input: "yes\nCSS\n\n",
			want:  Choices{UseAliases: true, StyleLanguage: config.CSS, GlobalStylePath: "src/styles/global.css"},
		},
		{
			name:  "retries invalid answers",
			input: "maybe\ny\nless\ncss\n\n",
			want:  Choices{UseAliases: true, StyleLanguage: config.CSS, GlobalStylePath: "src/styles/global.css"},
		},
		{
			name:  "end of input takes defaults",
			input: "n\n",
			want:  Choices{UseAliases: false, StyleLanguage: config.SCSS, GlobalStylePath: "src/styles/global.scss"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewTerminal(strings.NewReader(tt.input), &out).Collect(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Which styling language do you prefer?")
		})
	}
}

func TestTerminalGivesUp(t *testing.T) {
	var out bytes.Buffer
	_, err := NewTerminal(strings.NewReader("y\nless\nsass\nstylus\n"), &out).Collect(context.Background())
	assert.Error(t, err)
}

func TestTerminalCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTerminal(strings.NewReader("\n"), &bytes.Buffer{}).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaults(t *testing.T) {
	c, err := Defaults{}.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Choices{UseAliases: true, StyleLanguage: config.SCSS, GlobalStylePath: "src/styles/global.scss"}, c)
}
