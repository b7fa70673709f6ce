package notifier

import (
	"testing"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/stretchr/testify/assert"
)

func TestMessageFormatter_FormatChange(t *testing.T) {
	event := watcher.ChangeEvent{
		Tenant:   "1001",
		Name:     "docs",
		URL:      "http://example.com/docs",
		Previous: "line one\nline two\n",
		Current:  "line one\nline two changed\nline three\n",
	}

	t.Run("without diff summary", func(t *testing.T) {
		formatter := NewMessageFormatter(false)

		assert.Equal(t, "Updated: http://example.com/docs", formatter.FormatChange(event))
	})

	t.Run("with diff summary", func(t *testing.T) {
		formatter := NewMessageFormatter(true)

		assert.Equal(t, "Updated: http://example.com/docs (+2/-1 lines)", formatter.FormatChange(event))
	})
}

func TestMessageFormatter_FormatError(t *testing.T) {
	formatter := NewMessageFormatter(false)
	event := watcher.ErrorEvent{
		Tenant: "1001",
		Name:   "docs",
		URL:    "http://example.com/docs",
		Err:    errorwrapper.NewError("connection refused"),
	}

	text := formatter.FormatError(event)

	assert.Equal(t, "invalid endpoint, stopping monitor for: docs (http://example.com/docs)", text)
}

func TestMessageFormatter_LineDelta(t *testing.T) {
	formatter := NewMessageFormatter(true)

	tests := []struct {
		name        string
		previous    string
		current     string
		wantAdded   int
		wantRemoved int
	}{
		{
			name:        "identical bodies",
			previous:    "a\nb\n",
			current:     "a\nb\n",
			wantAdded:   0,
			wantRemoved: 0,
		},
		{
			name:        "pure addition",
			previous:    "a\n",
			current:     "a\nb\nc\n",
			wantAdded:   2,
			wantRemoved: 0,
		},
		{
			name:        "pure removal",
			previous:    "a\nb\nc\n",
			current:     "a\n",
			wantAdded:   0,
			wantRemoved: 2,
		},
		{
			name:        "empty previous",
			previous:    "",
			current:     "a\nb\n",
			wantAdded:   2,
			wantRemoved: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := formatter.lineDelta(tt.previous, tt.current)

			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantRemoved, removed)
		})
	}
}
