package notifier

import (
	"fmt"
	"strings"

	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// MessageFormatter renders engine events as user-facing text. The payload is
// deliberately minimal; when IncludeDiffSummary is on, change messages carry
// a compact line delta computed from the compared bodies.
type MessageFormatter struct {
	includeDiffSummary bool
	dmp                *diffmatchpatch.DiffMatchPatch
}

// NewMessageFormatter creates a new MessageFormatter.
func NewMessageFormatter(includeDiffSummary bool) *MessageFormatter {
	return &MessageFormatter{
		includeDiffSummary: includeDiffSummary,
		dmp:                diffmatchpatch.New(),
	}
}

// FormatChange renders a change event.
func (f *MessageFormatter) FormatChange(event watcher.ChangeEvent) string {
	if !f.includeDiffSummary {
		return fmt.Sprintf("Updated: %s", event.URL)
	}

	added, removed := f.lineDelta(event.Previous, event.Current)
	return fmt.Sprintf("Updated: %s (+%d/-%d lines)", event.URL, added, removed)
}

// FormatError renders a fetch-failure event that terminated a watcher.
func (f *MessageFormatter) FormatError(event watcher.ErrorEvent) string {
	return fmt.Sprintf("invalid endpoint, stopping monitor for: %s (%s)", event.Name, event.URL)
}

// lineDelta counts added and removed lines between two bodies using a
// line-mode diff.
func (f *MessageFormatter) lineDelta(previous, current string) (added, removed int) {
	prevChars, curChars, lines := f.dmp.DiffLinesToChars(previous, current)
	diffs := f.dmp.DiffMain(prevChars, curChars, false)
	diffs = f.dmp.DiffCharsToLines(diffs, lines)

	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		if n == 0 && d.Text != "" {
			n = 1
		}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}
