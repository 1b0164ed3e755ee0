package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-20 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"same year", time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), "Mar 4"},
		{"older", time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC), "Dec 25, 2025"},
		{"future", now.Add(2 * time.Hour), "Today"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.input, now))
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 chapter", Plural(1, "chapter"))
	assert.Equal(t, "0 chapters", Plural(0, "chapter"))
	assert.Equal(t, "50 chapters", Plural(50, "chapter"))
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	out := stripANSI(RenderBox("keys", "body"))
	assert.Contains(t, out, "KEYS")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}
