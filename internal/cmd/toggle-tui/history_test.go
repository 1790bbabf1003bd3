package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/leighmacdonald/toggle-tui/internal/store"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	recent []store.Click
	counts []store.ClickCount
}

func (f fakeReader) RecentClicks(_ context.Context, limit int) ([]store.Click, error) {
	return f.recent[:min(limit, len(f.recent))], nil
}

func (f fakeReader) ClickCounts(_ context.Context) ([]store.ClickCount, error) {
	return f.counts, nil
}

func TestPrintHistoryEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printHistory(t.Context(), &out, fakeReader{}, 10))
	require.Equal(t, "No clicks recorded yet\n", out.String())
}

func TestPrintHistory(t *testing.T) {
	created := time.Now().Add(-3 * time.Hour)
	reader := fakeReader{
		recent: []store.Click{
			{ToggleName: "Theme", ItemIndex: 1, ItemID: "dark", ActiveIndex: 0, CreatedOn: created},
			{ToggleName: "Sound", ItemIndex: 0, ItemID: "sound-on", ActiveIndex: 1, CreatedOn: created},
		},
		counts: []store.ClickCount{{ToggleName: "Theme", ItemIndex: 1, ItemID: "dark", Count: 1234, LastClick: created}},
	}

	var out bytes.Buffer
	require.NoError(t, printHistory(t.Context(), &out, reader, 1))

	rendered := out.String()
	require.Contains(t, rendered, "dark")
	require.NotContains(t, rendered, "sound-on")
	require.Contains(t, rendered, "1,234")
	require.Contains(t, rendered, "3 hours ago")
}

func TestPrintHistoryCountsByIndex(t *testing.T) {
	created := time.Now().Add(-time.Minute)
	reader := fakeReader{
		recent: []store.Click{{ToggleName: "Sound", ItemIndex: 1, CreatedOn: created}},
		counts: []store.ClickCount{
			{ToggleName: "Sound", ItemIndex: 0, Count: 7, LastClick: created},
			{ToggleName: "Sound", ItemIndex: 1, Count: 9, LastClick: created},
		},
	}

	var out bytes.Buffer
	require.NoError(t, printHistory(t.Context(), &out, reader, 10))

	rendered := out.String()
	require.Contains(t, rendered, "Item")
	require.Contains(t, rendered, "7")
	require.Contains(t, rendered, "9")
}
