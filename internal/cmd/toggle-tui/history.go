package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/toggle-tui/internal/store"
	"github.com/leighmacdonald/toggle-tui/internal/ui/component"
)

type ClickReader interface {
	RecentClicks(ctx context.Context, limit int) ([]store.Click, error)
	ClickCounts(ctx context.Context) ([]store.ClickCount, error)
}

func printHistory(ctx context.Context, out io.Writer, clicks ClickReader, limit int) error {
	recent, errRecent := clicks.RecentClicks(ctx, limit)
	if errRecent != nil {
		return errRecent
	}

	counts, errCounts := clicks.ClickCounts(ctx)
	if errCounts != nil {
		return errCounts
	}

	if len(recent) == 0 {
		_, err := fmt.Fprintln(out, "No clicks recorded yet")

		return err
	}

	recentTable := component.NewUnstyledTable("Toggle", "Clicked", "ID", "Active", "When")
	for _, click := range recent {
		recentTable.Row(click.ToggleName, strconv.Itoa(click.ItemIndex), click.ItemID,
			strconv.Itoa(click.ActiveIndex), humanize.Time(click.CreatedOn))
	}

	countTable := component.NewUnstyledTable("Toggle", "Item", "ID", "Clicks", "Last")
	for _, count := range counts {
		countTable.Row(count.ToggleName, strconv.Itoa(count.ItemIndex), count.ItemID,
			humanize.Comma(count.Count), humanize.Time(count.LastClick))
	}

	_, err := fmt.Fprintf(out, "%s\n\n%s\n", recentTable.Render(), countTable.Render())

	return err
}
