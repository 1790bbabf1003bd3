package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrQuery = errors.New("query error")

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

type Click struct {
	ClickID     int64
	ToggleName  string
	ItemIndex   int
	ItemID      string
	ActiveIndex int
	CreatedOn   time.Time
}

type InsertClickParams struct {
	ToggleName  string
	ItemIndex   int
	ItemID      string
	ActiveIndex int
	CreatedOn   time.Time
}

const insertClick = `INSERT INTO toggle_click (toggle_name, item_index, item_id, active_index, created_on)
VALUES (?, ?, ?, ?, ?)
RETURNING click_id`

func (q *Queries) InsertClick(ctx context.Context, arg InsertClickParams) (int64, error) {
	var clickID int64
	row := q.db.QueryRowContext(ctx, insertClick, arg.ToggleName, arg.ItemIndex, arg.ItemID,
		arg.ActiveIndex, arg.CreatedOn.UnixMilli())
	if err := row.Scan(&clickID); err != nil {
		return 0, errors.Join(err, ErrQuery)
	}

	return clickID, nil
}

const recentClicks = `SELECT click_id, toggle_name, item_index, item_id, active_index, created_on
FROM toggle_click
ORDER BY created_on DESC, click_id DESC
LIMIT ?`

func (q *Queries) RecentClicks(ctx context.Context, limit int) ([]Click, error) {
	rows, err := q.db.QueryContext(ctx, recentClicks, limit)
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}
	defer rows.Close()

	var items []Click
	for rows.Next() {
		var (
			click   Click
			created int64
		)
		if errScan := rows.Scan(&click.ClickID, &click.ToggleName, &click.ItemIndex, &click.ItemID,
			&click.ActiveIndex, &created); errScan != nil {
			return nil, errors.Join(errScan, ErrQuery)
		}
		click.CreatedOn = time.UnixMilli(created)
		items = append(items, click)
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	return items, nil
}

type ClickCount struct {
	ToggleName string
	ItemIndex  int
	ItemID     string
	Count      int64
	LastClick  time.Time
}

// Item IDs are optional so counts are keyed by index. The most recent ID seen for an index
// is reported alongside it.
const clickCounts = `SELECT toggle_name, item_index,
       (SELECT latest.item_id FROM toggle_click latest
        WHERE latest.toggle_name = toggle_click.toggle_name AND latest.item_index = toggle_click.item_index
        ORDER BY latest.created_on DESC, latest.click_id DESC LIMIT 1),
       COUNT(*), MAX(created_on)
FROM toggle_click
GROUP BY toggle_name, item_index
ORDER BY toggle_name, item_index`

func (q *Queries) ClickCounts(ctx context.Context) ([]ClickCount, error) {
	rows, err := q.db.QueryContext(ctx, clickCounts)
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}
	defer rows.Close()

	var items []ClickCount
	for rows.Next() {
		var (
			count ClickCount
			last  int64
		)
		if errScan := rows.Scan(&count.ToggleName, &count.ItemIndex, &count.ItemID, &count.Count, &last); errScan != nil {
			return nil, errors.Join(errScan, ErrQuery)
		}
		count.LastClick = time.UnixMilli(last)
		items = append(items, count)
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	return items, nil
}
