package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/store"
	"github.com/leighmacdonald/toggle-tui/internal/ui/command"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	msgs chan tea.Msg
}

func (f fakeUI) Send(msg tea.Msg) { f.msgs <- msg }
func (f fakeUI) Run() error       { return nil }

type fakeRecorder struct {
	mu     sync.Mutex
	clicks []store.InsertClickParams
	err    error
}

func (f *fakeRecorder) InsertClick(_ context.Context, arg store.InsertClickParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return 0, f.err
	}
	f.clicks = append(f.clicks, arg)

	return int64(len(f.clicks)), nil
}

type fakeLoader struct {
	conf config.Config
	err  error
}

func (f fakeLoader) Read() (config.Config, error) { return f.conf, f.err }

func startApp(t *testing.T, loader ConfigReader, recorder ClickRecorder) (*App, fakeUI) {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	userInterface := fakeUI{msgs: make(chan tea.Msg, 4)}
	app := New(config.Config{}, loader, recorder, make(chan config.Config))
	app.ui = userInterface
	go app.Start(ctx)

	return app, userInterface
}

func receive(t *testing.T, userInterface fakeUI) tea.Msg {
	t.Helper()

	select {
	case msg := <-userInterface.msgs:
		return msg
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for ui message")

		return nil
	}
}

func TestAppRecordsClicks(t *testing.T) {
	recorder := &fakeRecorder{}
	app, _ := startApp(t, fakeLoader{}, recorder)

	now := time.Now()
	app.parentCtx <- command.ToggledMsg{Toggle: "Theme", Index: 0, ItemID: "light", Active: 1, Time: now}

	require.Eventually(t, func() bool {
		recorder.mu.Lock()
		defer recorder.mu.Unlock()

		return len(recorder.clicks) == 1
	}, time.Second, 10*time.Millisecond)

	require.Equal(t, store.InsertClickParams{ToggleName: "Theme", ItemID: "light", ActiveIndex: 1, CreatedOn: now},
		recorder.clicks[0])
}

func TestAppRecordFailure(t *testing.T) {
	app, userInterface := startApp(t, fakeLoader{}, &fakeRecorder{err: errors.New("disk full")})
	app.parentCtx <- command.ToggledMsg{Toggle: "Theme"}

	status, ok := receive(t, userInterface).(command.StatusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
}

func TestAppForwardsConfig(t *testing.T) {
	app, userInterface := startApp(t, fakeLoader{}, nil)

	conf := config.Config{FPS: 12}
	app.configUpdates <- conf
	require.Equal(t, conf, receive(t, userInterface))
}

func TestAppReload(t *testing.T) {
	conf := config.Config{FPS: 5}
	app, userInterface := startApp(t, fakeLoader{conf: conf}, nil)

	app.parentCtx <- command.ReloadConfigMsg{}
	require.Equal(t, conf, receive(t, userInterface))

	failing, failingUI := startApp(t, fakeLoader{err: errors.New("bad yaml")}, nil)
	failing.parentCtx <- command.ReloadConfigMsg{}
	status, ok := receive(t, failingUI).(command.StatusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
}
