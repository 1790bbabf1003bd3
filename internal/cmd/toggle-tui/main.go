package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgDir         string
	historyLimit   int
	rootCmd        = &cobra.Command{
		Use:   "toggle-tui",
		Short: "Click-to-cycle toggle widgets in your terminal",
		Long:  `toggle-tui - Renders configurable toggle widgets that cycle through their items when clicked`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about toggle-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	historyCmd = &cobra.Command{
		Use:               "history",
		Short:             "Print recorded toggle clicks",
		Long:              "Print the most recent toggle clicks and click totals per item",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              history,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", config.Path(""), "Directory containing toggle-tui.yaml")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of clicks to show")
	rootCmd.AddCommand(versionCmd, historyCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("toggle-tui - Terminal toggles\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

func readConfig(changes chan<- config.Config) (*config.Loader, config.Config, error) {
	loader := config.NewLoader(changes, cfgDir, ".")
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, errors.Join(errApp, errConfig)
	}

	return loader, userConfig, nil
}

func databasePath(userConfig config.Config) string {
	if path.IsAbs(userConfig.Database) || userConfig.Database == ":memory:" {
		return userConfig.Database
	}

	return config.Path(userConfig.Database)
}

// run is the main entry point of toggle-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader, userConfig, errConfig := readConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting toggle-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", configLoader.Path()))

	database, errDB := store.Open(cmd.Context(), databasePath(userConfig), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	configLoader.Watch()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := New(userConfig, configLoader, store.New(database), configUpdates)
	program, errUI := app.createUI(ctx)
	if errUI != nil {
		return errors.Join(errUI, errApp)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		// Stop the app loop once the UI exits.
		defer cancel()

		return program.Run()
	})
	group.Go(func() error {
		app.Start(groupCtx)

		return nil
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

func history(cmd *cobra.Command, _ []string) error {
	_, userConfig, errConfig := readConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	database, errDB := store.Open(cmd.Context(), databasePath(userConfig), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	return printHistory(cmd.Context(), cmd.OutOrStdout(), store.New(database), historyLimit)
}
