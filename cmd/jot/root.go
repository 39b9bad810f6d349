package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jot/internal/config"
	"jot/internal/notes"
	"jot/internal/storage"
	"jot/internal/ui"
)

// app carries what every command needs once the config has been read.
type app struct {
	configPath string
	verbose    bool

	cfg     config.Config
	logger  *slog.Logger
	store   *notes.Store
	closers []io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "jot",
		Short: "Categorised notes in your terminal",
		Long: `jot keeps short personal, work and shopping notes in a local SQLite file.
Run without arguments for the interactive view, or use the subcommands to script it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(true, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer a.close()
			return ui.Run(a.store, a.cfg)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/jot/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newEditCmd(a),
		newRmCmd(a),
	)
	return root
}

// open loads config, sets up logging and loads the notes. Under the TUI logs
// only go to the configured log file since the terminal is taken.
func (a *app) open(tui bool, stderr io.Writer) error {
	path := a.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if err := a.setupLogger(tui, stderr); err != nil {
		return err
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		a.close()
		return fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, db)

	a.store = notes.NewStore(db, cfg.StorageKey, notes.WithLogger(a.logger))
	if err := a.store.Load(); err != nil {
		a.logger.Error("load notes", "db", cfg.DBPath, "err", err)
		a.close()
		return err
	}
	return nil
}

func (a *app) setupLogger(tui bool, stderr io.Writer) error {
	level := a.cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	switch {
	case a.cfg.LogPath != "":
		if err := os.MkdirAll(filepath.Dir(a.cfg.LogPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
		f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		a.closers = append(a.closers, f)
		w = f
	case !tui:
		// Keep scripted output clean unless asked.
		w = stderr
		if !a.verbose {
			level = max(level, slog.LevelWarn)
		}
	}

	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
	a.closers = nil
}
