package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"tedit/internal/completion"
	"tedit/internal/config"
	"tedit/internal/editor"
	"tedit/internal/logger"
	"tedit/internal/session"
	"tedit/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", config.DefaultPath(), "path to the YAML config file")
	dataDir := flag.String("data-dir", config.DataDir(), "directory for logs, the last session and named sessions")
	noSession := flag.Bool("no-session", false, "neither restore nor save the last session")
	readOnly := flag.Bool("R", false, "open the given files read-only")
	printSchema := flag.Bool("config-schema", false, "print the config JSON schema and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tedit [flags] [file ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *printSchema {
		data, err := config.Schema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	// Initialize logger
	if err := logger.Init(*dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "tedit: failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()
	logger.Debug("starting tedit")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
		return 1
	}

	var store *session.Store
	if !*noSession {
		store = session.NewStore(*dataDir)
	}

	// Named sessions are optional; the editor runs without them.
	var named session.NamedStore
	db, err := session.OpenDB(filepath.Join(*dataDir, "sessions.db"))
	if err != nil {
		logger.Error("named sessions disabled: %v", err)
	} else {
		defer db.Close()
		named = db
	}

	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}

	opts := session.Options{
		Config:     cfg,
		ConfigPath: *configPath,
		Store:      store,
		Named:      named,
		Completer:  completion.NewEngine(workingDir, editor.Commands, editor.FileCommands...),
	}
	if cfg.SystemClipboard {
		if clipboard.Unsupported {
			logger.Error("system clipboard unsupported on this system")
		} else {
			opts.Clipboard = clipboard.WriteAll
		}
	}
	s := session.New(opts)

	files := flag.Args()
	for _, f := range files {
		if _, err := s.Open(f, 0, 0, *readOnly); err != nil {
			fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
			return 1
		}
	}
	if len(files) == 0 && store != nil && cfg.RestoreSession {
		rec, err := store.Load()
		switch {
		case err == nil:
			s.Restore(rec)
		case !errors.Is(err, session.ErrSessionNotFound):
			logger.Error("restore last session: %v", err)
		}
	}

	if err := tui.Run(s); err != nil {
		fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
		return 1
	}
	return 0
}
