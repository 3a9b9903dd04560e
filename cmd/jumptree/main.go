package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"jumptree/internal/app"
	"jumptree/internal/storage"
	"jumptree/internal/system"
	"jumptree/internal/theme"
	"jumptree/internal/workspace"
)

var (
	version = "0.1.0"
)

func main() {
	var (
		themeName   string
		showVersion bool
		logFile     string
	)

	flag.StringVar(&themeName, "theme", "", "color theme (default, gruvbox, catppuccin, nord)")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.StringVar(&logFile, "log", "", "write debug logs to file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "jumptree - jump-to-definition history as a tree\n\n")
		fmt.Fprintf(os.Stderr, "Usage: jumptree [flags] [path]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  jumptree                       # track the workspace containing .\n")
		fmt.Fprintf(os.Stderr, "  jumptree ~/src/project         # track a specific workspace\n")
		fmt.Fprintf(os.Stderr, "  jumptree --theme gruvbox       # use gruvbox theme\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("jumptree %s\n", version)
		os.Exit(0)
	}

	if logFile != "" {
		closeLog, err := system.LogToFile(logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	cfg, err := storage.LoadConfig()
	if err != nil {
		system.Logger.Warn("config unavailable, using defaults", "err", err)
		def := storage.DefaultConfig()
		cfg = &def
	}

	// Command-line theme wins over the configured one.
	name := themeName
	if name == "" && cfg.Theme != "" {
		name = cfg.Theme
	}
	if name != "" && !theme.Set(name) {
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\nAvailable: %s\n",
			name, strings.Join(theme.List(), ", "))
		os.Exit(1)
	}

	start := "."
	if flag.NArg() > 0 {
		start = flag.Arg(0)
	}

	// Navigation outside any workspace is still allowed; the session
	// just cannot record jumps.
	var workspaceID string
	switch id, err := workspace.NewResolver().Resolve(start); {
	case err == nil:
		workspaceID = id
	case errors.Is(err, workspace.ErrNoWorkspace):
		system.Logger.Warn("no workspace markers found", "path", start)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := app.New(workspaceID, cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
