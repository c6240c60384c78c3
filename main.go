package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fragmede/eventengine/internal/api"
	"github.com/fragmede/eventengine/internal/config"
	"github.com/fragmede/eventengine/internal/logger"
	"github.com/fragmede/eventengine/internal/ui"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to the terminal UI or to a one-shot headless submit and
// returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("eventengine", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("c", "config.env", "Path to configuration file")
	if err := global.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogPath); err != nil {
		fmt.Fprintf(stderr, "Error: initializing logger: %v\n", err)
		return 1
	}
	defer logger.Log.Sync()

	client := api.NewClient(cfg.LoginURL(), cfg.RegisterURL(), api.WithTimeout(cfg.RequestTimeout))

	rest := global.Args()
	if len(rest) == 0 {
		return runUI(cfg, client, stderr)
	}

	switch rest[0] {
	case "login":
		return runLogin(ctx, client, rest[1:], stdout, stderr)
	case "register":
		return runRegister(ctx, client, rest[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q (want login or register)\n", rest[0])
		return 2
	}
}

func runUI(cfg config.Config, client *api.Client, stderr io.Writer) int {
	logger.Log.Infow("starting", "api", cfg.APIBaseURL)

	app := ui.NewApp(cfg, client)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
