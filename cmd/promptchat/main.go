// ABOUTME: CLI entry point for the promptchat demo
// ABOUTME: Loads settings, builds a scripted host, and runs the chat TUI

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zivl/prompt-api-types/internal/config"
	pclog "github.com/zivl/prompt-api-types/internal/log"
	"github.com/zivl/prompt-api-types/pkg/promptapi"
	"github.com/zivl/prompt-api-types/pkg/promptapitest"
)

func main() {
	scenario := flag.String("scenario", "", "path to a YAML scenario for the scripted host")
	style := flag.String("style", "dark", "glamour style for assistant markdown")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cwd, _ := os.Getwd()
	settings, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags override config file values.
	if *scenario != "" {
		settings.Scenario = *scenario
	}
	if *style != "dark" {
		settings.Style = *style
	}
	if settings.Style == "" {
		settings.Style = "dark"
	}
	if *verbose || settings.Verbose {
		pclog.SetLevel(pclog.LevelDebug)
	}

	if err := run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(settings *config.Settings) error {
	host, err := buildHost(settings)
	if err != nil {
		return err
	}

	ctx := context.Background()
	avail, err := host.Availability(ctx, nil)
	if err != nil {
		return fmt.Errorf("availability: %w", err)
	}
	pclog.Debug("host availability: %s", avail)
	if avail == promptapi.AvailabilityUnavailable {
		return fmt.Errorf("model unavailable")
	}

	sess, err := host.Create(ctx, &promptapi.CreateOptions{
		InitialPrompts: []promptapi.Message{
			promptapi.TextMessage(promptapi.RoleSystem, "You are a scripted demo model."),
		},
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer sess.Destroy()

	p := tea.NewProgram(newModel(sess, settings.Style), tea.WithAltScreen())

	// Surface quota evictions in the TUI footer.
	removeListener := sess.On(promptapi.EventQuotaOverflow, func(promptapi.Event) {
		p.Send(overflowMsg{})
	})
	defer removeListener()

	_, err = p.Run()
	return err
}

func buildHost(settings *config.Settings) (*promptapitest.Host, error) {
	if settings.Scenario == "" {
		h := promptapitest.New()
		if settings.Quota > 0 {
			h.Quota = settings.Quota
		}
		return h, nil
	}
	script, err := promptapitest.LoadScript(settings.Scenario)
	if err != nil {
		return nil, err
	}
	h := script.Host()
	if settings.Quota > 0 {
		h.Quota = settings.Quota
	}
	return h, nil
}
