package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"scaffolddemo/internal/app"
	"scaffolddemo/internal/config"
)

type runOptions struct {
	noTUI      bool
	debug      bool
	noMouse    bool
	configPath string
	locale     string
	events     string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [scaffold|backdrop]",
		Short: "Start a demo screen",
		Long: `Starts one of the demo screens. Without an argument the screen named in
the configuration is shown (backdrop by default). Tab switches screens while
the UI is running.

With --no-tui nothing is drawn. Instead the events in --events are applied to
the screen state one per line and each resulting state is printed:

  open | close | toggle        drawer or back layer
  select:<title> | select#<n>  pick an item by title or 1-based position
  fab                          show the snackbar (scaffold only)
  dismiss                      hide the visible snackbar

Use --events - to read events from stdin.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(config.ScreenScaffold), string(config.ScreenBackdrop)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "Replay events without drawing the UI")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse input")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Load configuration from this file only")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "Language for UI text (en, es, fr)")
	cmd.Flags().StringVar(&opts.events, "events", "", "Event script for --no-tui, - for stdin")

	return cmd
}

func runDemo(cmd *cobra.Command, args []string, opts *runOptions) error {
	if opts.events != "" && !opts.noTUI {
		return fmt.Errorf("--events requires --no-tui")
	}

	cfg := app.NewConfig(opts.noTUI, opts.debug)
	cfg.ConfigPath = opts.configPath
	cfg.Locale = opts.locale
	cfg.NoMouse = opts.noMouse
	cfg.EventsPath = opts.events
	cfg.Stdin = cmd.InOrStdin()
	cfg.Stdout = cmd.OutOrStdout()
	cfg.Stderr = cmd.ErrOrStderr()
	if len(args) == 1 {
		cfg.Screen = config.Screen(args[0])
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
