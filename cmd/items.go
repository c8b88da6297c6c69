package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/tui/design"
)

func newItemsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print the configured navigation and menu items",
		Long: `Prints the bottom navigation items, the drawer sections and the backdrop
menu items after the configuration layers have been merged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg config.DemoConfig
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadConfigFromPath(configPath)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			printItems(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Load configuration from this file only")
	return cmd
}

func printItems(w io.Writer, cfg config.DemoConfig) {
	fmt.Fprintln(w, "Bottom navigation:")
	for i, item := range cfg.BottomMenuItems() {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, design.Glyph(item.Icon), item.Title)
	}
	fmt.Fprintln(w, "Drawer:")
	for i, item := range cfg.DrawerMenuItems() {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, design.Glyph(item.Icon), item.Title)
	}
	fmt.Fprintln(w, "Backdrop menu:")
	for i, title := range cfg.BackdropMenuItems() {
		fmt.Fprintf(w, "  %d. %s\n", i+1, title)
	}
}
