package cli

import (
	"fmt"

	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/alexanderramin/bibletrack/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings, or write them to the config file",
		Args:  cobra.NoArgs,
		// Settings are read without opening storage.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath, _ = cmd.Flags().GetString("db")
			}

			out := cmd.OutOrStdout()
			if write {
				if err := cfg.Save(path); err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.StyleGreen.Render("Wrote settings to ")+path)
				return nil
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n%s", formatter.Dim("# "+path), data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Save the effective settings to the config file")
	return cmd
}
