package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/cli"
	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/config"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		q   queryFlags
		out string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "export [screen]",
		Short: "Export a filtered list view as CSV",
		Long: `Write one of the console's lists to a CSV file. The file is replaced
atomically. With --all, every list is written unfiltered to <screen>.csv inside
the --out directory; --all cannot be combined with a screen or with query flags.`,
		Example: `  jobdesk export users --tab pending --out pending-users.csv
  jobdesk export --all --out ./exports`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return common.NewUserError("--out is required", fmt.Errorf("%w: missing output path", common.ErrInvalidQuery))
			}
			out = config.ExpandPath(out)

			var screens []admin.Screen
			switch {
			case all && len(args) > 0:
				return common.NewUserError("Pass either a screen or --all, not both", common.ErrInvalidQuery)
			case all && q.changed(cmd):
				return common.NewUserError("--all exports every list unfiltered; drop the query flags or name a screen",
					fmt.Errorf("%w: query flags with --all", common.ErrInvalidQuery))
			case all:
				screens = admin.ListScreens()
				if err := os.MkdirAll(out, 0o750); err != nil {
					return fmt.Errorf("failed to create export directory: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("Writing %d lists to %s", len(screens), out)))
			case len(args) == 1:
				screen, err := parseListScreen(args[0])
				if err != nil {
					return err
				}
				screens = []admin.Screen{screen}
			default:
				return common.NewUserError("Name a screen to export, or pass --all", common.ErrInvalidQuery)
			}

			ds, err := loadDataset(configFrom(cmd.Context()), time.Now())
			if err != nil {
				return err
			}

			for _, screen := range screens {
				table, err := admin.Build(ds, screen, q.request(), admin.Clock(time.Now))
				if err != nil {
					return err
				}

				path := out
				if all {
					path = filepath.Join(out, string(screen)+".csv")
				}
				if err := cli.ExportCSV(path, table, cmd.ErrOrStderr()); err != nil {
					common.LogError(err, "export failed", common.Fields{"screen": screen, "path": path})
					return err
				}
				common.LogInfo("exported list", common.Fields{"screen": screen, "rows": len(table.Rows), "path": path})
				if len(table.Rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(fmt.Sprintf("No %s matched; %s has only the header row", screen, path)))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d %s rows to %s", len(table.Rows), screen, path)))
			}
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, or directory with --all")
	cmd.Flags().BoolVar(&all, "all", false, "export every list unfiltered")
	return cmd
}
