package main

import (
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/cli"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var q queryFlags

	cmd := &cobra.Command{
		Use:   "list <screen>",
		Short: "Print a filtered list view",
		Long: `Print one of the console's lists as a table, followed by the count of
records in each tab. Screens: users, complaints, reports, vacancies, requests.`,
		Example: `  jobdesk list users --tab pending --filter manager
  jobdesk list complaints --window week --sort filed --desc
  jobdesk list reports --tab manager --search access`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := parseListScreen(args[0])
			if err != nil {
				return err
			}

			cfg := configFrom(cmd.Context())
			now := time.Now()
			ds, err := loadDataset(cfg, now)
			if err != nil {
				return err
			}

			table, err := admin.Build(ds, screen, q.request(), admin.Clock(time.Now))
			if err != nil {
				return err
			}
			return cli.WriteTable(cmd.OutOrStdout(), table)
		},
	}

	q.register(cmd)
	return cmd
}
