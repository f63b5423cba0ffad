package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/tui"
	"github.com/Veraticus/jobdesk/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	var screenName string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive admin console",
		Long: `Open the full-screen admin console. Switch screens with [ and ], press ? for help.
Changes live for the session only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())

			if screenName == "" {
				screenName = cfg.UI.Screen
			}
			screen, err := admin.ParseScreen(screenName)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Unknown screen %q, expected one of %v", screenName, admin.Screens()), err)
			}

			ds, err := loadDataset(cfg, time.Now())
			if err != nil {
				return err
			}

			// The console owns the terminal, so logs go to a file or nowhere.
			logOut := io.Discard
			if cfg.Logging.File != "" {
				f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			level, err := common.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			if err := common.SetupLogger(logOut, level, cfg.Logging.Format); err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}

			final, err := tui.Run(cmd.Context(),
				tui.WithDataset(ds),
				tui.WithScreen(screen),
				tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
				tui.WithSize(cfg.UI.Width, cfg.UI.Height),
			)
			if err != nil {
				common.LogError(err, "console session failed", common.Fields{"screen": screen})
				return err
			}

			edited := final.Dataset()
			common.LogInfo("console session ended", common.Fields{
				"screen":    final.Screen(),
				"users":     len(edited.Users),
				"vacancies": len(edited.Vacancies),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&screenName, "screen", "", "screen to open (dashboard, users, complaints, reports, vacancies, requests, settings)")
	return cmd
}
