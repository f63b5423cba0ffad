package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/common"
	"github.com/Veraticus/jobdesk/internal/config"
	"github.com/Veraticus/jobdesk/internal/model"
	"github.com/Veraticus/jobdesk/internal/query"
	"github.com/Veraticus/jobdesk/internal/seed"
	"github.com/spf13/cobra"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration loaded by the root command.
func configFrom(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Config{}
}

// loadDataset reads the configured seed document, or the embedded one.
func loadDataset(cfg config.Config, now time.Time) (model.Dataset, error) {
	ds, err := seed.Load(cfg.Seed.Path, now)
	if err != nil {
		return model.Dataset{}, common.NewUserError(fmt.Sprintf("Could not load seed data: %v", err), err)
	}
	common.LogDebug("loaded seed data", common.Fields{
		"path":       cfg.Seed.Path,
		"users":      len(ds.Users),
		"complaints": len(ds.Complaints),
		"vacancies":  len(ds.Vacancies),
	})
	return ds, nil
}

// queryFlags are the list view selectors shared by list and export.
type queryFlags struct {
	search string
	filter string
	window string
	tab    string
	sort   string
	desc   bool
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.search, "search", "", "case-insensitive text search")
	cmd.Flags().StringVar(&q.filter, "filter", "", "category filter (role for users, status for reports)")
	cmd.Flags().StringVar(&q.window, "window", "", "date window for complaints (all, today, week, month)")
	cmd.Flags().StringVar(&q.tab, "tab", "", "only rows in this tab (a status, or user/manager for reports)")
	cmd.Flags().StringVar(&q.sort, "sort", "", "sort field")
	cmd.Flags().BoolVar(&q.desc, "desc", false, "sort descending")
}

// changed reports whether any query flag was set on the command line.
func (q queryFlags) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"search", "filter", "window", "tab", "sort", "desc"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func (q queryFlags) request() admin.Request {
	return admin.Request{
		Search:   q.search,
		Category: q.filter,
		Window:   query.Window(q.window),
		Tab:      q.tab,
		Sort:     q.sort,
		Desc:     q.desc,
	}
}

// parseListScreen resolves a screen argument that must name a list.
func parseListScreen(name string) (admin.Screen, error) {
	screen, err := admin.ParseScreen(name)
	if err != nil {
		return "", common.NewUserError(fmt.Sprintf("Unknown screen %q, expected one of %v", name, admin.ListScreens()), err)
	}
	if !screen.IsList() {
		return "", common.NewUserError(fmt.Sprintf("The %s screen has no list", screen), fmt.Errorf("%w: %s", common.ErrUnknownScreen, screen))
	}
	return screen, nil
}
