package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/Veraticus/jobdesk/internal/model"
)

// WriteTable prints a list view as aligned columns followed by its tab counts.
func WriteTable(w io.Writer, t admin.Table) error {
	fmt.Fprintln(w, TitleStyle.Render(t.Screen.Title()))

	if len(t.Rows) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No matching records."))
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

		headers := make([]string, len(t.Headers))
		rules := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			headers[i] = TableHeaderStyle.Render(h)
			rules[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
		fmt.Fprintln(tw, strings.Join(rules, "\t"))

		status := statusColumn(t.Headers)
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			copy(cells, row)
			if status >= 0 && status < len(cells) {
				cells[status] = StatusStyle(model.Status(strings.ToLower(cells[status]))).Render(cells[status])
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}

		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}

	_, err := fmt.Fprintln(w, "\n"+FormatCounts(t))
	return err
}

// FormatCounts renders the tab counts in tab order, highlighting the selected tab.
func FormatCounts(t admin.Table) string {
	parts := make([]string, 0, len(t.Tabs))
	for _, tab := range t.Tabs {
		part := fmt.Sprintf("%s: %d", admin.Title(tab), t.Counts[tab])
		if tab == t.Tab {
			part = BoldStyle.Render(part)
		} else {
			part = SubtleStyle.Render(part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "  ")
}

func statusColumn(headers []string) int {
	for i, h := range headers {
		if h == "Status" {
			return i
		}
	}
	return -1
}
