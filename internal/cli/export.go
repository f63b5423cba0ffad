package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/jobdesk/internal/admin"
	"github.com/natefinch/atomic"
	"github.com/schollz/progressbar/v3"
)

// ExportCSV writes a list view to path as CSV. The file is replaced atomically,
// so readers never see a partial export. Progress is drawn on progress.
func ExportCSV(path string, t admin.Table, progress io.Writer) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	bar := newExportBar(len(t.Rows), t.Screen, progress)
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to encode csv: %w", err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Debug("wrote csv", "screen", t.Screen, "rows", len(t.Rows), "path", path)
	return nil
}

func newExportBar(total int, screen admin.Screen, w io.Writer) *progressbar.ProgressBar {
	if total == 0 || w == nil {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][bold]Exporting %s...[reset]", screen.Title())),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
