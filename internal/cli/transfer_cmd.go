package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planner/internal/service"
)

const (
	formatJSON = "json"
	formatICS  = "ics"
)

func newExportCmd(app *App) *cobra.Command {
	var format, dir string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON, or events as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if format != formatJSON && format != formatICS {
				return fmt.Errorf("unknown format %q: use json or ics", format)
			}

			out := cmd.OutOrStdout()
			path := ""
			if !toStdout {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating export directory: %w", err)
				}
				path = filepath.Join(dir, service.ExportFileName(app.now(), format))
				var f *os.File
				f, err = os.Create(path)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer func() {
					if cerr := f.Close(); err == nil && cerr != nil {
						err = cerr
					}
				}()
				out = f
			}

			skipped := 0
			if format == formatICS {
				skipped, err = app.Transfer.ExportICS(cmd.Context(), out)
			} else {
				err = app.Transfer.ExportJSON(cmd.Context(), out)
			}
			if err != nil {
				return err
			}

			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			}
			if skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %d events with an unreadable date.\n", skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Export format: json or ics")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the export file to")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write to stdout instead of a file")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a JSON export, replacing the sections it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Transfer.ImportFile(cmd.Context(), args[0])
			if errors.Is(err, service.ErrNoValidData) {
				return fmt.Errorf("import failed: %w", err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Legacy {
				fmt.Fprintf(out, "Imported %d events (legacy format).\n", res.Events)
			} else {
				fmt.Fprintf(out, "Imported %d events and %d goals.\n", res.Events, res.Goals)
			}
			if res.Dropped > 0 {
				fmt.Fprintf(out, "Skipped %d invalid entries.\n", res.Dropped)
			}
			return nil
		},
	}
}
