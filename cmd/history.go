package cmd

import (
	"io"

	"inventory-control/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyFormat string
	historyOutput string
)

// historyCmd is the parent command for the audit log.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Work with the audit log",
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit log, newest entry first",
	Long: `Writes the audit log as JSON (default) or YAML.

Examples:
  history export
  history export --format yaml -o historial.yaml`,
	Args: cobra.NoArgs,
	RunE: runHistoryExport,
}

func init() {
	historyExportCmd.Flags().StringVar(&historyFormat, "format", string(report.FormatJSON), "Output format: json or yaml")
	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Destination file (default inventario_historial.<format>)")

	historyCmd.AddCommand(historyExportCmd)
	RootCmd.AddCommand(historyCmd)
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(historyFormat)
	if err != nil {
		return err
	}

	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	output := historyOutput
	if output == "" {
		output = format.FileName()
	}

	err = writeFile(output, func(w io.Writer) error {
		return sess.service.WriteHistory(w, format)
	})
	if err != nil {
		return err
	}

	sess.logger.Info("History exported",
		zap.String("file", output),
		zap.String("format", string(format)),
		zap.Int("entries", len(sess.service.History())),
	)
	return nil
}
