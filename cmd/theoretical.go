package cmd

import (
	"fmt"
	"os"

	"inventory-control/core/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var theoreticalOutput string

// theoreticalCmd is the parent command for the expected inventory.
var theoreticalCmd = &cobra.Command{
	Use:   "theoretical",
	Short: "Import or export the theoretical inventory",
}

var theoreticalImportCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Replace the theoretical inventory with a workbook",
	Long: `Reads the first sheet of an xlsx workbook. The header row selects the columns:
code (code, Codigo, CODIGO, barcode), name (name, NOMBRE, nombre) and qty
(qty, CANT, cant, cantidad). Rows without a code are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runTheoreticalImport,
}

var theoreticalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the theoretical inventory to a workbook",
	Long:  `Writes an xlsx workbook with a single "Inventory" sheet. An empty inventory produces a template with one example row.`,
	Args:  cobra.NoArgs,
	RunE:  runTheoreticalExport,
}

func init() {
	theoreticalExportCmd.Flags().StringVarP(&theoreticalOutput, "output", "o", sheet.FileName, "Destination file")

	theoreticalCmd.AddCommand(theoreticalImportCmd)
	theoreticalCmd.AddCommand(theoreticalExportCmd)
	RootCmd.AddCommand(theoreticalCmd)
}

func runTheoreticalImport(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	count, err := sess.service.ImportTheoretical(f)
	if err != nil {
		return err
	}

	sess.logger.Info("Theoretical inventory imported",
		zap.String("file", args[0]),
		zap.Int("items", count),
	)
	return nil
}

func runTheoreticalExport(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := writeFile(theoreticalOutput, sess.service.ExportTheoretical); err != nil {
		return err
	}

	sess.logger.Info("Theoretical inventory exported",
		zap.String("file", theoreticalOutput),
		zap.Int("items", len(sess.service.Theoretical())),
	)
	return nil
}
