package cmd

import (
	"errors"
	"fmt"
	"os"

	inv "inventory-control/core/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addName    string
	addQty     int
	updateName string
	updateQty  int
)

// recordsCmd is the parent command for the counted inventory.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect and edit the real inventory",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List counted records, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRecordsList,
}

var recordsAddCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Add a record by hand",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsAdd,
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Change the name or quantity of a record",
	Long: `Updates only the fields given as flags.

Examples:
  records update 7501234567890 --qty 12
  records update 7501234567890 --name "Caja azul"`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsUpdate,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a record (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsDelete,
}

var recordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record (asks for confirmation)",
	Args:  cobra.NoArgs,
	RunE:  runRecordsClear,
}

func init() {
	recordsAddCmd.Flags().StringVar(&addName, "name", "", "Display name")
	recordsAddCmd.Flags().IntVar(&addQty, "qty", 1, "Counted quantity")
	recordsUpdateCmd.Flags().StringVar(&updateName, "name", "", "New display name")
	recordsUpdateCmd.Flags().IntVar(&updateQty, "qty", 0, "New counted quantity")

	recordsCmd.AddCommand(recordsListCmd, recordsAddCmd, recordsUpdateCmd, recordsDeleteCmd, recordsClearCmd)
	RootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	records := sess.service.Real()
	for _, rec := range records {
		sess.logger.Info("Record",
			zap.String("code", rec.Code),
			zap.String("name", rec.Name),
			zap.Int("qty", rec.Qty),
			zap.Bool("from_theoretical", rec.FromTheoretical),
		)
	}
	sess.logger.Info("Real inventory", zap.Int("records", len(records)))
	return nil
}

func runRecordsAdd(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	rec, err := sess.service.AddRecord(inv.RealRecord{Code: args[0], Name: addName, Qty: addQty})
	if err != nil {
		return err
	}

	sess.logger.Info("Record added",
		zap.String("code", rec.Code),
		zap.String("name", rec.Name),
		zap.Int("qty", rec.Qty),
	)
	return nil
}

func runRecordsUpdate(cmd *cobra.Command, args []string) error {
	var upd inv.RecordUpdate
	if cmd.Flags().Changed("name") {
		upd.Name = &updateName
	}
	if cmd.Flags().Changed("qty") {
		if updateQty < 0 {
			return fmt.Errorf("qty must not be negative: %d", updateQty)
		}
		upd.Qty = &updateQty
	}
	if upd.Empty() {
		return errors.New("nothing to update: pass --name or --qty")
	}

	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	rec, ok := sess.service.UpdateRecord(args[0], upd)
	if !ok {
		return fmt.Errorf("record %s not found", args[0])
	}

	sess.logger.Info("Record updated",
		zap.String("code", rec.Code),
		zap.String("name", rec.Name),
		zap.Int("qty", rec.Qty),
	)
	return nil
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	code := args[0]
	if _, ok := findRecord(sess.service.Real(), code); !ok {
		return fmt.Errorf("record %s not found", code)
	}

	sess.logger.Warn("About to delete record", zap.String("code", code))
	deleted, err := sess.service.DeleteRecord(code, confirmDestructiveAction(os.Stdin, os.Stdout))
	if errors.Is(err, inv.ErrNotConfirmed) {
		sess.logger.Info("Operation cancelled by user")
		return nil
	}
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("record %s not found", code)
	}

	sess.logger.Info("Record deleted", zap.String("code", code))
	return nil
}

func runRecordsClear(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.logger.Warn("About to delete every counted record", zap.Int("records", len(sess.service.Real())))
	err = sess.service.ClearReal(confirmDestructiveAction(os.Stdin, os.Stdout))
	if errors.Is(err, inv.ErrNotConfirmed) {
		sess.logger.Info("Operation cancelled by user")
		return nil
	}
	if err != nil {
		return err
	}

	sess.logger.Info("Real inventory cleared")
	return nil
}

func findRecord(records []inv.RealRecord, code string) (inv.RealRecord, bool) {
	for _, rec := range records {
		if rec.Code == code {
			return rec, true
		}
	}
	return inv.RealRecord{}, false
}
