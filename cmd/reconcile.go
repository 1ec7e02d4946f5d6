package cmd

import (
	"inventory-control/core/inventory"
	"inventory-control/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var keepNotFound bool

// reconcileCmd compares both inventories and replaces the incident list.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the real inventory against the theoretical one",
	Long: `Compares the theoretical and real inventories and replaces the incident list with
missing, mismatch and unexpected incidents.

Scan-time not_found incidents are discarded unless --keep-not-found is given, in
which case those whose code is still unknown to both inventories are kept.

Examples:
  # Report only
  reconcile

  # Keep unknown scans in the incident list
  reconcile --keep-not-found`,
	Args: cobra.NoArgs,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&keepNotFound, "keep-not-found", false, "Keep scan-time not_found incidents for codes still unknown")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	opts := sess.cfg.Reconcile.Options()
	if cmd.Flags().Changed("keep-not-found") {
		opts.KeepNotFound = keepNotFound
	}

	rep := sess.service.ReconcileWith(opts)
	printReconcileReport(sess.logger, rep)
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, rep reconcile.Report) {
	s := rep.Summary

	l.Info("Reconciliation report",
		zap.Int("incidents", s.Total),
		zap.Int("missing", s.Missing),
		zap.Int("mismatch", s.Mismatch),
		zap.Int("unexpected", s.Unexpected),
		zap.Int("not_found", s.NotFound),
		zap.Int("matched", s.Matched),
	)

	// Show sample of incidents (max 5 for logger)
	maxShow := min(5, len(rep.Incidents))
	for i := 0; i < maxShow; i++ {
		l.Info("Sample incident", incidentFields(rep.Incidents[i])...)
	}
	if len(rep.Incidents) > maxShow {
		l.Info("Additional incidents not shown", zap.Int("count", len(rep.Incidents)-maxShow))
	}
}

func quantityField(key string, qty *int) zap.Field {
	if qty == nil {
		return zap.Skip()
	}
	return zap.Int(key, *qty)
}

// incidentFields describes one incident for logging.
func incidentFields(inc inventory.Incident) []zap.Field {
	return []zap.Field{
		zap.String("type", string(inc.Type)),
		zap.String("code", inc.Code),
		zap.String("name", inc.Name),
		quantityField("expected", inc.Expected),
		quantityField("actual", inc.Actual),
	}
}
