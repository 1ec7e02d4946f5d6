package cmd

import (
	"inventory-control/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var incidentsOutput string

// incidentsCmd is the parent command for the incident list.
var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "Inspect, print or clear incidents",
}

var incidentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current incidents",
	Args:  cobra.NoArgs,
	RunE:  runIncidentsList,
}

var incidentsReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the incidents as a PDF report",
	Args:  cobra.NoArgs,
	RunE:  runIncidentsReport,
}

var incidentsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the incident list",
	Args:  cobra.NoArgs,
	RunE:  runIncidentsClear,
}

func init() {
	incidentsReportCmd.Flags().StringVarP(&incidentsOutput, "output", "o", report.PDFFileName, "Destination file")

	incidentsCmd.AddCommand(incidentsListCmd, incidentsReportCmd, incidentsClearCmd)
	RootCmd.AddCommand(incidentsCmd)
}

func runIncidentsList(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	incidents := sess.service.Incidents()
	for _, inc := range incidents {
		sess.logger.Info("Incident", incidentFields(inc)...)
	}
	sess.logger.Info("Incidents", zap.Int("count", len(incidents)))
	return nil
}

func runIncidentsReport(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := writeFile(incidentsOutput, sess.service.WriteIncidentsPDF); err != nil {
		return err
	}

	sess.logger.Info("Incident report written",
		zap.String("file", incidentsOutput),
		zap.Int("incidents", len(sess.service.Incidents())),
	)
	return nil
}

func runIncidentsClear(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.service.ClearIncidents()
	return nil
}
