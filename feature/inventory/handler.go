package inventory

import (
	"bytes"
	"errors"
	"net/url"

	inv "inventory-control/core/inventory"
	"inventory-control/core/logger"
	"inventory-control/core/reconcile"
	"inventory-control/core/report"
	"inventory-control/core/scan"
	"inventory-control/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory session.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/theoretical", h.HandleImportTheoretical)
	group.Get("/theoretical", h.HandleListTheoretical)
	group.Get("/theoretical/export", h.HandleExportTheoretical)
	group.Post("/scan", h.HandleScan)
	group.Post("/keys", h.HandleKey)
	group.Get("/records", h.HandleListRecords)
	group.Post("/records", h.HandleCreateRecord)
	group.Delete("/records", h.HandleClearRecords)
	group.Patch("/records/:code", h.HandleUpdateRecord)
	group.Delete("/records/:code", h.HandleDeleteRecord)
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/incidents", h.HandleListIncidents)
	group.Delete("/incidents", h.HandleClearIncidents)
	group.Get("/incidents/report", h.HandleIncidentReport)
	group.Get("/history", h.HandleListHistory)
	group.Get("/history/export", h.HandleExportHistory)
	group.Get("/notification", h.HandleNotification)
}

// HandleImportTheoretical replaces the theoretical inventory from an uploaded workbook.
// @Summary Import Theoretical Inventory
// @Description Replaces the theoretical inventory with the rows of the first sheet of an xlsx workbook.
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} map[string]int "Imported item count"
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Router /inventory/theoretical [post]
func (h *Handler) HandleImportTheoretical(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	n, err := h.service.ImportTheoretical(f)
	if err != nil {
		l.Warn("Theoretical import rejected", zap.String("file", fh.Filename), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Theoretical inventory imported", zap.String("file", fh.Filename), zap.Int("items", n))
	return c.JSON(fiber.Map{"imported": n})
}

// HandleListTheoretical returns the theoretical inventory.
// @Summary List Theoretical Inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} inventory.InventoryItem
// @Router /inventory/theoretical [get]
func (h *Handler) HandleListTheoretical(c *fiber.Ctx) error {
	return c.JSON(h.service.Theoretical())
}

// HandleExportTheoretical downloads the theoretical inventory as a workbook.
// @Summary Export Theoretical Inventory
// @Description Downloads the theoretical inventory as xlsx. An empty inventory downloads a template with an example row.
// @Tags inventory
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/theoretical/export [get]
func (h *Handler) HandleExportTheoretical(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportTheoretical(&buf); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Theoretical export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return download(c, sheet.FileName, sheet.ContentType, buf.Bytes())
}

// HandleScan processes one complete code.
// @Summary Scan Code
// @Description Classifies the code against both inventories and applies the resulting change.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Scanned code"
// @Success 200 {object} scan.Result
// @Failure 400 {object} map[string]string "Empty code"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /inventory/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	var req ScanRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	res, err := h.service.Scan(req.Code)
	if err != nil {
		return errorResponse(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Code scanned",
		zap.String("code", res.Code),
		zap.String("outcome", string(res.Outcome)),
	)
	return c.JSON(res)
}

// HandleKey feeds one keystroke to the scanner buffer.
// @Summary Feed Keystroke
// @Description Buffers printable keys; "Enter" submits the buffered code.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body KeyRequest true "Keystroke"
// @Success 200 {object} KeyResult
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /inventory/keys [post]
func (h *Handler) HandleKey(c *fiber.Ctx) error {
	var req KeyRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	res, err := h.service.Key(req.Key)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(res)
}

// HandleListRecords returns the counted inventory.
// @Summary List Real Records
// @Tags inventory
// @Produce json
// @Success 200 {array} inventory.RealRecord
// @Router /inventory/records [get]
func (h *Handler) HandleListRecords(c *fiber.Ctx) error {
	return c.JSON(h.service.Real())
}

// HandleCreateRecord adds a manually counted record.
// @Summary Add Record
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body CreateRecordRequest true "Record"
// @Success 201 {object} inventory.RealRecord
// @Failure 409 {object} map[string]string "Code already counted"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /inventory/records [post]
func (h *Handler) HandleCreateRecord(c *fiber.Ctx) error {
	var req CreateRecordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	rec, err := h.service.AddRecord(req.Record())
	if err != nil {
		return errorResponse(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Record added", zap.String("code", rec.Code))
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleUpdateRecord edits a counted record.
// @Summary Update Record
// @Tags inventory
// @Accept json
// @Produce json
// @Param code path string true "Record code"
// @Param request body UpdateRecordRequest true "Fields to change"
// @Success 200 {object} inventory.RealRecord
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /inventory/records/{code} [patch]
func (h *Handler) HandleUpdateRecord(c *fiber.Ctx) error {
	var req UpdateRecordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	upd := req.Update()
	if upd.Empty() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "nothing to update"})
	}

	code := codeParam(c)
	rec, found := h.service.UpdateRecord(code, upd)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	}

	logger.WithRayID(h.service.logger, c).Info("Record updated", zap.String("code", code))
	return c.JSON(rec)
}

// HandleDeleteRecord removes a counted record.
// @Summary Delete Record
// @Tags inventory
// @Param code path string true "Record code"
// @Param confirm query boolean true "Must be true"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Not confirmed"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /inventory/records/{code} [delete]
func (h *Handler) HandleDeleteRecord(c *fiber.Ctx) error {
	code := codeParam(c)
	deleted, err := h.service.DeleteRecord(code, c.QueryBool("confirm"))
	if err != nil {
		return errorResponse(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	}

	logger.WithRayID(h.service.logger, c).Info("Record deleted", zap.String("code", code))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearRecords empties the counted inventory.
// @Summary Clear Real Inventory
// @Tags inventory
// @Param confirm query boolean true "Must be true"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Not confirmed"
// @Router /inventory/records [delete]
func (h *Handler) HandleClearRecords(c *fiber.Ctx) error {
	if err := h.service.ClearReal(c.QueryBool("confirm")); err != nil {
		return errorResponse(c, err)
	}
	logger.WithRayID(h.service.logger, c).Info("Real inventory cleared")
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleReconcile recomputes the incident list.
// @Summary Reconcile
// @Description Compares both inventories and replaces the incident list.
// @Tags inventory
// @Produce json
// @Param keep_not_found query boolean false "Carry over live not_found incidents"
// @Success 200 {object} reconcile.Report
// @Router /inventory/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	opts := h.service.reconcile
	if c.Query("keep_not_found") != "" {
		opts = reconcile.Options{KeepNotFound: c.QueryBool("keep_not_found")}
	}
	return c.JSON(h.service.ReconcileWith(opts))
}

// HandleListIncidents returns the current incident list.
// @Summary List Incidents
// @Tags inventory
// @Produce json
// @Success 200 {array} inventory.Incident
// @Router /inventory/incidents [get]
func (h *Handler) HandleListIncidents(c *fiber.Ctx) error {
	return c.JSON(h.service.Incidents())
}

// HandleClearIncidents empties the incident list.
// @Summary Clear Incidents
// @Tags inventory
// @Success 204 "No Content"
// @Router /inventory/incidents [delete]
func (h *Handler) HandleClearIncidents(c *fiber.Ctx) error {
	h.service.ClearIncidents()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleIncidentReport downloads the incident list as a PDF.
// @Summary Incident Report
// @Tags inventory
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/incidents/report [get]
func (h *Handler) HandleIncidentReport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.WriteIncidentsPDF(&buf); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Incident report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return download(c, report.PDFFileName, "application/pdf", buf.Bytes())
}

// HandleListHistory returns the audit log.
// @Summary List Audit Log
// @Tags inventory
// @Produce json
// @Success 200 {array} inventory.AuditEntry
// @Router /inventory/history [get]
func (h *Handler) HandleListHistory(c *fiber.Ctx) error {
	return c.JSON(h.service.History())
}

// HandleExportHistory downloads the audit log.
// @Summary Export Audit Log
// @Tags inventory
// @Produce json
// @Param format query string false "json (default) or yaml"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unsupported format"
// @Router /inventory/history/export [get]
func (h *Handler) HandleExportHistory(c *fiber.Ctx) error {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := h.service.WriteHistory(&buf, format); err != nil {
		logger.WithRayID(h.service.logger, c).Error("History export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return download(c, format.FileName(), format.ContentType(), buf.Bytes())
}

// HandleNotification returns the notification still on display.
// @Summary Current Notification
// @Tags inventory
// @Produce json
// @Success 200 {object} scan.Notification
// @Success 204 "No Content"
// @Router /inventory/notification [get]
func (h *Handler) HandleNotification(c *fiber.Ctx) error {
	n, ok := h.service.Notification()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(n)
}

func codeParam(c *fiber.Ctx) string {
	code := c.Params("code")
	if decoded, err := url.PathUnescape(code); err == nil {
		return decoded
	}
	return code
}

func download(c *fiber.Ctx, filename, contentType string, body []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, scan.ErrEmptyCode), errors.Is(err, inv.ErrNotConfirmed):
		status = fiber.StatusBadRequest
	case errors.Is(err, inv.ErrDuplicateCode):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
