package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/itzlabs/clientdesk/internal/httperr"
	ucClient "github.com/itzlabs/clientdesk/internal/usecase/client"
	"github.com/itzlabs/clientdesk/internal/usecase/importer"
)

const maxImportBytes = 4 << 20 // 4 MB, same cap as the old upload form

type ImportExportHandler struct {
	importUC *importer.Importer
	exportUC *ucClient.ExportClients
	log      *slog.Logger
}

func NewImportExportHandler(
	importUC *importer.Importer,
	exportUC *ucClient.ExportClients,
	log *slog.Logger,
) *ImportExportHandler {
	return &ImportExportHandler{importUC: importUC, exportUC: exportUC, log: log}
}

// ======================================================
// IMPORT
// ======================================================

func (h *ImportExportHandler) Import(c *gin.Context) {
	actorID := actorFromContext(c)

	file, header, err := c.Request.FormFile("csv")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Upload a CSV file in the 'csv' field.")
		return
	}
	defer file.Close()

	if header.Size > maxImportBytes {
		httperr.BadRequest(c, "file_too_large", "File too large. Max 4MB.")
		return
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // row width is validated per row
	rows, err := reader.ReadAll()
	if err != nil {
		httperr.BadRequest(c, "invalid_csv", "Could not parse the uploaded CSV.")
		return
	}

	hasHeader := c.DefaultPostForm("has_header", "true") != "false"

	report, err := h.importUC.Execute(c.Request.Context(), actorID, rows, importer.Options{
		HasHeader: hasHeader,
	})
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ======================================================
// EXPORT
// ======================================================

func (h *ImportExportHandler) Export(c *gin.Context) {
	rows, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	filename := fmt.Sprintf("clients_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	w := csv.NewWriter(c.Writer)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			h.log.Error("export write failed", "err", err)
			return
		}
	}
	w.Flush()
}
