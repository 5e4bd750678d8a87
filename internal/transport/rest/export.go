package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/lumohq/lumo-backend/internal/domain"
	"github.com/lumohq/lumo-backend/internal/service/member"
	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

// memberService defines the minimal interface needed by ReportHandler.
type memberService interface {
	GetManagementData(ctx context.Context) (member.ManagementData, error)
}

// ReportHandler serves tabular report exports.
type ReportHandler struct {
	members memberService
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(members memberService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{members: members, log: logger.With("handler", "report")}
}

var reportColumns = []string{"Name", "Email", "Status", "Registration Date", "Avg Performance"}

// Users handles GET /api/reports/users?format=xlsx|pdf. The response is a
// binary attachment of the caller's member roster with performance averages.
func (h *ReportHandler) Users(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "xlsx" && format != "pdf" {
		writeError(w, http.StatusBadRequest, "format must be xlsx or pdf")
		return
	}

	data, err := h.members.GetManagementData(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var (
		buf         bytes.Buffer
		contentType string
	)
	switch format {
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = writeXLSX(&buf, data.Members)
	case "pdf":
		contentType = "application/pdf"
		err = writePDF(&buf, data.Members)
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "render report", slog.String("format", format), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	filename := fmt.Sprintf("users-report-%s.%s", time.Now().Format("2006-01-02"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func (h *ReportHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeXLSX(buf *bytes.Buffer, members []member.ManagedMember) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(0)
	for col, title := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	for i, m := range members {
		values := []any{
			m.Name,
			m.Email,
			string(m.Status),
			m.RegistrationDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", m.AveragePerformance),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set row: %w", err)
			}
		}
	}

	if err := f.Write(buf); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writePDF(buf *bytes.Buffer, members []member.ManagedMember) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "User Performance Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{70, 80, 30, 45, 40}

	pdf.SetFont("Helvetica", "B", 10)
	for i, title := range reportColumns {
		pdf.CellFormat(widths[i], 8, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, m := range members {
		cells := []string{
			m.Name,
			m.Email,
			string(m.Status),
			m.RegistrationDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", m.AveragePerformance),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(buf); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
