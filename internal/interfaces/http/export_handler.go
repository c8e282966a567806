package http

import (
	"bufio"
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/Ansup17174/randomproject/internal/application/billing"
)

// ExportHandler streams the user's documents as CSV (protected).
type ExportHandler struct {
	uc *billing.ExportUseCase
}

// NewExportHandler builds the handler.
func NewExportHandler(uc *billing.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Receipts exports all of the user's receipts.
// GET /api/export/receipts
func (h *ExportHandler) Receipts(c *fiber.Ctx) error {
	return streamCSV(c, "receipts.csv", GetUserID(c), h.uc.ExportReceipts)
}

// Invoices exports all of the user's invoices.
// GET /api/export/invoices
func (h *ExportHandler) Invoices(c *fiber.Ctx) error {
	return streamCSV(c, "invoices.csv", GetUserID(c), h.uc.ExportInvoices)
}

// streamCSV writes the export through the response body stream, so a long
// sales history is never buffered in memory as a whole. The stream writer
// runs after the handler has returned and the request context is gone, hence
// context.Background; a mid-stream failure can only be logged and truncates
// the download.
func streamCSV(c *fiber.Ctx, filename, userID string, export func(context.Context, string, io.Writer) error) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		if err := export(context.Background(), userID, w); err != nil {
			log.Error().Err(err).Str("filename", filename).Msg("csv export aborted")
		}
	}))
	return nil
}
