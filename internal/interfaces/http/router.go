package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ansup17174/randomproject/internal/application/auth"
	"github.com/Ansup17174/randomproject/internal/application/billing"
	"github.com/Ansup17174/randomproject/internal/application/usecase"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	CreateReceipt *billing.CreateReceiptUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.InvoicePDFUseCase
	ExportUC      *billing.ExportUseCase
	JWTSecret     string
}

// Router registers the API routes. Everything except register/login requires
// a Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:name", companyHandler.GetByName)
	companies.Patch("/:name", companyHandler.Update)
	companies.Delete("/:name", companyHandler.Delete)

	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.CreateReceipt)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	export := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	export.Get("/receipts", exportHandler.Receipts)
	export.Get("/invoices", exportHandler.Invoices)
}
