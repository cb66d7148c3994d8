// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"centralhealth_backend/internals/configs"
	billingController "centralhealth_backend/internals/features/billing/controller"
	"centralhealth_backend/internals/features/billing/repository"
	"centralhealth_backend/internals/features/billing/service"
	"centralhealth_backend/internals/middlewares"
)

// BillingRoutes wires the billing engine behind the authenticated API group.
func BillingRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	store := repository.NewGormStore(db)
	invoiceSvc := service.NewInvoiceService(store, log, configs.DefaultCurrency)
	paymentSvc := service.NewPaymentService(store, log)
	walletSvc := service.NewWalletService(store, log)

	invoiceCtl := billingController.NewInvoiceController(invoiceSvc)
	paymentCtl := billingController.NewPaymentController(paymentSvc)
	walletCtl := billingController.NewWalletController(walletSvc)

	invoices := api.Group("/invoices")
	invoices.Post("/", invoiceCtl.Create)
	invoices.Get("/", invoiceCtl.List)
	invoices.Get("/:id", invoiceCtl.GetByID)
	invoices.Post("/:id/cancel", invoiceCtl.Cancel)
	invoices.Get("/:id/payments", paymentCtl.ListForInvoice)

	payments := api.Group("/payments")
	payments.Post("/", middlewares.PaymentRateLimiter(), paymentCtl.Process)
	payments.Get("/:id", paymentCtl.GetByID)

	api.Post("/patients/:id/wallet/top-up", walletCtl.TopUp)
	api.Get("/patients/:id/wallet", walletCtl.GetForPatient)
}
