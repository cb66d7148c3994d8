// file: internals/features/billing/controller/payment_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "centralhealth_backend/internals/features/billing/dto"
	service "centralhealth_backend/internals/features/billing/service"
	helper "centralhealth_backend/internals/helpers"
)

type PaymentController struct {
	Service *service.PaymentService
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

// POST /api/payments
func (ctl *PaymentController) Process(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	payment, err := ctl.Service.Process(c.UserContext(), actor, req)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonCreated(c, "payment processed", dto.FromPaymentModel(*payment))
}

// GET /api/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment id")
	}

	payment, err := ctl.Service.GetByID(c.UserContext(), actor, paymentID)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromPaymentModel(*payment))
}

// GET /api/invoices/:id/payments
func (ctl *PaymentController) ListForInvoice(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}

	rows, err := ctl.Service.ListForInvoice(c.UserContext(), actor, invoiceID)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromPaymentModels(rows))
}
