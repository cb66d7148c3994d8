// file: internals/features/billing/controller/invoice_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "centralhealth_backend/internals/features/billing/dto"
	model "centralhealth_backend/internals/features/billing/model"
	service "centralhealth_backend/internals/features/billing/service"
	helper "centralhealth_backend/internals/helpers"
)

type InvoiceController struct {
	Service *service.InvoiceService
}

func NewInvoiceController(svc *service.InvoiceService) *InvoiceController {
	return &InvoiceController{Service: svc}
}

// POST /api/invoices
func (ctl *InvoiceController) Create(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	inv, err := ctl.Service.Create(c.UserContext(), actor, req)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonCreated(c, "invoice created", dto.FromInvoiceModel(*inv, nil))
}

// GET /api/invoices/:id
func (ctl *InvoiceController) GetByID(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}

	inv, payments, err := ctl.Service.GetByID(c.UserContext(), actor, invoiceID)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromInvoiceModel(*inv, payments))
}

// GET /api/invoices?patient_id=&status=&start_date=&end_date=&page=&per_page=
func (ctl *InvoiceController) List(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	pg := helper.ResolvePaging(c, 20, 200)
	filter := service.InvoiceFilter{Limit: pg.Limit, Offset: pg.Offset}

	if raw := strings.TrimSpace(c.Query("patient_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient_id")
		}
		filter.PatientID = &id
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.InvoiceStatus(raw)
		filter.Status = &st
	}
	if t := parseDateLoose(c.Query("start_date")); t != nil {
		filter.StartDate = t
	}
	if t := parseDateLoose(c.Query("end_date")); t != nil {
		filter.EndDate = t
	}

	rows, total, err := ctl.Service.List(c.UserContext(), actor, filter)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromInvoiceModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/invoices/:id/cancel
func (ctl *InvoiceController) Cancel(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice id")
	}

	if err := ctl.Service.Cancel(c.UserContext(), actor, invoiceID); err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonOK(c, "invoice cancelled", fiber.Map{"invoice_id": invoiceID})
}

// parseDateLoose accepts RFC3339 or plain YYYY-MM-DD.
func parseDateLoose(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}
