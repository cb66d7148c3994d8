// file: internals/features/billing/controller/wallet_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "centralhealth_backend/internals/features/billing/dto"
	service "centralhealth_backend/internals/features/billing/service"
	helper "centralhealth_backend/internals/helpers"
)

type WalletController struct {
	Service *service.WalletService
}

func NewWalletController(svc *service.WalletService) *WalletController {
	return &WalletController{Service: svc}
}

// POST /api/patients/:id/wallet/top-up
func (ctl *WalletController) TopUp(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	var req dto.TopUpWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := ctl.Service.TopUp(c.UserContext(), actor, patientID, req.Amount, req.Reference)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonCreated(c, "wallet topped up", dto.FromWalletTransactionModel(*entry))
}

// GET /api/patients/:id/wallet
func (ctl *WalletController) GetForPatient(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	pg := helper.ResolvePaging(c, 20, 100)
	wallet, entries, _, err := ctl.Service.GetForPatient(c.UserContext(), actor, patientID, pg.Limit, pg.Offset)
	if err != nil {
		return jsonEngineError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromWalletModel(*wallet, entries))
}
