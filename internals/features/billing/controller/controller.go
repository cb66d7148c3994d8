// file: internals/features/billing/controller/controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	service "centralhealth_backend/internals/features/billing/service"
	helper "centralhealth_backend/internals/helpers"
)

var validate = validator.New()

// actorFromCtx builds the engine actor from the identity the auth middleware
// stashed in locals.
func actorFromCtx(c *fiber.Ctx) (service.Actor, error) {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{
		FacilityID: facilityID,
		UserID:     userID,
		UserName:   helper.GetUserNameFromToken(c),
	}, nil
}

// statusForKind maps engine error kinds onto HTTP statuses. The engine's
// message is passed through as-is; it is already safe for callers.
func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindNotFound:
		return fiber.StatusNotFound
	case service.KindInvalidState:
		return fiber.StatusConflict
	case service.KindInvalidAmount, service.KindInsufficientFunds:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func jsonEngineError(c *fiber.Ctx, err error) error {
	return helper.JsonError(c, statusForKind(service.KindOf(err)), err.Error())
}

func validationErrors(err error) map[string][]string {
	out := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
