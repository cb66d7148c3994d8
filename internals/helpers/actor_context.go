// file: internals/helpers/actor_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Identity is resolved by the auth middleware and stashed in request locals;
// these helpers are the only way handlers read it.

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid "+key+" in token")
	}
	return id, nil
}

// GetFacilityIDFromToken returns the tenant every lookup must be scoped to.
func GetFacilityIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "facility_id")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "user_id")
}

func GetUserNameFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals("user_name").(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return "system"
}
