// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authMiddleware "centralhealth_backend/internals/middlewares/auth"
	routeDetails "centralhealth_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Everything under /api requires a verified facility-scoped token.
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	routeDetails.MasterdataRoutes(api, db, log)
	routeDetails.BillingRoutes(api, db, log)
}
