// file: internals/route/details/masterdata_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"centralhealth_backend/internals/configs"
	apptController "centralhealth_backend/internals/features/masterdata/appointments/controller"
	patientController "centralhealth_backend/internals/features/masterdata/patients/controller"
	svcController "centralhealth_backend/internals/features/masterdata/services/controller"
)

// MasterdataRoutes wires patient, service catalog and appointment management.
func MasterdataRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	patientCtl := patientController.NewPatientController(db, log, configs.DefaultCurrency)
	serviceCtl := svcController.NewMedicalServiceController(db, log)
	apptCtl := apptController.NewAppointmentController(db, log)

	patients := api.Group("/patients")
	patients.Post("/", patientCtl.Create)
	patients.Get("/", patientCtl.List)
	patients.Get("/:id", patientCtl.GetByID)

	services := api.Group("/medical-services")
	services.Post("/", serviceCtl.Create)
	services.Get("/", serviceCtl.List)
	services.Get("/:id", serviceCtl.GetByID)
	services.Put("/:id", serviceCtl.Update)

	appointments := api.Group("/appointments")
	appointments.Post("/", apptCtl.Create)
	appointments.Get("/", apptCtl.List)
	appointments.Get("/:id", apptCtl.GetByID)
	appointments.Post("/:id/check-in", apptCtl.CheckIn)
}
