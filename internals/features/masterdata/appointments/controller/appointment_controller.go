// file: internals/features/masterdata/appointments/controller/appointment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	billingService "centralhealth_backend/internals/features/billing/service"
	dto "centralhealth_backend/internals/features/masterdata/appointments/dto"
	model "centralhealth_backend/internals/features/masterdata/appointments/model"
	patientModel "centralhealth_backend/internals/features/masterdata/patients/model"
	helper "centralhealth_backend/internals/helpers"
)

type AppointmentController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewAppointmentController(db *gorm.DB, log *zap.Logger) *AppointmentController {
	return &AppointmentController{DB: db, Log: log}
}

var validate = validator.New()

// POST /api/appointments
func (ctl *AppointmentController) Create(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var patient patientModel.PatientModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("patient_id = ? AND patient_facility_id = ?", req.PatientID, facilityID).
		First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Patient not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while creating the appointment")
	}

	appt := model.AppointmentModel{
		AppointmentID:          uuid.New(),
		AppointmentFacilityID:  facilityID,
		AppointmentPatientID:   req.PatientID,
		AppointmentNumber:      billingService.GenerateAppointmentNumber(),
		AppointmentScheduledAt: req.ScheduledAt,
		AppointmentStatus:      model.AppointmentStatusScheduled,
		AppointmentReason:      req.Reason,
		AppointmentNotes:       req.Notes,
		AppointmentCreatedBy:   helper.GetUserNameFromToken(c),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&appt).Error; err != nil {
		ctl.Log.Error("appointment create failed",
			zap.String("patient_id", req.PatientID.String()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while creating the appointment")
	}
	return helper.JsonCreated(c, "appointment created", dto.FromAppointmentModel(appt))
}

// GET /api/appointments/:id
func (ctl *AppointmentController) GetByID(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	var appt model.AppointmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("appointment_id = ? AND appointment_facility_id = ?", appointmentID, facilityID).
		First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving the appointment")
	}
	return helper.JsonOK(c, "ok", dto.FromAppointmentModel(appt))
}

// GET /api/appointments?patient_id=&status=&page=&per_page=
func (ctl *AppointmentController) List(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	pg := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.AppointmentModel{}).
		Where("appointment_facility_id = ?", facilityID)

	if raw := strings.TrimSpace(c.Query("patient_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient_id")
		}
		q = q.Where("appointment_patient_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("appointment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving appointments")
	}

	var rows []model.AppointmentModel
	if err := q.
		Order("appointment_scheduled_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving appointments")
	}

	return helper.JsonList(c, "ok", dto.FromAppointmentModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/appointments/:id/check-in
// Only a scheduled appointment can check in. The row is locked for the
// duration of the transaction so concurrent check-ins serialize.
func (ctl *AppointmentController) CheckIn(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid appointment id")
	}
	actorName := helper.GetUserNameFromToken(c)

	var appt model.AppointmentModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("appointment_id = ? AND appointment_facility_id = ?", appointmentID, facilityID).
			First(&appt).Error; err != nil {
			return err
		}
		if appt.AppointmentStatus != model.AppointmentStatusScheduled {
			return errInvalidCheckIn
		}
		appt.AppointmentStatus = model.AppointmentStatusCheckedIn
		appt.AppointmentUpdatedBy = &actorName
		return tx.Save(&appt).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
		}
		if errors.Is(err, errInvalidCheckIn) {
			return helper.JsonError(c, fiber.StatusConflict, "Only a scheduled appointment can be checked in")
		}
		ctl.Log.Error("appointment check-in failed",
			zap.String("appointment_id", appointmentID.String()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred during check-in")
	}
	return helper.JsonOK(c, "checked in", dto.FromAppointmentModel(appt))
}

var errInvalidCheckIn = errors.New("appointment not in scheduled status")
