// file: internals/features/masterdata/services/controller/medical_service_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "centralhealth_backend/internals/features/masterdata/services/dto"
	model "centralhealth_backend/internals/features/masterdata/services/model"
	helper "centralhealth_backend/internals/helpers"
)

type MedicalServiceController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewMedicalServiceController(db *gorm.DB, log *zap.Logger) *MedicalServiceController {
	return &MedicalServiceController{DB: db, Log: log}
}

var validate = validator.New()

// POST /api/medical-services
func (ctl *MedicalServiceController) Create(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMedicalServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.Price.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Price cannot be negative")
	}

	svc := model.MedicalServiceModel{
		MedicalServiceID:         uuid.New(),
		MedicalServiceFacilityID: facilityID,
		MedicalServiceCode:       strings.ToUpper(strings.TrimSpace(req.Code)),
		MedicalServiceName:       strings.TrimSpace(req.Name),
		MedicalServicePrice:      req.Price,
		MedicalServiceTags:       req.Tags,
		MedicalServiceIsActive:   true,
		MedicalServiceCreatedBy:  helper.GetUserNameFromToken(c),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&svc).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return helper.JsonError(c, fiber.StatusConflict, "Service code already exists")
		}
		ctl.Log.Error("medical service create failed",
			zap.String("facility_id", facilityID.String()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while creating the service")
	}
	return helper.JsonCreated(c, "service created", dto.FromMedicalServiceModel(svc))
}

// GET /api/medical-services/:id
func (ctl *MedicalServiceController) GetByID(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid service id")
	}

	var svc model.MedicalServiceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("medical_service_id = ? AND medical_service_facility_id = ?", serviceID, facilityID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving the service")
	}
	return helper.JsonOK(c, "ok", dto.FromMedicalServiceModel(svc))
}

// GET /api/medical-services?search=&tag=&active=&page=&per_page=
func (ctl *MedicalServiceController) List(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	pg := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.MedicalServiceModel{}).
		Where("medical_service_facility_id = ?", facilityID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(medical_service_name) LIKE ? OR LOWER(medical_service_code) LIKE ?", like, like)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(medical_service_tags)", tag)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("medical_service_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving services")
	}

	var rows []model.MedicalServiceModel
	if err := q.
		Order("medical_service_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving services")
	}

	return helper.JsonList(c, "ok", dto.FromMedicalServiceModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// PUT /api/medical-services/:id
func (ctl *MedicalServiceController) Update(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid service id")
	}

	var req dto.UpdateMedicalServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.Price != nil && req.Price.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Price cannot be negative")
	}

	var svc model.MedicalServiceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("medical_service_id = ? AND medical_service_facility_id = ?", serviceID, facilityID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while updating the service")
	}

	if req.Name != nil {
		svc.MedicalServiceName = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		svc.MedicalServicePrice = *req.Price
	}
	if req.Tags != nil {
		svc.MedicalServiceTags = req.Tags
	}
	if req.IsActive != nil {
		svc.MedicalServiceIsActive = *req.IsActive
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&svc).Error; err != nil {
		ctl.Log.Error("medical service update failed",
			zap.String("medical_service_id", serviceID.String()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while updating the service")
	}
	return helper.JsonOK(c, "service updated", dto.FromMedicalServiceModel(svc))
}
