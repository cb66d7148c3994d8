// file: internals/features/masterdata/patients/controller/patient_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	billingModel "centralhealth_backend/internals/features/billing/model"
	billingService "centralhealth_backend/internals/features/billing/service"
	dto "centralhealth_backend/internals/features/masterdata/patients/dto"
	model "centralhealth_backend/internals/features/masterdata/patients/model"
	helper "centralhealth_backend/internals/helpers"
)

type PatientController struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Currency string
}

func NewPatientController(db *gorm.DB, log *zap.Logger, currency string) *PatientController {
	return &PatientController{DB: db, Log: log, Currency: currency}
}

var validate = validator.New()

// POST /api/patients
// Registration creates the patient together with their wallet, and records
// any opening balance as the wallet's first TOP_UP entry, in one transaction.
func (ctl *PatientController) Create(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	actorName := helper.GetUserNameFromToken(c)

	var req dto.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.InitialBalance.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Initial balance cannot be negative")
	}

	patient := model.PatientModel{
		PatientID:          uuid.New(),
		PatientFacilityID:  facilityID,
		PatientCode:        billingService.GeneratePatientCode(),
		PatientFirstName:   strings.TrimSpace(req.FirstName),
		PatientLastName:    strings.TrimSpace(req.LastName),
		PatientMiddleName:  req.MiddleName,
		PatientPhone:       req.Phone,
		PatientEmail:       req.Email,
		PatientDateOfBirth: req.DateOfBirth,
		PatientGender:      req.Gender,
		PatientAddress:     req.Address,
		PatientCreatedBy:   actorName,
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&patient).Error; err != nil {
			return err
		}

		wallet := billingModel.PatientWalletModel{
			WalletID:         uuid.New(),
			WalletPatientID:  patient.PatientID,
			WalletFacilityID: facilityID,
			WalletBalance:    req.InitialBalance,
			WalletCurrency:   ctl.Currency,
			WalletCreatedBy:  actorName,
		}
		if err := tx.Create(&wallet).Error; err != nil {
			return err
		}

		if req.InitialBalance.IsPositive() {
			entry := billingModel.WalletTransactionModel{
				WalletTransactionID:            uuid.New(),
				WalletTransactionWalletID:      wallet.WalletID,
				WalletTransactionAmount:        req.InitialBalance,
				WalletTransactionType:          billingModel.WalletTransactionTypeTopUp,
				WalletTransactionDescription:   "Opening balance",
				WalletTransactionBalanceBefore: decimal.Zero,
				WalletTransactionBalanceAfter:  req.InitialBalance,
				WalletTransactionCreatedBy:     actorName,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		ctl.Log.Error("patient registration failed",
			zap.String("facility_id", facilityID.String()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while registering the patient")
	}

	ctl.Log.Info("patient registered",
		zap.String("patient_id", patient.PatientID.String()),
		zap.String("patient_code", patient.PatientCode))
	return helper.JsonCreated(c, "patient registered", dto.FromPatientModel(patient))
}

// GET /api/patients/:id
func (ctl *PatientController) GetByID(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	var patient model.PatientModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("patient_id = ? AND patient_facility_id = ?", patientID, facilityID).
		First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Patient not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving the patient")
	}
	return helper.JsonOK(c, "ok", dto.FromPatientModel(patient))
}

// GET /api/patients?search=&page=&per_page=
func (ctl *PatientController) List(c *fiber.Ctx) error {
	facilityID, err := helper.GetFacilityIDFromToken(c)
	if err != nil {
		return err
	}
	pg := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.PatientModel{}).
		Where("patient_facility_id = ?", facilityID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(patient_first_name) LIKE ? OR LOWER(patient_last_name) LIKE ? OR LOWER(patient_code) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving patients")
	}

	var rows []model.PatientModel
	if err := q.
		Order("patient_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while retrieving patients")
	}

	return helper.JsonList(c, "ok", dto.FromPatientModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
