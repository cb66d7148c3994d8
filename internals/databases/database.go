package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	billingModel "centralhealth_backend/internals/features/billing/model"
	apptModel "centralhealth_backend/internals/features/masterdata/appointments/model"
	patientModel "centralhealth_backend/internals/features/masterdata/patients/model"
	svcModel "centralhealth_backend/internals/features/masterdata/services/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("connecting to PostgreSQL...")

	// Full DSN with statement_timeout so a stuck query cannot hold a row lock
	// past the HTTP timeout. PreferSimpleProtocol keeps this PgBouncer-safe.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=centralhealth&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	DB = db
	log.Println("database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate keeps the schema in step with the models. Order matters:
// referenced tables (patients, services, appointments) before the billing
// tables that point at them.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&patientModel.PatientModel{},
		&svcModel.MedicalServiceModel{},
		&apptModel.AppointmentModel{},
		&billingModel.InvoiceModel{},
		&billingModel.InvoiceItemModel{},
		&billingModel.PaymentModel{},
		&billingModel.PatientWalletModel{},
		&billingModel.WalletTransactionModel{},
	); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}
	log.Println("auto-migration complete")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
