package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jaleifoundation_backend/internals/configs"
	orderModel "jaleifoundation_backend/internals/features/registration/payments/model"
	studentModel "jaleifoundation_backend/internals/features/registration/students/model"
)

func ConnectDB(cfg *configs.Config) *gorm.DB {
	log.Println("🔌 Connecting to PostgreSQL...")

	// statement_timeout keeps a stuck query from holding a pooled conn
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=jaleifoundation&options=-c statement_timeout=3000",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling safe
	}), &gorm.Config{
		TranslateError: true, // surface unique-index hits as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	log.Println("✅ DB connected.")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the registration tables. The unique indexes on
// student email/phone and on order_student_id are what make the
// lookup-then-create flows safe under concurrent duplicates.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&studentModel.Student{},
		&orderModel.Order{},
		&orderModel.GatewayEvent{},
	); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	log.Println("✅ Migration done.")
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
