package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	StudentFullName     string `gorm:"column:student_full_name;not null" json:"student_full_name"`
	StudentFatherName   string `gorm:"column:student_father_name;not null" json:"student_father_name"`
	StudentLocationName string `gorm:"column:student_location_name;not null" json:"student_location_name"`
	StudentPincode      string `gorm:"column:student_pincode;not null" json:"student_pincode"`
	StudentCollegeName  string `gorm:"column:student_college_name;not null" json:"student_college_name"`
	StudentStudyStream  string `gorm:"column:student_study_stream;not null" json:"student_study_stream"`

	// email & phone are the identity keys of the upsert; globally unique
	StudentEmail       string `gorm:"column:student_email;uniqueIndex;not null" json:"student_email"`
	StudentPhoneNumber string `gorm:"column:student_phone_number;uniqueIndex;not null" json:"student_phone_number"`

	CreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	UpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (Student) TableName() string { return "students" }

// BeforeCreate fills the uuid app-side so every driver behaves alike
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
