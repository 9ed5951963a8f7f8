package dto

import (
	"time"

	"github.com/google/uuid"

	"jaleifoundation_backend/internals/features/registration/students/model"
)

/* =========================================================
   REQUEST DTOs
   JSON keys follow the public form contract (camelCase)
========================================================= */

type StudentRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	FatherName   string `json:"fatherName" validate:"required"`
	LocationName string `json:"locationName" validate:"required"`
	Pincode      string `json:"pincode" validate:"required"`
	CollegeName  string `json:"collegeName" validate:"required"`
	StudyStream  string `json:"studyStream" validate:"required"`
	Email        string `json:"email" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
}

func (r *StudentRequest) ToModel() *model.Student {
	return &model.Student{
		StudentFullName:     r.FullName,
		StudentFatherName:   r.FatherName,
		StudentLocationName: r.LocationName,
		StudentPincode:      r.Pincode,
		StudentCollegeName:  r.CollegeName,
		StudentStudyStream:  r.StudyStream,
		StudentEmail:        r.Email,
		StudentPhoneNumber:  r.PhoneNumber,
	}
}

// ApplyTo overwrites every submitted field on an existing record
// (a resubmission replaces the whole profile, not a patch).
func (r *StudentRequest) ApplyTo(m *model.Student) {
	m.StudentFullName = r.FullName
	m.StudentFatherName = r.FatherName
	m.StudentLocationName = r.LocationName
	m.StudentPincode = r.Pincode
	m.StudentCollegeName = r.CollegeName
	m.StudentStudyStream = r.StudyStream
	m.StudentEmail = r.Email
	m.StudentPhoneNumber = r.PhoneNumber
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type StudentResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	FatherName   string    `json:"fatherName"`
	LocationName string    `json:"locationName"`
	Pincode      string    `json:"pincode"`
	CollegeName  string    `json:"collegeName"`
	StudyStream  string    `json:"studyStream"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromModel(m *model.Student) StudentResponse {
	return StudentResponse{
		ID:           m.StudentID,
		FullName:     m.StudentFullName,
		FatherName:   m.StudentFatherName,
		LocationName: m.StudentLocationName,
		Pincode:      m.StudentPincode,
		CollegeName:  m.StudentCollegeName,
		StudyStream:  m.StudentStudyStream,
		Email:        m.StudentEmail,
		PhoneNumber:  m.StudentPhoneNumber,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
