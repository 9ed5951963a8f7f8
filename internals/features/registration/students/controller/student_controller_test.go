package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "jaleifoundation_backend/internals/features/registration/students/model"
)

func setupStudentApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Student{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	h := NewStudentController(db)
	app.Post("/student", h.UpsertStudent)
	return app, db
}

func studentBody(email, phone string) map[string]string {
	return map[string]string{
		"fullName":     "Asha Kumari",
		"fatherName":   "Ram Kumar",
		"locationName": "Ranchi",
		"pincode":      "834001",
		"collegeName":  "Ranchi College",
		"studyStream":  "Science",
		"email":        email,
		"phoneNumber":  phone,
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var parsed map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("unmarshal response %q: %v", data, err)
		}
	}
	return resp.StatusCode, parsed
}

func TestUpsertStudent_Create(t *testing.T) {
	app, db := setupStudentApp(t)

	status, resp := postJSON(t, app, "/student", studentBody("asha@example.com", "9990001111"))
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (resp %v)", status, resp)
	}
	if resp["message"] != "Student Created" {
		t.Errorf("message = %v, want Student Created", resp["message"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("data missing in response: %v", resp)
	}
	if data["email"] != "asha@example.com" {
		t.Errorf("data.email = %v", data["email"])
	}
	if data["id"] == "" || data["id"] == nil {
		t.Errorf("data.id missing")
	}

	var count int64
	db.Model(&model.Student{}).Count(&count)
	if count != 1 {
		t.Errorf("student rows = %d, want 1", count)
	}
}

func TestUpsertStudent_UpdateByEmail(t *testing.T) {
	app, db := setupStudentApp(t)

	if s, _ := postJSON(t, app, "/student", studentBody("asha@example.com", "9990001111")); s != http.StatusCreated {
		t.Fatalf("seed create failed: %d", s)
	}

	// same email, new phone, changed profile → full overwrite
	body := studentBody("asha@example.com", "8880002222")
	body["collegeName"] = "St. Xavier's College"
	status, resp := postJSON(t, app, "/student", body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 (resp %v)", status, resp)
	}
	if resp["message"] != "Student Information Updated" {
		t.Errorf("message = %v", resp["message"])
	}

	var count int64
	db.Model(&model.Student{}).Count(&count)
	if count != 1 {
		t.Errorf("student rows = %d, want 1", count)
	}

	var got model.Student
	if err := db.First(&got).Error; err != nil {
		t.Fatalf("load student: %v", err)
	}
	if got.StudentPhoneNumber != "8880002222" {
		t.Errorf("phone = %q, want overwritten", got.StudentPhoneNumber)
	}
	if got.StudentCollegeName != "St. Xavier's College" {
		t.Errorf("college = %q, want overwritten", got.StudentCollegeName)
	}
}

func TestUpsertStudent_UpdateByPhone(t *testing.T) {
	app, _ := setupStudentApp(t)

	if s, _ := postJSON(t, app, "/student", studentBody("asha@example.com", "9990001111")); s != http.StatusCreated {
		t.Fatalf("seed create failed: %d", s)
	}

	// same phone, brand-new email → still an update, email may move
	status, resp := postJSON(t, app, "/student", studentBody("asha.new@example.com", "9990001111"))
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 (resp %v)", status, resp)
	}
	data := resp["data"].(map[string]any)
	if data["email"] != "asha.new@example.com" {
		t.Errorf("data.email = %v, want updated email", data["email"])
	}
}

func TestUpsertStudent_Conflicts(t *testing.T) {
	app, _ := setupStudentApp(t)

	if s, _ := postJSON(t, app, "/student", studentBody("a@example.com", "1111111111")); s != http.StatusCreated {
		t.Fatalf("seed A failed: %d", s)
	}
	bodyB := studentBody("b@example.com", "2222222222")
	bodyB["fullName"] = "Binod Singh"
	if s, _ := postJSON(t, app, "/student", bodyB); s != http.StatusCreated {
		t.Fatalf("seed B failed: %d", s)
	}

	tests := []struct {
		name  string
		email string
		phone string
	}{
		// matches A by email but carries B's phone
		{"phone held by other", "a@example.com", "2222222222"},
		// matches A by phone but carries B's email
		{"email held by other", "b@example.com", "1111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := postJSON(t, app, "/student", studentBody(tt.email, tt.phone))
			if status != http.StatusConflict {
				t.Fatalf("status = %d, want 409 (resp %v)", status, resp)
			}
			msg, _ := resp["message"].(string)
			if !strings.Contains(msg, "already belongs to another student") {
				t.Errorf("message = %q, want a conflict message", msg)
			}
		})
	}
}

func TestUpsertStudent_EmailFormatNotChecked(t *testing.T) {
	app, db := setupStudentApp(t)

	// presence is the only constraint; an odd-looking email still registers
	status, resp := postJSON(t, app, "/student", studentBody("not-an-email", "9990001111"))
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (resp %v)", status, resp)
	}
	if resp["message"] != "Student Created" {
		t.Errorf("message = %v, want Student Created", resp["message"])
	}

	var count int64
	db.Model(&model.Student{}).Where("student_email = ?", "not-an-email").Count(&count)
	if count != 1 {
		t.Errorf("persisted rows for odd email = %d, want 1", count)
	}
}

func TestUpsertStudent_MissingFields(t *testing.T) {
	app, _ := setupStudentApp(t)

	body := studentBody("asha@example.com", "9990001111")
	delete(body, "fullName")

	status, _ := postJSON(t, app, "/student", body)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}
