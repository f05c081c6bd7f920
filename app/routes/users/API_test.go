package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	SetupUsersRoutes(app)
	return app, mock
}

func profileRows(id, email string, role models.Role) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "email", "password", "first_name", "last_name", "role", "school_id", "is_active", "created_at", "updated_at",
	}).AddRow(id, email, "hash", "Test", "User", string(role), "school-1", true, now, now)
}

func assignRoleRequest(t *testing.T, token, targetID, role string) *http.Request {
	body, err := json.Marshal(fiber.Map{"role": role})
	if err != nil {
		t.Fatalf("marshal request failed: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/users/"+targetID+"/role", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// An admin assigns a role through the full middleware chain and gets the
// updated profile back, so the page can swap the badge without a reload.
func TestAssignRoleAPIAsAdmin(t *testing.T) {
	app, mock := newTestApp(t)

	token, err := auth.GenerateJWT("admin-1", "admin@edulink.test")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	// middleware resolves the caller's live profile first
	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("admin-1").
		WillReturnRows(profileRows("admin-1", "admin@edulink.test", models.RoleAdmin))
	mock.ExpectExec(`UPDATE users SET role`).
		WithArgs("director", "user-7").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("user-7").
		WillReturnRows(profileRows("user-7", "user7@edulink.test", models.RoleDirector))

	resp, err := app.Test(assignRoleRequest(t, token, "user-7", "director"), -1)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	assert.Equal(t, 200, resp.StatusCode)

	var payload struct {
		Success bool                `json:"success"`
		Data    *models.UserProfile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	assert.True(t, payload.Success)
	assert.Equal(t, models.RoleDirector, payload.Data.Role)
	assert.Equal(t, "user-7", payload.Data.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Directors see the user surface but cannot change permissions; the role
// route rejects them before any write.
func TestAssignRoleAPIDirectorForbidden(t *testing.T) {
	app, mock := newTestApp(t)

	token, err := auth.GenerateJWT("dir-1", "director@edulink.test")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("dir-1").
		WillReturnRows(profileRows("dir-1", "director@edulink.test", models.RoleDirector))

	resp, err := app.Test(assignRoleRequest(t, token, "user-7", "admin"), -1)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	assert.Equal(t, 403, resp.StatusCode)

	// no UPDATE was issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoleAPIUnknownRole(t *testing.T) {
	app, mock := newTestApp(t)

	token, err := auth.GenerateJWT("admin-1", "admin@edulink.test")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	mock.ExpectQuery(`SELECT id, email, password`).
		WithArgs("admin-1").
		WillReturnRows(profileRows("admin-1", "admin@edulink.test", models.RoleAdmin))

	resp, err := app.Test(assignRoleRequest(t, token, "user-7", "superuser"), -1)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	assert.Equal(t, 400, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
