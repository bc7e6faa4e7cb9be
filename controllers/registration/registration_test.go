package registrationController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia/config"
	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
	registrationValidator "academia/validators/registration"
)

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	store.Data = store.NewMemoryStore()

	app := fiber.New()
	app.Post("/api/live-course-registrations", middleware.OptionalJWT, registrationValidator.Register(), CreateLiveRegistration)
	app.Get("/api/live-course-registrations", middleware.JWTMiddleware, registrationValidator.ListRegistrations(), GetLiveRegistrations)
	return app
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID, "Test User", "USER", "user@test.com")
	require.NoError(t, err)
	return token
}

func seedLiveCourse(t *testing.T, slug string) *courseModels.Course {
	t.Helper()
	course := courseModels.Course{Slug: slug, Title: "Live Course", IsPublished: true, IsLive: true}
	require.NoError(t, store.Data.CreateCourse(&course))
	return &course
}

func validPayload(courseID uint) fiber.Map {
	return fiber.Map{
		"course_id":          courseID,
		"full_name":          "Maria Fernanda Lopez",
		"email":              "maria@example.com",
		"phone_number":       "3051234567",
		"age":                22,
		"preferred_modality": courseModels.ModalityVirtual,
		"has_laptop":         true,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeRegistration(t *testing.T, env apiEnvelope) courseModels.LiveCourseRegistration {
	t.Helper()
	var payload struct {
		Registration courseModels.LiveCourseRegistration `json:"registration"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	return payload.Registration
}

func TestGuardianRequiredForMinors(t *testing.T) {
	app := setupApp(t)
	course := seedLiveCourse(t, "robotica-kids")

	payload := validPayload(course.ID)
	payload["age"] = 16

	code, env := doJSON(t, app, "POST", "/api/live-course-registrations", "", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "guardian_name")
	assert.Contains(t, fieldErrors, "guardian_phone_number")

	payload["guardian_name"] = "Ana Lopez Garcia"
	payload["guardian_phone_number"] = "3059876543"

	code, env = doJSON(t, app, "POST", "/api/live-course-registrations", "", payload)
	assert.Equal(t, fiber.StatusCreated, code)

	registration := decodeRegistration(t, env)
	assert.Equal(t, "Ana", registration.GuardianFirstName)
	assert.Equal(t, "Lopez Garcia", registration.GuardianLastName)
	assert.Equal(t, "3059876543", registration.GuardianPhoneNumber)
	assert.NotEmpty(t, registration.ReferenceCode)
}

func TestAdultNeedsNoGuardian(t *testing.T) {
	app := setupApp(t)
	course := seedLiveCourse(t, "python-fullstack")

	payload := validPayload(course.ID)
	payload["age"] = 18

	code, env := doJSON(t, app, "POST", "/api/live-course-registrations", "", payload)
	assert.Equal(t, fiber.StatusCreated, code)

	registration := decodeRegistration(t, env)
	assert.Equal(t, "Maria", registration.FirstName)
	assert.Equal(t, "Fernanda Lopez", registration.LastName)
	assert.Empty(t, registration.GuardianFirstName)
	assert.Nil(t, registration.UserID)
}

func TestRegistrationValidationErrors(t *testing.T) {
	app := setupApp(t)
	course := seedLiveCourse(t, "desarrollo-web")

	code, env := doJSON(t, app, "POST", "/api/live-course-registrations", "", fiber.Map{
		"course_id":          course.ID,
		"full_name":          "Jo",
		"email":              "not-an-email",
		"phone_number":       "123",
		"age":                25,
		"preferred_modality": "Hibrido",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "full_name")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "phone_number")
	assert.Contains(t, fieldErrors, "preferred_modality")
	assert.Contains(t, fieldErrors, "has_laptop")
}

func TestDuplicateRegistration(t *testing.T) {
	app := setupApp(t)
	course := seedLiveCourse(t, "ingles-tecnologico")
	token := authToken(t, 9)

	code, _ := doJSON(t, app, "POST", "/api/live-course-registrations", token, validPayload(course.ID))
	assert.Equal(t, fiber.StatusCreated, code)

	// A signed-in user registers once per course
	code, _ = doJSON(t, app, "POST", "/api/live-course-registrations", token, validPayload(course.ID))
	assert.Equal(t, fiber.StatusConflict, code)

	// Guest submissions are never deduplicated
	code, env := doJSON(t, app, "POST", "/api/live-course-registrations", "", validPayload(course.ID))
	assert.Equal(t, fiber.StatusCreated, code)
	first := decodeRegistration(t, env)

	code, env = doJSON(t, app, "POST", "/api/live-course-registrations", "", validPayload(course.ID))
	assert.Equal(t, fiber.StatusCreated, code)
	second := decodeRegistration(t, env)

	assert.NotEqual(t, first.ReferenceCode, second.ReferenceCode)
}

func TestRegistrationRejectsNonLiveCourses(t *testing.T) {
	app := setupApp(t)

	selfPaced := courseModels.Course{Slug: "ofimatica-profesional", Title: "Ofimatica", IsPublished: true}
	require.NoError(t, store.Data.CreateCourse(&selfPaced))

	code, _ := doJSON(t, app, "POST", "/api/live-course-registrations", "", validPayload(selfPaced.ID))
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = doJSON(t, app, "POST", "/api/live-course-registrations", "", validPayload(9999))
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestGetLiveRegistrations(t *testing.T) {
	app := setupApp(t)
	course := seedLiveCourse(t, "python-fullstack")
	token := authToken(t, 4)

	code, _ := doJSON(t, app, "POST", "/api/live-course-registrations", token, validPayload(course.ID))
	require.Equal(t, fiber.StatusCreated, code)

	listPath := fmt.Sprintf("/api/live-course-registrations?userId=4&courseId=%d", course.ID)

	code, env := doJSON(t, app, "GET", listPath, token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var payload struct {
		Registrations []courseModels.LiveCourseRegistration `json:"registrations"`
		Total         int                                   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 1, payload.Total)
	require.Len(t, payload.Registrations, 1)
	require.NotNil(t, payload.Registrations[0].UserID)
	assert.Equal(t, uint(4), *payload.Registrations[0].UserID)

	code, _ = doJSON(t, app, "GET", "/api/live-course-registrations?userId=abc&courseId=1", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	// Registrations carry contact details; other users' rows are off limits
	otherPath := fmt.Sprintf("/api/live-course-registrations?userId=4&courseId=%d", course.ID)
	code, _ = doJSON(t, app, "GET", otherPath, authToken(t, 5), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doJSON(t, app, "GET", listPath, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
