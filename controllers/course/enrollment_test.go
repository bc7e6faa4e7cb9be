package controllers

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
	courseValidator "academia/validators/course"
)

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}
	store.Data = store.NewMemoryStore()

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/enroll", middleware.JWTMiddleware, courseValidator.Enroll(), EnrollInCourse)
	api.Get("/enrollments", middleware.JWTMiddleware, GetEnrollments)
	api.Patch("/enrollments/:id/progress", middleware.JWTMiddleware, courseValidator.UpdateProgress(), UpdateEnrollmentProgress)
	api.Delete("/enrollments/:id", middleware.JWTMiddleware, courseValidator.EnrollmentID(), Unenroll)
	api.Post("/sections/:id/progress", middleware.JWTMiddleware, courseValidator.SectionProgress(), UpdateSectionProgress)
	api.Get("/courses/:course_id/progress", middleware.JWTMiddleware, courseValidator.CourseProgress(), GetCourseProgress)
	return app
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID, "Test User", "USER", "user@test.com")
	require.NoError(t, err)
	return token
}

// seedCourse creates a published course with one module per entry in
// sectionsPerModule, returning the course and its section ids in order.
func seedCourse(t *testing.T, slug string, sectionsPerModule ...int) (*courseModels.Course, []uint) {
	t.Helper()

	course := courseModels.Course{Slug: slug, Title: "Test Course", IsPublished: true}
	require.NoError(t, store.Data.CreateCourse(&course))

	var sectionIDs []uint
	for m, count := range sectionsPerModule {
		module := courseModels.Module{CourseID: course.ID, Title: fmt.Sprintf("Module %d", m+1), OrderIndex: m + 1}
		require.NoError(t, store.Data.CreateModule(&module))
		for s := 0; s < count; s++ {
			section := courseModels.Section{
				CourseID:   course.ID,
				ModuleID:   module.ID,
				Title:      fmt.Sprintf("Section %d.%d", m+1, s+1),
				OrderIndex: s + 1,
			}
			require.NoError(t, store.Data.CreateSection(&section))
			sectionIDs = append(sectionIDs, section.ID)
		}
	}
	return &course, sectionIDs
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

func TestEnrollInCourse(t *testing.T) {
	app := setupApp(t)
	course, _ := seedCourse(t, "python-fullstack", 2, 3)
	token := authToken(t, 1)

	code, env := doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, env.Status)

	var enrollment courseModels.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, uint(1), enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.Completed)

	// Enrolling twice in the same course is rejected
	code, env = doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, env.Status)

	// A different user can still enroll
	code, _ = doJSON(t, app, "POST", "/api/enroll", authToken(t, 2), fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusCreated, code)
}

func TestEnrollRejectsUnknownAndUnpublishedCourses(t *testing.T) {
	app := setupApp(t)
	token := authToken(t, 1)

	draft := courseModels.Course{Slug: "draft-course", Title: "Draft", IsPublished: false}
	require.NoError(t, store.Data.CreateCourse(&draft))

	code, _ := doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": draft.ID})
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": 9999})
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": 0})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = doJSON(t, app, "POST", "/api/enroll", "", fiber.Map{"course_id": draft.ID})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestGetEnrollments(t *testing.T) {
	app := setupApp(t)
	first, _ := seedCourse(t, "python-fullstack", 2)
	second, _ := seedCourse(t, "desarrollo-web", 3)
	token := authToken(t, 1)

	for _, c := range []*courseModels.Course{first, second} {
		code, _ := doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": c.ID})
		require.Equal(t, fiber.StatusCreated, code)
	}

	code, env := doJSON(t, app, "GET", "/api/enrollments", token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var payload struct {
		Enrollments []courseModels.Enrollment `json:"enrollments"`
		Total       int                       `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 2, payload.Total)
	require.Len(t, payload.Enrollments, 2)
	assert.NotEmpty(t, payload.Enrollments[0].Course.Title, "course summary should be embedded")

	// Another user sees nothing
	code, env = doJSON(t, app, "GET", "/api/enrollments", authToken(t, 2), nil)
	assert.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 0, payload.Total)
}

func TestUpdateEnrollmentProgress(t *testing.T) {
	app := setupApp(t)
	course, _ := seedCourse(t, "python-fullstack", 2, 3)
	token := authToken(t, 1)

	code, env := doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": course.ID})
	require.Equal(t, fiber.StatusCreated, code)
	var enrollment courseModels.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))

	path := fmt.Sprintf("/api/enrollments/%d/progress", enrollment.ID)

	code, env = doJSON(t, app, "PATCH", path, token, fiber.Map{"progress": 45})
	assert.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 45, enrollment.Progress)
	assert.False(t, enrollment.Completed)

	// An explicit completed flag is honored even below 100%
	code, env = doJSON(t, app, "PATCH", path, token, fiber.Map{"progress": 80, "completed": true})
	assert.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 80, enrollment.Progress)
	assert.True(t, enrollment.Completed)
	assert.NotNil(t, enrollment.CompletedAt)

	code, env = doJSON(t, app, "PATCH", path, token, fiber.Map{"progress": 80, "completed": false})
	assert.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)

	// Missing progress fails validation
	code, env = doJSON(t, app, "PATCH", path, token, fiber.Map{"completed": true})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "progress")

	code, _ = doJSON(t, app, "PATCH", path, token, fiber.Map{"progress": 120})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	// Someone else's enrollment looks like it does not exist
	code, _ = doJSON(t, app, "PATCH", path, authToken(t, 2), fiber.Map{"progress": 10})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestUnenroll(t *testing.T) {
	app := setupApp(t)
	course, sectionIDs := seedCourse(t, "python-fullstack", 2)
	token := authToken(t, 1)

	code, env := doJSON(t, app, "POST", "/api/enroll", token, fiber.Map{"course_id": course.ID})
	require.Equal(t, fiber.StatusCreated, code)
	var enrollment courseModels.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))

	code, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/sections/%d/progress", sectionIDs[0]), token, fiber.Map{"completed": true})
	require.Equal(t, fiber.StatusOK, code)

	path := fmt.Sprintf("/api/enrollments/%d", enrollment.ID)

	// Another user cannot remove it
	code, _ = doJSON(t, app, "DELETE", path, authToken(t, 2), nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "DELETE", path, token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	_, err := store.Data.EnrollmentByID(enrollment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The section-progress history is cleared with the enrollment
	records, err := store.Data.SectionProgressByUserAndCourse(1, course.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	code, _ = doJSON(t, app, "DELETE", path, token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
