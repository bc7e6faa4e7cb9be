package controllers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia/middleware"
	"academia/models"
	courseModels "academia/models/course"
	"academia/store"
	catalogValidator "academia/validators/catalog"
)

func setupAdminApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	app := setupApp(t)
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)
	admin.Post("/courses", catalogValidator.CreateCourse(), AdminCreateCourse)
	admin.Delete("/courses/:id", catalogValidator.IDParam("id", "courseID"), AdminDeleteCourse)
	admin.Post("/courses/:id/modules", catalogValidator.IDParam("id", "courseID"), catalogValidator.Module(), AdminCreateModule)
	admin.Delete("/modules/:id", catalogValidator.IDParam("id", "moduleID"), AdminDeleteModule)
	admin.Post("/modules/:id/sections", catalogValidator.IDParam("id", "moduleID"), catalogValidator.Section(), AdminCreateSection)
	admin.Delete("/sections/:id", catalogValidator.IDParam("id", "sectionID"), AdminDeleteSection)

	adminUser := models.User{Name: "Admin", Email: "admin@test.com", Role: "ADMIN", Password: "hashed"}
	require.NoError(t, store.Data.CreateUser(&adminUser))

	token, err := middleware.GenerateJWT(adminUser.ID, adminUser.Name, adminUser.Role, adminUser.Email)
	require.NoError(t, err)
	return app, token
}

func TestAdminCreateCourse(t *testing.T) {
	app, token := setupAdminApp(t)

	payload := fiber.Map{
		"slug":         "python-fullstack",
		"title":        "Python Fullstack",
		"is_published": true,
	}

	code, env := doJSON(t, app, "POST", "/admin/courses", token, payload)
	assert.Equal(t, fiber.StatusCreated, code)

	var course courseModels.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, "python-fullstack", course.Slug)
	assert.True(t, course.IsPublished)

	// Slug collisions are rejected
	code, _ = doJSON(t, app, "POST", "/admin/courses", token, payload)
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = doJSON(t, app, "POST", "/admin/courses", token, fiber.Map{"slug": "Bad Slug!", "title": "Bad"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	// Non-admin callers are refused
	regularUser := models.User{Name: "User", Email: "user2@test.com", Password: "hashed"}
	require.NoError(t, store.Data.CreateUser(&regularUser))
	userToken := authToken(t, regularUser.ID)

	code, _ = doJSON(t, app, "POST", "/admin/courses", userToken, fiber.Map{"slug": "otro-curso", "title": "Otro"})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestModuleCountStaysInSync(t *testing.T) {
	app, token := setupAdminApp(t)

	code, env := doJSON(t, app, "POST", "/admin/courses", token, fiber.Map{
		"slug":  "desarrollo-web",
		"title": "Desarrollo Web",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var course courseModels.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	var modules [2]courseModels.Module
	for i := range modules {
		code, env = doJSON(t, app, "POST", fmt.Sprintf("/admin/courses/%d/modules", course.ID), token, fiber.Map{
			"title": fmt.Sprintf("Modulo %d", i+1),
		})
		require.Equal(t, fiber.StatusCreated, code)
		require.NoError(t, json.Unmarshal(env.Data, &modules[i]))
	}
	assert.Equal(t, 1, modules[0].OrderIndex)
	assert.Equal(t, 2, modules[1].OrderIndex)

	fresh, err := store.Data.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.ModuleCount)

	// A module with sections cannot be removed
	code, env = doJSON(t, app, "POST", fmt.Sprintf("/admin/modules/%d/sections", modules[0].ID), token, fiber.Map{
		"title": "Introduccion",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var section courseModels.Section
	require.NoError(t, json.Unmarshal(env.Data, &section))
	assert.Equal(t, course.ID, section.CourseID, "section inherits the course from its module")

	code, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/modules/%d", modules[0].ID), token, nil)
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/sections/%d", section.ID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	code, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/modules/%d", modules[0].ID), token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	fresh, err = store.Data.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.ModuleCount)
}

func TestDeletingSectionRecalculatesProgress(t *testing.T) {
	app, adminToken := setupAdminApp(t)

	code, env := doJSON(t, app, "POST", "/admin/courses", adminToken, fiber.Map{
		"slug":         "robotica-kids",
		"title":        "Robotica Kids",
		"is_published": true,
	})
	require.Equal(t, fiber.StatusCreated, code)
	var course courseModels.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	code, env = doJSON(t, app, "POST", fmt.Sprintf("/admin/courses/%d/modules", course.ID), adminToken, fiber.Map{
		"title": "Modulo 1",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var module courseModels.Module
	require.NoError(t, json.Unmarshal(env.Data, &module))

	var sections [2]courseModels.Section
	for i := range sections {
		code, env = doJSON(t, app, "POST", fmt.Sprintf("/admin/modules/%d/sections", module.ID), adminToken, fiber.Map{
			"title": fmt.Sprintf("Seccion %d", i+1),
		})
		require.Equal(t, fiber.StatusCreated, code)
		require.NoError(t, json.Unmarshal(env.Data, &sections[i]))
	}

	learnerToken := authToken(t, 7)
	code, _ = doJSON(t, app, "POST", "/api/enroll", learnerToken, fiber.Map{"course_id": course.ID})
	require.Equal(t, fiber.StatusCreated, code)

	for i := range sections {
		code, _ = doJSON(t, app, "POST", sectionPath(sections[i].ID), learnerToken, fiber.Map{"completed": true})
		require.Equal(t, fiber.StatusOK, code)
	}

	enrollment := currentEnrollment(t, 7, course.ID)
	require.Equal(t, 100, enrollment.Progress)
	require.True(t, enrollment.Completed)

	// Shrink the catalog underneath the finished enrollment
	code, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/sections/%d", sections[1].ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, code)

	// The next ledger write recomputes against the live catalog
	code, _ = doJSON(t, app, "POST", sectionPath(sections[0].ID), learnerToken, fiber.Map{"video_progress": 10})
	require.Equal(t, fiber.StatusOK, code)

	enrollment = currentEnrollment(t, 7, course.ID)
	assert.Equal(t, 100, enrollment.Progress)
	assert.Equal(t, 1, enrollment.TotalSections)
	assert.Equal(t, 1, enrollment.CompletedSections)
	assert.True(t, enrollment.Completed)
}
