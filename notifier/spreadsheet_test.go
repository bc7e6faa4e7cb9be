package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "academia/models/course"
)

func testRegistration() *courseModels.LiveCourseRegistration {
	return &courseModels.LiveCourseRegistration{
		ReferenceCode:     "ref-123",
		FirstName:         "Maria",
		LastName:          "Lopez",
		Email:             "maria@example.com",
		PhoneNumber:       "3051234567",
		Age:               22,
		PreferredModality: courseModels.ModalityVirtual,
		HasLaptop:         true,
		RegisteredAt:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestWebhookAppenderPostsRow(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	appender := &webhookAppender{client: resty.New(), url: server.URL}
	course := &courseModels.Course{Slug: "python-fullstack", Title: "Python Fullstack"}

	err := appender.AppendRegistration(course, testRegistration())
	require.NoError(t, err)

	assert.Equal(t, "Registros Python Fullstack", received["sheet"])
	assert.Equal(t, "ref-123", received["reference_code"])
	assert.Equal(t, "Python Fullstack", received["course"])
	assert.Equal(t, "2026-03-14T10:00:00Z", received["registered_at"])
}

func TestWebhookAppenderUnmappedCourse(t *testing.T) {
	appender := &webhookAppender{client: resty.New(), url: "http://localhost:0"}
	course := &courseModels.Course{Slug: "curso-sin-hoja", Title: "Curso Nuevo"}

	err := appender.AppendRegistration(course, testRegistration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no spreadsheet mapping")
}

func TestWebhookAppenderRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusInternalServerError)
	}))
	defer server.Close()

	appender := &webhookAppender{client: resty.New(), url: server.URL}
	course := &courseModels.Course{Slug: "desarrollo-web", Title: "Desarrollo Web"}

	err := appender.AppendRegistration(course, testRegistration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
