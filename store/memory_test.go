package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "academia/models/course"
)

func TestMemoryStoreCatalog(t *testing.T) {
	s := NewMemoryStore()

	course := courseModels.Course{Slug: "python-fullstack", Title: "Python Fullstack", IsPublished: true}
	require.NoError(t, s.CreateCourse(&course))
	assert.NotZero(t, course.ID)

	found, err := s.CourseBySlug("python-fullstack")
	require.NoError(t, err)
	assert.Equal(t, course.ID, found.ID)

	_, err = s.CourseBySlug("no-such-course")
	assert.ErrorIs(t, err, ErrNotFound)

	module := courseModels.Module{CourseID: course.ID, Title: "Basics", OrderIndex: 1}
	require.NoError(t, s.CreateModule(&module))

	for i, title := range []string{"Intro", "Variables", "Loops"} {
		sec := courseModels.Section{CourseID: course.ID, ModuleID: module.ID, Title: title, OrderIndex: i + 1}
		require.NoError(t, s.CreateSection(&sec))
	}

	total, err := s.CountSectionsByCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	sections, err := s.SectionsByModule(module.ID)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, "Intro", sections[0].Title)
	assert.Equal(t, "Loops", sections[2].Title)

	// Soft-deleted sections disappear from counts and listings
	require.NoError(t, s.DeleteSection(sections[0].ID))
	total, err = s.CountSectionsByCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	require.NoError(t, s.DeleteCourse(course.ID))
	_, err = s.CourseBySlug("python-fullstack")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreEnrollments(t *testing.T) {
	s := NewMemoryStore()

	course := courseModels.Course{Slug: "desarrollo-web", Title: "Desarrollo Web", IsPublished: true}
	require.NoError(t, s.CreateCourse(&course))

	enrollment := courseModels.Enrollment{UserID: 7, CourseID: course.ID}
	require.NoError(t, s.CreateEnrollment(&enrollment))

	found, err := s.EnrollmentByUserAndCourse(7, course.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, found.ID)
	assert.Equal(t, 0, found.Progress)

	_, err = s.EnrollmentByUserAndCourse(8, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.EnrollmentsByUser(7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, course.Title, list[0].Course.Title, "course summary should be embedded")

	require.NoError(t, s.DeleteEnrollment(enrollment.ID))
	_, err = s.EnrollmentByID(enrollment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSectionProgress(t *testing.T) {
	s := NewMemoryStore()

	records := []courseModels.SectionProgress{
		{UserID: 1, CourseID: 2, SectionID: 10, Completed: true},
		{UserID: 1, CourseID: 2, SectionID: 11, Completed: false, VideoProgress: 40},
		{UserID: 1, CourseID: 3, SectionID: 20, Completed: true},
		{UserID: 2, CourseID: 2, SectionID: 10, Completed: true},
	}
	for i := range records {
		require.NoError(t, s.CreateSectionProgress(&records[i]))
	}

	// Only completed records of the right user and course count
	count, err := s.CountCompletedSections(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	ledger, err := s.SectionProgressByUserAndCourse(1, 2)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)

	require.NoError(t, s.DeleteSectionProgressByUserAndCourse(1, 2))
	ledger, err = s.SectionProgressByUserAndCourse(1, 2)
	require.NoError(t, err)
	assert.Empty(t, ledger)

	// Other users and courses are untouched
	count, err = s.CountCompletedSections(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Removing a section retires every user's progress rows for it
	require.NoError(t, s.DeleteSectionProgressBySection(10))
	count, err = s.CountCompletedSections(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryStoreRegistrations(t *testing.T) {
	s := NewMemoryStore()

	userID := uint(5)
	regs := []courseModels.LiveCourseRegistration{
		{CourseID: 1, UserID: &userID, ReferenceCode: "a", Email: "a@b.com"},
		{CourseID: 1, UserID: nil, ReferenceCode: "b", Email: "c@d.com"},
	}
	for i := range regs {
		require.NoError(t, s.CreateRegistration(&regs[i]))
	}

	mine, err := s.RegistrationsByUserAndCourse(userID, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := s.RegistrationsByCourse(1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
