package store

import (
	"errors"

	"gorm.io/gorm"

	"academia/models"
	courseModels "academia/models/course"
)

// gormStore is the persistent Store implementation
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection as a Store
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------- Users ----------

func (s *gormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *gormStore) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *gormStore) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ? AND is_deleted = ?", email, false).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *gormStore) UpdateUser(u *models.User) error {
	return s.db.Save(u).Error
}

// ---------- Catalog ----------

func (s *gormStore) CreateCourse(c *courseModels.Course) error {
	return s.db.Create(c).Error
}

func (s *gormStore) UpdateCourse(c *courseModels.Course) error {
	return s.db.Save(c).Error
}

func (s *gormStore) DeleteCourse(id uint) error {
	return s.db.Model(&courseModels.Course{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (s *gormStore) CourseByID(id uint) (*courseModels.Course, error) {
	var c courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *gormStore) CourseBySlug(slug string) (*courseModels.Course, error) {
	var c courseModels.Course
	if err := s.db.Where("slug = ? AND is_deleted = ?", slug, false).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *gormStore) Courses(filter CourseFilter) ([]courseModels.Course, error) {
	db := s.db.Where("is_deleted = ? AND is_published = ?", false, true)
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		db = db.Where("level = ?", filter.Level)
	}
	if filter.Featured != nil {
		db = db.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Popular != nil {
		db = db.Where("is_popular = ?", *filter.Popular)
	}
	if filter.Live != nil {
		db = db.Where("is_live = ?", *filter.Live)
	}
	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *gormStore) CreateModule(m *courseModels.Module) error {
	return s.db.Create(m).Error
}

func (s *gormStore) UpdateModule(m *courseModels.Module) error {
	return s.db.Save(m).Error
}

func (s *gormStore) DeleteModule(id uint) error {
	return s.db.Model(&courseModels.Module{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (s *gormStore) ModuleByID(id uint) (*courseModels.Module, error) {
	var m courseModels.Module
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *gormStore) ModulesByCourse(courseID uint) ([]courseModels.Module, error) {
	var modules []courseModels.Module
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *gormStore) CreateSection(sec *courseModels.Section) error {
	return s.db.Create(sec).Error
}

func (s *gormStore) UpdateSection(sec *courseModels.Section) error {
	return s.db.Save(sec).Error
}

func (s *gormStore) DeleteSection(id uint) error {
	return s.db.Model(&courseModels.Section{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (s *gormStore) SectionByID(id uint) (*courseModels.Section, error) {
	var sec courseModels.Section
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&sec).Error; err != nil {
		return nil, translate(err)
	}
	return &sec, nil
}

func (s *gormStore) SectionsByModule(moduleID uint) ([]courseModels.Section, error) {
	var sections []courseModels.Section
	if err := s.db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("order_index asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *gormStore) CountSectionsByCourse(courseID uint) (int64, error) {
	var total int64
	err := s.db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&total).Error
	return total, err
}

// ---------- Enrollments ----------

func (s *gormStore) CreateEnrollment(e *courseModels.Enrollment) error {
	return s.db.Create(e).Error
}

func (s *gormStore) UpdateEnrollment(e *courseModels.Enrollment) error {
	return s.db.Save(e).Error
}

func (s *gormStore) DeleteEnrollment(id uint) error {
	return s.db.Unscoped().Delete(&courseModels.Enrollment{}, id).Error
}

func (s *gormStore) EnrollmentByID(id uint) (*courseModels.Enrollment, error) {
	var e courseModels.Enrollment
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *gormStore) EnrollmentByUserAndCourse(userID, courseID uint) (*courseModels.Enrollment, error) {
	var e courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *gormStore) EnrollmentsByUser(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ---------- Section progress ----------

func (s *gormStore) CreateSectionProgress(p *courseModels.SectionProgress) error {
	return s.db.Create(p).Error
}

func (s *gormStore) UpdateSectionProgress(p *courseModels.SectionProgress) error {
	return s.db.Save(p).Error
}

func (s *gormStore) SectionProgressByUserAndSection(userID, sectionID uint) (*courseModels.SectionProgress, error) {
	var p courseModels.SectionProgress
	if err := s.db.Where("user_id = ? AND section_id = ? AND is_deleted = ?", userID, sectionID, false).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *gormStore) SectionProgressByUserAndCourse(userID, courseID uint) ([]courseModels.SectionProgress, error) {
	var records []courseModels.SectionProgress
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *gormStore) CountCompletedSections(userID, courseID uint) (int64, error) {
	var total int64
	err := s.db.Model(&courseModels.SectionProgress{}).
		Where("user_id = ? AND course_id = ? AND completed = ? AND is_deleted = ?", userID, courseID, true, false).
		Count(&total).Error
	return total, err
}

func (s *gormStore) DeleteSectionProgressByUserAndCourse(userID, courseID uint) error {
	return s.db.Unscoped().
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&courseModels.SectionProgress{}).Error
}

func (s *gormStore) DeleteSectionProgressBySection(sectionID uint) error {
	return s.db.Model(&courseModels.SectionProgress{}).
		Where("section_id = ?", sectionID).Update("is_deleted", true).Error
}

// ---------- Live-course registrations ----------

func (s *gormStore) CreateRegistration(r *courseModels.LiveCourseRegistration) error {
	return s.db.Create(r).Error
}

func (s *gormStore) RegistrationsByUserAndCourse(userID, courseID uint) ([]courseModels.LiveCourseRegistration, error) {
	var regs []courseModels.LiveCourseRegistration
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *gormStore) RegistrationsByCourse(courseID uint) ([]courseModels.LiveCourseRegistration, error) {
	var regs []courseModels.LiveCourseRegistration
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("registered_at desc").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// ---------- Site content ----------

func (s *gormStore) CreateTeamMember(t *models.TeamMember) error {
	return s.db.Create(t).Error
}

func (s *gormStore) UpdateTeamMember(t *models.TeamMember) error {
	return s.db.Save(t).Error
}

func (s *gormStore) DeleteTeamMember(id uint) error {
	return s.db.Model(&models.TeamMember{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (s *gormStore) TeamMemberByID(id uint) (*models.TeamMember, error) {
	var t models.TeamMember
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *gormStore) TeamMembers() ([]models.TeamMember, error) {
	var team []models.TeamMember
	if err := s.db.Where("is_deleted = ?", false).Order("order_index asc").Find(&team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (s *gormStore) CreateTestimonial(t *models.Testimonial) error {
	return s.db.Create(t).Error
}

func (s *gormStore) UpdateTestimonial(t *models.Testimonial) error {
	return s.db.Save(t).Error
}

func (s *gormStore) DeleteTestimonial(id uint) error {
	return s.db.Model(&models.Testimonial{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (s *gormStore) TestimonialByID(id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *gormStore) Testimonials(publishedOnly bool) ([]models.Testimonial, error) {
	db := s.db.Where("is_deleted = ?", false)
	if publishedOnly {
		db = db.Where("is_published = ?", true)
	}
	var testimonials []models.Testimonial
	if err := db.Order("created_at desc").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (s *gormStore) CreateContactMessage(m *models.ContactMessage) error {
	return s.db.Create(m).Error
}
