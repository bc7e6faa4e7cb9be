package store

import (
	"sort"
	"sync"
	"time"

	"academia/models"
	courseModels "academia/models/course"
)

// memoryStore is a map-backed Store used for development and tests.
// Records are value copies keyed by auto-incrementing ids, guarded by a
// single mutex. Soft-delete semantics match the GORM implementation.
type memoryStore struct {
	mu     sync.Mutex
	nextID uint

	users         map[uint]models.User
	courses       map[uint]courseModels.Course
	modules       map[uint]courseModels.Module
	sections      map[uint]courseModels.Section
	enrollments   map[uint]courseModels.Enrollment
	progress      map[uint]courseModels.SectionProgress
	registrations map[uint]courseModels.LiveCourseRegistration
	team          map[uint]models.TeamMember
	testimonials  map[uint]models.Testimonial
	contacts      map[uint]models.ContactMessage
}

// NewMemoryStore returns an empty in-memory Store
func NewMemoryStore() Store {
	return &memoryStore{
		users:         make(map[uint]models.User),
		courses:       make(map[uint]courseModels.Course),
		modules:       make(map[uint]courseModels.Module),
		sections:      make(map[uint]courseModels.Section),
		enrollments:   make(map[uint]courseModels.Enrollment),
		progress:      make(map[uint]courseModels.SectionProgress),
		registrations: make(map[uint]courseModels.LiveCourseRegistration),
		team:          make(map[uint]models.TeamMember),
		testimonials:  make(map[uint]models.Testimonial),
		contacts:      make(map[uint]models.ContactMessage),
	}
}

func (s *memoryStore) allocID() uint {
	s.nextID++
	return s.nextID
}

// ---------- Users ----------

func (s *memoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.allocID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *memoryStore) UserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *memoryStore) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && !u.IsDeleted {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.UpdatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

// ---------- Catalog ----------

func (s *memoryStore) CreateCourse(c *courseModels.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.allocID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.courses[c.ID] = *c
	return nil
}

func (s *memoryStore) UpdateCourse(c *courseModels.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.UpdatedAt = time.Now()
	s.courses[c.ID] = *c
	return nil
}

func (s *memoryStore) DeleteCourse(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.courses[id]; ok {
		c.IsDeleted = true
		s.courses[id] = c
	}
	return nil
}

func (s *memoryStore) CourseByID(id uint) (*courseModels.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok || c.IsDeleted {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *memoryStore) CourseBySlug(slug string) (*courseModels.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.Slug == slug && !c.IsDeleted {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) Courses(filter CourseFilter) ([]courseModels.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses := make([]courseModels.Course, 0)
	for _, c := range s.courses {
		if c.IsDeleted || !c.IsPublished {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Level != "" && c.Level != filter.Level {
			continue
		}
		if filter.Featured != nil && c.IsFeatured != *filter.Featured {
			continue
		}
		if filter.Popular != nil && c.IsPopular != *filter.Popular {
			continue
		}
		if filter.Live != nil && c.IsLive != *filter.Live {
			continue
		}
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].CreatedAt.After(courses[j].CreatedAt) })
	return courses, nil
}

func (s *memoryStore) CreateModule(m *courseModels.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.allocID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	s.modules[m.ID] = *m
	return nil
}

func (s *memoryStore) UpdateModule(m *courseModels.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.UpdatedAt = time.Now()
	s.modules[m.ID] = *m
	return nil
}

func (s *memoryStore) DeleteModule(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.modules[id]; ok {
		m.IsDeleted = true
		s.modules[id] = m
	}
	return nil
}

func (s *memoryStore) ModuleByID(id uint) (*courseModels.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modules[id]
	if !ok || m.IsDeleted {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *memoryStore) ModulesByCourse(courseID uint) ([]courseModels.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	modules := make([]courseModels.Module, 0)
	for _, m := range s.modules {
		if m.CourseID == courseID && !m.IsDeleted {
			modules = append(modules, m)
		}
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].OrderIndex < modules[j].OrderIndex })
	return modules, nil
}

func (s *memoryStore) CreateSection(sec *courseModels.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec.ID = s.allocID()
	sec.CreatedAt = time.Now()
	sec.UpdatedAt = sec.CreatedAt
	s.sections[sec.ID] = *sec
	return nil
}

func (s *memoryStore) UpdateSection(sec *courseModels.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec.UpdatedAt = time.Now()
	s.sections[sec.ID] = *sec
	return nil
}

func (s *memoryStore) DeleteSection(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec, ok := s.sections[id]; ok {
		sec.IsDeleted = true
		s.sections[id] = sec
	}
	return nil
}

func (s *memoryStore) SectionByID(id uint) (*courseModels.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.sections[id]
	if !ok || sec.IsDeleted {
		return nil, ErrNotFound
	}
	return &sec, nil
}

func (s *memoryStore) SectionsByModule(moduleID uint) ([]courseModels.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sections := make([]courseModels.Section, 0)
	for _, sec := range s.sections {
		if sec.ModuleID == moduleID && !sec.IsDeleted {
			sections = append(sections, sec)
		}
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].OrderIndex < sections[j].OrderIndex })
	return sections, nil
}

func (s *memoryStore) CountSectionsByCourse(courseID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, sec := range s.sections {
		if sec.CourseID == courseID && !sec.IsDeleted {
			total++
		}
	}
	return total, nil
}

// ---------- Enrollments ----------

func (s *memoryStore) CreateEnrollment(e *courseModels.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.allocID()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	s.enrollments[e.ID] = *e
	return nil
}

func (s *memoryStore) UpdateEnrollment(e *courseModels.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.UpdatedAt = time.Now()
	s.enrollments[e.ID] = *e
	return nil
}

func (s *memoryStore) DeleteEnrollment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.enrollments, id)
	return nil
}

func (s *memoryStore) EnrollmentByID(id uint) (*courseModels.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.enrollments[id]
	if !ok || e.IsDeleted {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *memoryStore) EnrollmentByUserAndCourse(userID, courseID uint) (*courseModels.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.enrollments {
		if e.UserID == userID && e.CourseID == courseID && !e.IsDeleted {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) EnrollmentsByUser(userID uint) ([]courseModels.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollments := make([]courseModels.Enrollment, 0)
	for _, e := range s.enrollments {
		if e.UserID == userID && !e.IsDeleted {
			if c, ok := s.courses[e.CourseID]; ok {
				e.Course = c
			}
			enrollments = append(enrollments, e)
		}
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].CreatedAt.After(enrollments[j].CreatedAt) })
	return enrollments, nil
}

// ---------- Section progress ----------

func (s *memoryStore) CreateSectionProgress(p *courseModels.SectionProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.allocID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.progress[p.ID] = *p
	return nil
}

func (s *memoryStore) UpdateSectionProgress(p *courseModels.SectionProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.UpdatedAt = time.Now()
	s.progress[p.ID] = *p
	return nil
}

func (s *memoryStore) SectionProgressByUserAndSection(userID, sectionID uint) (*courseModels.SectionProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.progress {
		if p.UserID == userID && p.SectionID == sectionID && !p.IsDeleted {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) SectionProgressByUserAndCourse(userID, courseID uint) ([]courseModels.SectionProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]courseModels.SectionProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID && p.CourseID == courseID && !p.IsDeleted {
			records = append(records, p)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].SectionID < records[j].SectionID })
	return records, nil
}

func (s *memoryStore) CountCompletedSections(userID, courseID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, p := range s.progress {
		if p.UserID == userID && p.CourseID == courseID && p.Completed && !p.IsDeleted {
			total++
		}
	}
	return total, nil
}

func (s *memoryStore) DeleteSectionProgressByUserAndCourse(userID, courseID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.progress {
		if p.UserID == userID && p.CourseID == courseID {
			delete(s.progress, id)
		}
	}
	return nil
}

func (s *memoryStore) DeleteSectionProgressBySection(sectionID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.progress {
		if p.SectionID == sectionID {
			p.IsDeleted = true
			s.progress[id] = p
		}
	}
	return nil
}

// ---------- Live-course registrations ----------

func (s *memoryStore) CreateRegistration(r *courseModels.LiveCourseRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.allocID()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	s.registrations[r.ID] = *r
	return nil
}

func (s *memoryStore) RegistrationsByUserAndCourse(userID, courseID uint) ([]courseModels.LiveCourseRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	regs := make([]courseModels.LiveCourseRegistration, 0)
	for _, r := range s.registrations {
		if r.UserID != nil && *r.UserID == userID && r.CourseID == courseID && !r.IsDeleted {
			regs = append(regs, r)
		}
	}
	return regs, nil
}

func (s *memoryStore) RegistrationsByCourse(courseID uint) ([]courseModels.LiveCourseRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	regs := make([]courseModels.LiveCourseRegistration, 0)
	for _, r := range s.registrations {
		if r.CourseID == courseID && !r.IsDeleted {
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].RegisteredAt.After(regs[j].RegisteredAt) })
	return regs, nil
}

// ---------- Site content ----------

func (s *memoryStore) CreateTeamMember(t *models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.allocID()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.team[t.ID] = *t
	return nil
}

func (s *memoryStore) UpdateTeamMember(t *models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.UpdatedAt = time.Now()
	s.team[t.ID] = *t
	return nil
}

func (s *memoryStore) DeleteTeamMember(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.team[id]; ok {
		t.IsDeleted = true
		s.team[id] = t
	}
	return nil
}

func (s *memoryStore) TeamMemberByID(id uint) (*models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.team[id]
	if !ok || t.IsDeleted {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *memoryStore) TeamMembers() ([]models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team := make([]models.TeamMember, 0)
	for _, t := range s.team {
		if !t.IsDeleted {
			team = append(team, t)
		}
	}
	sort.Slice(team, func(i, j int) bool { return team[i].OrderIndex < team[j].OrderIndex })
	return team, nil
}

func (s *memoryStore) CreateTestimonial(t *models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.allocID()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.testimonials[t.ID] = *t
	return nil
}

func (s *memoryStore) UpdateTestimonial(t *models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.UpdatedAt = time.Now()
	s.testimonials[t.ID] = *t
	return nil
}

func (s *memoryStore) DeleteTestimonial(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.testimonials[id]; ok {
		t.IsDeleted = true
		s.testimonials[id] = t
	}
	return nil
}

func (s *memoryStore) TestimonialByID(id uint) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.testimonials[id]
	if !ok || t.IsDeleted {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *memoryStore) Testimonials(publishedOnly bool) ([]models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	testimonials := make([]models.Testimonial, 0)
	for _, t := range s.testimonials {
		if t.IsDeleted {
			continue
		}
		if publishedOnly && !t.IsPublished {
			continue
		}
		testimonials = append(testimonials, t)
	}
	sort.Slice(testimonials, func(i, j int) bool { return testimonials[i].CreatedAt.After(testimonials[j].CreatedAt) })
	return testimonials, nil
}

func (s *memoryStore) CreateContactMessage(m *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.allocID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	s.contacts[m.ID] = *m
	return nil
}
