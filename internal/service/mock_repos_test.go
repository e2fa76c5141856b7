package service

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
)

// ── test fixture ──

type mockRepos struct {
	users          *mockUserRepo
	roles          *mockRoleRepo
	courses        *mockCourseRepo
	modules        *mockModuleRepo
	moduleOnCourse *mockModuleOnCourseRepo
	enrollments    *mockEnrollmentRepo
	assignments    *mockAssignmentRepo
	submissions    *mockSubmissionRepo
	feedback       *mockFeedbackRepo
	videos         *mockVideoRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		users:          &mockUserRepo{rows: map[int]*model.User{}},
		roles:          &mockRoleRepo{},
		courses:        &mockCourseRepo{rows: map[int]*model.Course{}},
		modules:        &mockModuleRepo{rows: map[int]*model.Module{}},
		moduleOnCourse: &mockModuleOnCourseRepo{rows: map[int]*model.ModuleOnCourse{}},
		enrollments:    &mockEnrollmentRepo{rows: map[int]*model.Enrollment{}},
		assignments:    &mockAssignmentRepo{rows: map[int]*model.Assignment{}},
		submissions:    &mockSubmissionRepo{rows: map[int]*model.Submission{}},
		feedback:       &mockFeedbackRepo{rows: map[int]*model.Feedback{}},
		videos:         &mockVideoRepo{rows: map[int]*model.Video{}},
	}
	repo := &repository.Repository{
		User:           m.users,
		Role:           m.roles,
		Course:         m.courses,
		Module:         m.modules,
		ModuleOnCourse: m.moduleOnCourse,
		Enrollment:     m.enrollments,
		Assignment:     m.assignments,
		Submission:     m.submissions,
		Feedback:       m.feedback,
		Video:          m.videos,
	}
	return repo, m
}

// sortedKeys keeps List output in id order like the ORDER BY in the gorm repos
func sortedKeys[T any](rows map[int]T) []int {
	keys := make([]int, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	rows   map[int]*model.User
	nextID int
}

func (m *mockUserRepo) add(u *model.User) *model.User {
	m.nextID++
	u.UserID = m.nextID
	m.rows[u.UserID] = u
	return u
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*model.User, error) {
	if u, ok := m.rows[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUserNumber(_ context.Context, n int) (*model.User, error) {
	for _, u := range m.rows {
		if u.UserNumber == n {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockUserRepo) ListByIDs(_ context.Context, ids []int) ([]model.User, error) {
	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.rows[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	m.rows[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id int, role string) error {
	if u, ok := m.rows[id]; ok {
		u.UserRole = role
	}
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock RoleRepository ──

type mockRoleRepo struct{}

func (m *mockRoleRepo) List(_ context.Context) ([]model.Role, error) {
	return []model.Role{
		{RoleID: 1, RoleName: model.RoleAdmin},
		{RoleID: 2, RoleName: model.RoleLecture},
		{RoleID: 3, RoleName: model.RoleStudent},
	}, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	rows   map[int]*model.Course
	nextID int
}

func (m *mockCourseRepo) Create(_ context.Context, c *model.Course) error {
	m.nextID++
	c.CourseID = m.nextID
	cp := *c
	m.rows[c.CourseID] = &cp
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int) (*model.Course, error) {
	if c, ok := m.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockCourseRepo) Update(_ context.Context, c *model.Course) error {
	cp := *c
	m.rows[c.CourseID] = &cp
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock ModuleRepository ──

type mockModuleRepo struct {
	rows   map[int]*model.Module
	nextID int
}

func (m *mockModuleRepo) Create(_ context.Context, mod *model.Module) error {
	m.nextID++
	mod.ModuleID = m.nextID
	cp := *mod
	m.rows[mod.ModuleID] = &cp
	return nil
}

func (m *mockModuleRepo) GetByID(_ context.Context, id int) (*model.Module, error) {
	if mod, ok := m.rows[id]; ok {
		cp := *mod
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModuleRepo) List(_ context.Context) ([]model.Module, error) {
	out := make([]model.Module, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockModuleRepo) Update(_ context.Context, mod *model.Module) error {
	cp := *mod
	m.rows[mod.ModuleID] = &cp
	return nil
}

func (m *mockModuleRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock ModuleOnCourseRepository ──

type mockModuleOnCourseRepo struct {
	rows   map[int]*model.ModuleOnCourse
	nextID int
}

func (m *mockModuleOnCourseRepo) Create(_ context.Context, l *model.ModuleOnCourse) error {
	m.nextID++
	l.ID = m.nextID
	cp := *l
	m.rows[l.ID] = &cp
	return nil
}

func (m *mockModuleOnCourseRepo) GetByID(_ context.Context, id int) (*model.ModuleOnCourse, error) {
	if l, ok := m.rows[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModuleOnCourseRepo) List(_ context.Context) ([]model.ModuleOnCourse, error) {
	out := make([]model.ModuleOnCourse, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockModuleOnCourseRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	rows   map[int]*model.Enrollment
	nextID int
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	m.nextID++
	e.EnrollmentID = m.nextID
	cp := *e
	m.rows[e.EnrollmentID] = &cp
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id int) (*model.Enrollment, error) {
	if e, ok := m.rows[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) List(_ context.Context) ([]model.Enrollment, error) {
	out := make([]model.Enrollment, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	rows   map[int]*model.Assignment
	nextID int
	err    error
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	a.AssignmentID = m.nextID
	cp := *a
	m.rows[a.AssignmentID] = &cp
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id int) (*model.Assignment, error) {
	if a, ok := m.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context) ([]model.Assignment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Assignment, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockAssignmentRepo) ListByModule(_ context.Context, moduleID int) ([]model.Assignment, error) {
	out := make([]model.Assignment, 0)
	for _, k := range sortedKeys(m.rows) {
		if m.rows[k].ModuleID == moduleID {
			out = append(out, *m.rows[k])
		}
	}
	return out, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, a *model.Assignment) error {
	cp := *a
	m.rows[a.AssignmentID] = &cp
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock SubmissionRepository ──

type mockSubmissionRepo struct {
	rows   map[int]*model.Submission
	nextID int
}

func (m *mockSubmissionRepo) Create(_ context.Context, s *model.Submission) error {
	m.nextID++
	s.SubmissionID = m.nextID
	cp := *s
	m.rows[s.SubmissionID] = &cp
	return nil
}

func (m *mockSubmissionRepo) GetByID(_ context.Context, id int) (*model.Submission, error) {
	if s, ok := m.rows[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubmissionRepo) List(_ context.Context, assignmentID *int) ([]model.Submission, error) {
	out := make([]model.Submission, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		if assignmentID != nil && m.rows[k].AssignmentID != *assignmentID {
			continue
		}
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockSubmissionRepo) ListByVideoID(_ context.Context, videoID int) ([]model.Submission, error) {
	out := make([]model.Submission, 0)
	for _, k := range sortedKeys(m.rows) {
		if v := m.rows[k].VideoID; v != nil && *v == videoID {
			out = append(out, *m.rows[k])
		}
	}
	return out, nil
}

func (m *mockSubmissionRepo) Update(_ context.Context, s *model.Submission) error {
	cp := *s
	m.rows[s.SubmissionID] = &cp
	return nil
}

func (m *mockSubmissionRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock FeedbackRepository ──

type mockFeedbackRepo struct {
	rows      map[int]*model.Feedback
	nextID    int
	lastLimit int
}

func (m *mockFeedbackRepo) Create(_ context.Context, f *model.Feedback) error {
	m.nextID++
	f.FeedbackID = m.nextID
	cp := *f
	m.rows[f.FeedbackID] = &cp
	return nil
}

func (m *mockFeedbackRepo) GetByID(_ context.Context, id int) (*model.Feedback, error) {
	if f, ok := m.rows[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeedbackRepo) GetBySubmissionID(_ context.Context, submissionID int) (*model.Feedback, error) {
	for _, f := range m.rows {
		if f.SubmissionID == submissionID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeedbackRepo) List(_ context.Context, limit int) ([]model.Feedback, error) {
	m.lastLimit = limit
	out := make([]model.Feedback, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		if len(out) == limit {
			break
		}
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockFeedbackRepo) ListBySubmissionIDs(_ context.Context, ids []int) ([]model.Feedback, error) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]model.Feedback, 0)
	for _, k := range sortedKeys(m.rows) {
		if want[m.rows[k].SubmissionID] {
			out = append(out, *m.rows[k])
		}
	}
	return out, nil
}

func (m *mockFeedbackRepo) Update(_ context.Context, f *model.Feedback) error {
	cp := *f
	m.rows[f.FeedbackID] = &cp
	return nil
}

func (m *mockFeedbackRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

// ── Mock VideoRepository ──

type mockVideoRepo struct {
	rows      map[int]*model.Video
	nextID    int
	createErr error
}

func (m *mockVideoRepo) Create(_ context.Context, v *model.Video) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	v.VideoID = m.nextID
	cp := *v
	m.rows[v.VideoID] = &cp
	return nil
}

func (m *mockVideoRepo) GetByID(_ context.Context, id int) (*model.Video, error) {
	if v, ok := m.rows[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVideoRepo) List(_ context.Context) ([]model.Video, error) {
	out := make([]model.Video, 0, len(m.rows))
	for _, k := range sortedKeys(m.rows) {
		out = append(out, *m.rows[k])
	}
	return out, nil
}

func (m *mockVideoRepo) Delete(_ context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

func (m *mockVideoRepo) ExistsByBlobName(_ context.Context, name string) (bool, error) {
	for _, v := range m.rows {
		if strings.Contains(v.VideoURL, "/"+name) {
			return true, nil
		}
	}
	return false, nil
}

// ── fixtures ──

func seedUser(m *mockRepos, number int, role, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return m.users.add(&model.User{
		UserNumber:   number,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Email:        "user@test.nwu.ac.za",
		UserRole:     role,
	})
}

// callerOf the principal a request from u would carry
func callerOf(u *model.User) Caller {
	return Caller{UserID: u.UserID, Role: u.UserRole}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
