package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/repositories"
)

// Fakes hand out copies so a service only changes stored rows through Update.

type mockUserStore struct {
	users  map[int64]models.User
	nextID int64
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[int64]models.User), nextID: 1}
}

func (m *mockUserStore) GetAllUsers(_ context.Context) ([]*models.User, error) {
	result := make([]*models.User, 0, len(m.users))
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			result = append(result, &u)
		}
	}
	return result, nil
}

func (m *mockUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (m *mockUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return 0, repositories.ErrDuplicate
		}
	}
	row := *user
	row.ID = m.nextID
	m.users[row.ID] = row
	m.nextID++
	return row.ID, nil
}

func (m *mockUserStore) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, u := range m.users {
		if u.ID != user.ID && u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserStore) DeleteUser(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mockProfileStore struct {
	profiles map[int64]models.Profile
	nextID   int64
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[int64]models.Profile), nextID: 1}
}

func (m *mockProfileStore) GetAllProfiles(_ context.Context) ([]*models.Profile, error) {
	result := make([]*models.Profile, 0, len(m.profiles))
	for id := int64(1); id < m.nextID; id++ {
		if p, ok := m.profiles[id]; ok {
			result = append(result, &p)
		}
	}
	return result, nil
}

func (m *mockProfileStore) GetProfileByID(_ context.Context, id int64) (*models.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (m *mockProfileStore) CreateProfile(_ context.Context, profile *models.Profile) (int64, error) {
	row := *profile
	row.ID = m.nextID
	m.profiles[row.ID] = row
	m.nextID++
	return row.ID, nil
}

func (m *mockProfileStore) UpdateProfile(_ context.Context, profile *models.Profile) error {
	if _, ok := m.profiles[profile.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *mockProfileStore) DeleteProfile(_ context.Context, id int64) error {
	if _, ok := m.profiles[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.profiles, id)
	return nil
}

type mockTeacherStore struct {
	teachers map[int64]models.Teacher
	nextID   int64
}

func newMockTeacherStore() *mockTeacherStore {
	return &mockTeacherStore{teachers: make(map[int64]models.Teacher), nextID: 1}
}

func (m *mockTeacherStore) GetAllTeachers(_ context.Context) ([]*models.Teacher, error) {
	result := make([]*models.Teacher, 0, len(m.teachers))
	for id := int64(1); id < m.nextID; id++ {
		if t, ok := m.teachers[id]; ok {
			result = append(result, &t)
		}
	}
	return result, nil
}

func (m *mockTeacherStore) GetTeacherByID(_ context.Context, id int64) (*models.Teacher, error) {
	t, ok := m.teachers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (m *mockTeacherStore) CreateTeacher(_ context.Context, teacher *models.Teacher) (int64, error) {
	row := *teacher
	row.ID = m.nextID
	m.teachers[row.ID] = row
	m.nextID++
	return row.ID, nil
}

func (m *mockTeacherStore) UpdateTeacher(_ context.Context, teacher *models.Teacher) error {
	if _, ok := m.teachers[teacher.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.teachers[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherStore) DeleteTeacher(_ context.Context, id int64) error {
	t, ok := m.teachers[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if len(t.Courses) > 0 {
		return repositories.ErrStillReferenced
	}
	delete(m.teachers, id)
	return nil
}

type mockStudentStore struct {
	students map[int64]models.Student
	nextID   int64
}

func newMockStudentStore() *mockStudentStore {
	return &mockStudentStore{students: make(map[int64]models.Student), nextID: 1}
}

func (m *mockStudentStore) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	result := make([]*models.Student, 0, len(m.students))
	for id := int64(1); id < m.nextID; id++ {
		if s, ok := m.students[id]; ok {
			result = append(result, &s)
		}
	}
	return result, nil
}

func (m *mockStudentStore) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (m *mockStudentStore) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	row := *student
	row.ID = m.nextID
	m.students[row.ID] = row
	m.nextID++
	return row.ID, nil
}

func (m *mockStudentStore) UpdateStudent(_ context.Context, student *models.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.students[student.ID] = *student
	return nil
}

func (m *mockStudentStore) DeleteStudent(_ context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.students, id)
	return nil
}
