package services

import (
	"context"
	"fmt"

	"github.com/rupp/ams-api/internal/app/auth"
	"github.com/rupp/ams-api/internal/app/models"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests. They mirror the
// behavior of the pgx repositories, including the not-found sentinels.

func adminID() auth.Identity {
	return auth.Identity{UserID: 1, Email: "admin@example.com", Roles: []models.RoleType{models.RoleAdmin}}
}

func teacherID(userID int64) auth.Identity {
	return auth.Identity{UserID: userID, Email: fmt.Sprintf("t%d@example.com", userID), Roles: []models.RoleType{models.RoleTeacher}}
}

func studentID(userID int64) auth.Identity {
	return auth.Identity{UserID: userID, Email: fmt.Sprintf("s%d@example.com", userID), Roles: []models.RoleType{models.RoleStudent}}
}

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64

	// forced errors, used to simulate constraint violations and races
	// the pre-checks cannot see
	createErr error
	updateErr error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[int64]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
		if u.ID > s.nextID {
			s.nextID = u.ID
		}
	}
	return s
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetAll(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(ctx context.Context, user *models.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.users[user.ID]; !ok {
		return apperrors.ErrUpdateFailed
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) CountByEmail(ctx context.Context, email string, excludeID int64) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.Email == email && u.ID != excludeID {
			n++
		}
	}
	return n, nil
}

type fakeProfileStore struct {
	profiles map[int64]*models.Profile
	nextID   int64
}

func newFakeProfileStore(profiles ...*models.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: make(map[int64]*models.Profile)}
	for _, p := range profiles {
		s.profiles[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

func (s *fakeProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	s.nextID++
	profile.ID = s.nextID
	s.profiles[profile.ID] = profile
	return nil
}

func (s *fakeProfileStore) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return p, nil
}

func (s *fakeProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (s *fakeProfileStore) GetAll(ctx context.Context, excludeAdminOwned bool, ownUserID int64) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if excludeAdminOwned && p.IsAdminOwned && p.UserID != ownUserID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProfileStore) Update(ctx context.Context, profile *models.Profile) error {
	if _, ok := s.profiles[profile.ID]; !ok {
		return apperrors.ErrUpdateFailed
	}
	s.profiles[profile.ID] = profile
	return nil
}

func (s *fakeProfileStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.profiles[id]; !ok {
		return apperrors.ErrProfileNotFound
	}
	delete(s.profiles, id)
	return nil
}

func (s *fakeProfileStore) CountByCardID(ctx context.Context, cardID string, excludeID int64) (int64, error) {
	var n int64
	for _, p := range s.profiles {
		if p.CardID == cardID && p.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (s *fakeProfileStore) CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error) {
	var n int64
	for _, p := range s.profiles {
		if p.UserID == userID && p.ID != excludeID {
			n++
		}
	}
	return n, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64

	createErr error
	updateErr error
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[int64]*models.Student)}
	for _, st := range students {
		s.students[st.ID] = st
		if st.ID > s.nextID {
			s.nextID = st.ID
		}
	}
	return s
}

func (s *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	student.ID = s.nextID
	s.students[student.ID] = student
	return nil
}

func (s *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (s *fakeStudentStore) GetByStudentNo(ctx context.Context, studentNo string) (*models.Student, error) {
	for _, st := range s.students {
		if st.StudentNo == studentNo {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetByStudentCardID(ctx context.Context, cardID string) (*models.Student, error) {
	for _, st := range s.students {
		if st.StudentCardID == cardID {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	for _, st := range s.students {
		if st.UserID == userID {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	return out, nil
}

func (s *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.students[student.ID]; !ok {
		return apperrors.ErrUpdateFailed
	}
	s.students[student.ID] = student
	return nil
}

func (s *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

func (s *fakeStudentStore) CountByStudentNo(ctx context.Context, studentNo string, excludeID int64) (int64, error) {
	var n int64
	for _, st := range s.students {
		if st.StudentNo == studentNo && st.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (s *fakeStudentStore) CountByStudentCardID(ctx context.Context, cardID string, excludeID int64) (int64, error) {
	var n int64
	for _, st := range s.students {
		if st.StudentCardID == cardID && st.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (s *fakeStudentStore) CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error) {
	var n int64
	for _, st := range s.students {
		if st.UserID == userID && st.ID != excludeID {
			n++
		}
	}
	return n, nil
}

type fakeTeacherStore struct {
	teachers map[int64]*models.Teacher
	nextID   int64

	createErr error
	updateErr error
}

func newFakeTeacherStore(teachers ...*models.Teacher) *fakeTeacherStore {
	s := &fakeTeacherStore{teachers: make(map[int64]*models.Teacher)}
	for _, te := range teachers {
		s.teachers[te.ID] = te
		if te.ID > s.nextID {
			s.nextID = te.ID
		}
	}
	return s
}

func (s *fakeTeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	teacher.ID = s.nextID
	s.teachers[teacher.ID] = teacher
	return nil
}

func (s *fakeTeacherStore) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	te, ok := s.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return te, nil
}

func (s *fakeTeacherStore) GetByEmployeeCode(ctx context.Context, employeeCode string) (*models.Teacher, error) {
	for _, te := range s.teachers {
		if te.EmployeeCode == employeeCode {
			return te, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (s *fakeTeacherStore) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	for _, te := range s.teachers {
		if te.UserID == userID {
			return te, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (s *fakeTeacherStore) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0, len(s.teachers))
	for _, te := range s.teachers {
		out = append(out, te)
	}
	return out, nil
}

func (s *fakeTeacherStore) GetByStatus(ctx context.Context, status models.TeacherStatus) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0)
	for _, te := range s.teachers {
		if te.Status == status {
			out = append(out, te)
		}
	}
	return out, nil
}

func (s *fakeTeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.teachers[teacher.ID]; !ok {
		return apperrors.ErrUpdateFailed
	}
	s.teachers[teacher.ID] = teacher
	return nil
}

func (s *fakeTeacherStore) UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error {
	te, ok := s.teachers[id]
	if !ok {
		return apperrors.ErrUpdateFailed
	}
	te.Status = status
	return nil
}

func (s *fakeTeacherStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.teachers[id]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	delete(s.teachers, id)
	return nil
}

func (s *fakeTeacherStore) CountByEmployeeCode(ctx context.Context, employeeCode string, excludeID int64) (int64, error) {
	var n int64
	for _, te := range s.teachers {
		if te.EmployeeCode == employeeCode && te.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (s *fakeTeacherStore) CountByUserID(ctx context.Context, userID, excludeID int64) (int64, error) {
	var n int64
	for _, te := range s.teachers {
		if te.UserID == userID && te.ID != excludeID {
			n++
		}
	}
	return n, nil
}

type fakeClassStore struct {
	classes map[int64]*models.Class
	nextID  int64
}

func newFakeClassStore(classes ...*models.Class) *fakeClassStore {
	s := &fakeClassStore{classes: make(map[int64]*models.Class)}
	for _, c := range classes {
		s.classes[c.ID] = c
		if c.ID > s.nextID {
			s.nextID = c.ID
		}
	}
	return s
}

func (s *fakeClassStore) Create(ctx context.Context, class *models.Class) error {
	s.nextID++
	class.ID = s.nextID
	s.classes[class.ID] = class
	return nil
}

func (s *fakeClassStore) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	c, ok := s.classes[id]
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return c, nil
}

func (s *fakeClassStore) GetByName(ctx context.Context, name string) (*models.Class, error) {
	for _, c := range s.classes {
		if c.ClassName == name {
			return c, nil
		}
	}
	return nil, apperrors.ErrClassNotFound
}

func (s *fakeClassStore) GetAll(ctx context.Context, gradeLevel, academicYear string) ([]*models.Class, error) {
	out := make([]*models.Class, 0, len(s.classes))
	for _, c := range s.classes {
		if gradeLevel != "" && c.GradeLevel != gradeLevel {
			continue
		}
		if academicYear != "" && c.AcademicYear != academicYear {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeClassStore) Update(ctx context.Context, class *models.Class) error {
	if _, ok := s.classes[class.ID]; !ok {
		return apperrors.ErrUpdateFailed
	}
	s.classes[class.ID] = class
	return nil
}

func (s *fakeClassStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.classes[id]; !ok {
		return apperrors.ErrClassNotFound
	}
	delete(s.classes, id)
	return nil
}

func (s *fakeClassStore) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	var n int64
	for _, c := range s.classes {
		if c.ClassName == name && c.ID != excludeID {
			n++
		}
	}
	return n, nil
}

type fakeSubjectStore struct {
	subjects map[int64]*models.Subject
	nextID   int64
}

func newFakeSubjectStore(subjects ...*models.Subject) *fakeSubjectStore {
	s := &fakeSubjectStore{subjects: make(map[int64]*models.Subject)}
	for _, su := range subjects {
		s.subjects[su.ID] = su
		if su.ID > s.nextID {
			s.nextID = su.ID
		}
	}
	return s
}

func (s *fakeSubjectStore) Create(ctx context.Context, subject *models.Subject) error {
	s.nextID++
	subject.ID = s.nextID
	s.subjects[subject.ID] = subject
	return nil
}

func (s *fakeSubjectStore) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	su, ok := s.subjects[id]
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return su, nil
}

func (s *fakeSubjectStore) GetByName(ctx context.Context, name string) (*models.Subject, error) {
	for _, su := range s.subjects {
		if su.SubjectName == name {
			return su, nil
		}
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (s *fakeSubjectStore) GetAll(ctx context.Context, groupLevel string) ([]*models.Subject, error) {
	out := make([]*models.Subject, 0, len(s.subjects))
	for _, su := range s.subjects {
		if groupLevel != "" && su.GroupLevel != groupLevel {
			continue
		}
		out = append(out, su)
	}
	return out, nil
}

func (s *fakeSubjectStore) Update(ctx context.Context, subject *models.Subject) error {
	if _, ok := s.subjects[subject.ID]; !ok {
		return apperrors.ErrUpdateFailed
	}
	s.subjects[subject.ID] = subject
	return nil
}

func (s *fakeSubjectStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.subjects[id]; !ok {
		return apperrors.ErrSubjectNotFound
	}
	delete(s.subjects, id)
	return nil
}

func (s *fakeSubjectStore) CountByName(ctx context.Context, name string, excludeID int64) (int64, error) {
	var n int64
	for _, su := range s.subjects {
		if su.SubjectName == name && su.ID != excludeID {
			n++
		}
	}
	return n, nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(user *models.User) (string, int, error) {
	return fmt.Sprintf("token-for-%d", user.ID), 3600, nil
}
