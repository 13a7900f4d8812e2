package handler_test

import (
	"sort"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"
)

// fakeStorage is an in-memory storage.Storage used to exercise the full
// HTTP surface without Postgres.
type fakeStorage struct {
	users       map[string]*models.User
	departments map[uint]*models.Department
	complaints  map[uint]*models.Complaint

	nextComplaintID uint
	nextDeptID      uint

	published []models.ComplaintEvent
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:       make(map[string]*models.User),
		departments: make(map[uint]*models.Department),
		complaints:  make(map[uint]*models.Complaint),
	}
}

func (f *fakeStorage) CreateUser(user *models.User) error {
	if user.ID == "" {
		if err := user.BeforeCreate(nil); err != nil {
			return err
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeStorage) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) GetUserByID(id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeStorage) ListDepartments() ([]models.Department, error) {
	var depts []models.Department
	for _, d := range f.departments {
		depts = append(depts, *d)
	}
	sort.Slice(depts, func(i, j int) bool { return depts[i].ID < depts[j].ID })
	return depts, nil
}

func (f *fakeStorage) GetDepartmentByID(id uint) (*models.Department, error) {
	return f.departments[id], nil
}

func (f *fakeStorage) CreateDepartment(dept *models.Department) error {
	f.nextDeptID++
	dept.ID = f.nextDeptID
	f.departments[dept.ID] = dept
	return nil
}

func (f *fakeStorage) EnsureDepartment(name string) (*models.Department, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return d, nil
		}
	}
	dept := &models.Department{Name: name}
	if err := f.CreateDepartment(dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (f *fakeStorage) CreateComplaint(c *models.Complaint) error {
	f.nextComplaintID++
	c.ID = f.nextComplaintID
	f.complaints[c.ID] = c
	return nil
}

func (f *fakeStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	c, ok := f.complaints[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStorage) ListComplaints(scope policy.Scope) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range f.complaints {
		if scope.OwnerID != "" && c.UserID != scope.OwnerID {
			continue
		}
		if scope.DepartmentID != nil && c.DepartmentID != *scope.DepartmentID {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeStorage) UpdateComplaintStatus(id uint, status models.Status, remark string) error {
	c, ok := f.complaints[id]
	if !ok {
		return nil
	}
	c.Status = status
	if remark != "" {
		c.Remark = remark
	}
	return nil
}

func (f *fakeStorage) DeleteComplaint(id uint) error {
	delete(f.complaints, id)
	return nil
}

func (f *fakeStorage) ComplaintStatusCounts() (map[models.Status]int64, error) {
	counts := make(map[models.Status]int64)
	for _, c := range f.complaints {
		counts[c.Status]++
	}
	return counts, nil
}

func (f *fakeStorage) ComplaintDepartmentCounts() (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, c := range f.complaints {
		name := "unknown"
		if d, ok := f.departments[c.DepartmentID]; ok {
			name = d.Name
		}
		counts[name]++
	}
	return counts, nil
}

func (f *fakeStorage) PublishComplaintEvent(ev models.ComplaintEvent) error {
	f.published = append(f.published, ev)
	return nil
}
