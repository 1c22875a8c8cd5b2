package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type memUsers struct{ byID map[string]*entity.User }

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range m.byID {
		if x.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	c := *u
	m.byID[u.ID] = &c
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := m.byID[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *u
	m.byID[u.ID] = &c
	return nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memProfiles struct {
	byUser map[string]*entity.Profile
	users  *memUsers
	filter repository.ProfileFilter
}

func newMemProfiles(users *memUsers) *memProfiles {
	return &memProfiles{byUser: map[string]*entity.Profile{}, users: users}
}

func (m *memProfiles) Create(_ context.Context, p *entity.Profile) error {
	if _, ok := m.byUser[p.UserID]; ok {
		return domain.ErrProfileExists
	}
	c := *p
	m.byUser[p.UserID] = &c
	return nil
}

func (m *memProfiles) FindByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	if _, alive := m.users.byID[userID]; !alive {
		return nil, nil
	}
	if p, ok := m.byUser[userID]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (m *memProfiles) Update(_ context.Context, p *entity.Profile) error {
	old, ok := m.byUser[p.UserID]
	if !ok {
		return domain.ErrNotFound
	}
	c := *p
	c.HireDate = old.HireDate
	m.byUser[p.UserID] = &c
	return nil
}

func (m *memProfiles) List(_ context.Context, f repository.ProfileFilter) ([]*entity.Staff, error) {
	m.filter = f
	out := []*entity.Staff{}
	for uid, p := range m.byUser {
		u, ok := m.users.byID[uid]
		if !ok {
			continue
		}
		if f.Role != nil && p.Role != *f.Role {
			continue
		}
		out = append(out, &entity.Staff{User: *u, Profile: *p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].User.Username < out[j].User.Username })
	return out, nil
}

type fakeStaffTx struct {
	users    *memUsers
	profiles *memProfiles
}

func (f *fakeStaffTx) RunStaff(_ context.Context, fn func(repository.UserRepository, repository.ProfileRepository) error) error {
	return fn(f.users, f.profiles)
}

type memProducts struct {
	byID   map[string]*entity.Product
	filter repository.ProductFilter
}

func newMemProducts() *memProducts { return &memProducts{byID: map[string]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	c := *p
	m.byID[p.ID] = &c
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := m.byID[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (m *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return m.GetByID(ctx, id)
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	m.byID[p.ID] = &c
	return nil
}

func (m *memProducts) UpdateStock(_ context.Context, id string, stock int) error {
	p, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (m *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	m.filter = f
	out := []*entity.Product{}
	for _, p := range m.byID {
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memCustomers struct{ byID map[string]*entity.Customer }

func newMemCustomers() *memCustomers { return &memCustomers{byID: map[string]*entity.Customer{}} }

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	x := *c
	m.byID[c.ID] = &x
	return nil
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if c, ok := m.byID[id]; ok {
		x := *c
		return &x, nil
	}
	return nil, nil
}

func (m *memCustomers) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range m.byID {
		if c.Email == email {
			x := *c
			return &x, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) List(_ context.Context, _, _ int) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	x := *c
	m.byID[c.ID] = &x
	return nil
}

func (m *memCustomers) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memCategories struct{ byID map[string]*entity.Category }

func newMemCategories() *memCategories { return &memCategories{byID: map[string]*entity.Category{}} }

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	x := *c
	m.byID[c.ID] = &x
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := m.byID[id]; ok {
		x := *c
		return &x, nil
	}
	return nil, nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	x := *c
	m.byID[c.ID] = &x
	return nil
}

func (m *memCategories) List(_ context.Context, limit, _ int) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range m.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}
