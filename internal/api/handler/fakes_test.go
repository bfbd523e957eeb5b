package handler

import (
	"context"
	"fmt"
	"sort"

	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"
)

// In-memory repository fakes backing the handler tests.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (f *fakeUserRepo) ListByPoints(ctx context.Context, limit int) ([]model.User, error) {
	users := []model.User{}
	for _, u := range f.users {
		if u.IsActive {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Points > users[j].Points })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeEventRepo struct {
	events map[string]*model.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*model.Event{}}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *model.Event) error {
	e := *event
	f.events[event.ID] = &e
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	for _, e := range f.events {
		if e.Slug == slug {
			copied := *e
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	for _, e := range f.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].CreatedAt.After(events[j].CreatedAt) })
	return events, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *model.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return common.ErrNotFound
	}
	e := *event
	f.events[event.ID] = &e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*model.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *model.Product) error {
	p := *product
	f.products[product.ID] = &p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	for _, p := range f.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *model.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return common.ErrNotFound
	}
	p := *product
	f.products[product.ID] = &p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.products, id)
	return nil
}
