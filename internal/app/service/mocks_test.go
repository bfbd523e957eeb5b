package service

import (
	"context"

	"golden9_club/internal/domain/model"
)

// --- Mocks ---

type mockUserRepo struct {
	createFn       func(ctx context.Context, user *model.User) error
	findByEmailFn  func(ctx context.Context, email string) (*model.User, error)
	findByIDFn     func(ctx context.Context, id string) (*model.User, error)
	listFn         func(ctx context.Context) ([]model.User, error)
	listByPointsFn func(ctx context.Context, limit int) ([]model.User, error)
	updateFn       func(ctx context.Context, user *model.User) error
	deleteFn       func(ctx context.Context, id string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserRepo) ListByPoints(ctx context.Context, limit int) ([]model.User, error) {
	return m.listByPointsFn(ctx, limit)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockEventRepo struct {
	createFn     func(ctx context.Context, event *model.Event) error
	findByIDFn   func(ctx context.Context, id string) (*model.Event, error)
	findBySlugFn func(ctx context.Context, slug string) (*model.Event, error)
	listFn       func(ctx context.Context) ([]model.Event, error)
	updateFn     func(ctx context.Context, event *model.Event) error
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockEventRepo) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return m.findBySlugFn(ctx, slug)
}

func (m *mockEventRepo) List(ctx context.Context) ([]model.Event, error) {
	return m.listFn(ctx)
}

func (m *mockEventRepo) Update(ctx context.Context, event *model.Event) error {
	return m.updateFn(ctx, event)
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockProductRepo struct {
	createFn   func(ctx context.Context, product *model.Product) error
	findByIDFn func(ctx context.Context, id string) (*model.Product, error)
	listFn     func(ctx context.Context) ([]model.Product, error)
	updateFn   func(ctx context.Context, product *model.Product) error
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockProductRepo) Create(ctx context.Context, product *model.Product) error {
	if m.createFn != nil {
		return m.createFn(ctx, product)
	}
	return nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return m.listFn(ctx)
}

func (m *mockProductRepo) Update(ctx context.Context, product *model.Product) error {
	return m.updateFn(ctx, product)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockScoreSync struct {
	setCalls    []string
	removeCalls []string
}

func (m *mockScoreSync) SetScore(ctx context.Context, user *model.User) {
	m.setCalls = append(m.setCalls, user.ID)
}

func (m *mockScoreSync) RemoveScore(ctx context.Context, userID string) {
	m.removeCalls = append(m.removeCalls, userID)
}
