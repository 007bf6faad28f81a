// Package mocks holds testify mocks of the repository and service ports.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/internal/domain/project"
	"github.com/dimasadrian/portfolio/internal/domain/user"
)

type ObjectStorage struct{ mock.Mock }

func (m *ObjectStorage) Upload(ctx context.Context, bucket, name string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, bucket, name, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *ObjectStorage) Delete(ctx context.Context, bucket, name string) error {
	return m.Called(ctx, bucket, name).Error(0)
}

type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) Publish(ctx context.Context, payload service.ContentEventPayload) error {
	return m.Called(ctx, payload).Error(0)
}

type ArticleIndex struct{ mock.Mock }

func (m *ArticleIndex) Upsert(ctx context.Context, doc service.ArticleDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *ArticleIndex) Remove(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ArticleIndex) Search(ctx context.Context, query string, limit int) ([]service.ArticleDocument, error) {
	args := m.Called(ctx, query, limit)
	docs, _ := args.Get(0).([]service.ArticleDocument)
	return docs, args.Error(1)
}

type SessionStore struct{ mock.Mock }

func (m *SessionStore) LoginAttempts(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}

func (m *SessionStore) RegisterFailedLogin(ctx context.Context, email string, window time.Duration) (int, error) {
	args := m.Called(ctx, email, window)
	return args.Int(0), args.Error(1)
}

func (m *SessionStore) ResetLoginAttempts(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *SessionStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *SessionStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type ArticleRepository struct{ mock.Mock }

func (m *ArticleRepository) Save(ctx context.Context, a *article.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ArticleRepository) Update(ctx context.Context, a *article.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*article.Article)
	return a, args.Error(1)
}

func (m *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	args := m.Called(ctx, slug)
	a, _ := args.Get(0).(*article.Article)
	return a, args.Error(1)
}

func (m *ArticleRepository) List(ctx context.Context, limit int) ([]*article.Article, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*article.Article)
	return list, args.Error(1)
}

func (m *ArticleRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type ProjectRepository struct{ mock.Mock }

func (m *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*project.Project)
	return p, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, limit int) ([]*project.Project, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*project.Project)
	return list, args.Error(1)
}

func (m *ProjectRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type ActivityRepository struct{ mock.Mock }

func (m *ActivityRepository) Save(ctx context.Context, a *activity.Activity) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ActivityRepository) Update(ctx context.Context, a *activity.Activity) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*activity.Activity)
	return a, args.Error(1)
}

func (m *ActivityRepository) List(ctx context.Context, filter activity.Filter) ([]*activity.Activity, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*activity.Activity)
	return list, args.Error(1)
}

func (m *ActivityRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type ProfileRepository struct{ mock.Mock }

func (m *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *ProfileRepository) FindOwner(ctx context.Context) (*profile.Profile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *ProfileRepository) CreateIfAbsent(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type OrphanRepository struct{ mock.Mock }

func (m *OrphanRepository) Save(ctx context.Context, o *asset.OrphanedAsset) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrphanRepository) List(ctx context.Context, limit int) ([]*asset.OrphanedAsset, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*asset.OrphanedAsset)
	return list, args.Error(1)
}
