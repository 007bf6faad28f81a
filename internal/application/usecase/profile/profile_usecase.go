package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/application/usecase"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const entityType = "profile"

type ProfileUseCase struct {
	profileRepo profile.Repository
	media       *media.Manager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, m *media.Manager, events service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		media:       m,
		events:      events,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

// ExecuteGetPublicProfile returns the site owner's profile.
func (uc *ProfileUseCase) ExecuteGetPublicProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindOwner(ctx)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID  uuid.UUID
	FullName string
	Bio      string
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.FullName = usecase.Optional(input.FullName)
	p.Bio = usecase.Optional(input.Bio)

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventProfileUpdated, entityType, p.ID)
	return &GetProfileOutput{Profile: p}, nil
}

type UploadAvatarInput struct {
	OwnerID uuid.UUID
	File    media.StagedFile
}

// ExecuteUploadAvatar replaces the avatar: old object out, new one in, then
// the URL is saved.
func (uc *ProfileUseCase) ExecuteUploadAvatar(ctx context.Context, input UploadAvatarInput) (*GetProfileOutput, error) {
	if input.File.Reader == nil {
		return nil, apperror.NewInvalidInput("avatar file is required", nil)
	}

	p, err := uc.profileRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	url, err := uc.media.Apply(ctx, asset.BucketAvatars, asset.AvatarPrefix(p.ID), p.AvatarURL, media.ReplaceImage(input.File))
	if err != nil {
		return nil, err
	}
	p.AvatarURL = url

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.media.RecordOrphan(asset.BucketAvatars, *url, entityType, &p.ID, err)
		return nil, fmt.Errorf("save avatar url failed: %w", err)
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventProfileUpdated, entityType, p.ID)
	return &GetProfileOutput{Profile: p}, nil
}

// ExecuteDeleteAvatar removes the stored avatar (best effort) and clears the URL.
func (uc *ProfileUseCase) ExecuteDeleteAvatar(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if p.AvatarURL == nil {
		return &GetProfileOutput{Profile: p}, nil
	}

	p.AvatarURL, _ = uc.media.Apply(ctx, asset.BucketAvatars, asset.AvatarPrefix(p.ID), p.AvatarURL, media.ClearImage())

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("clear avatar failed: %w", err)
	}

	usecase.PublishAsync(uc.events, uc.logger, service.EventProfileUpdated, entityType, p.ID)
	return &GetProfileOutput{Profile: p}, nil
}
