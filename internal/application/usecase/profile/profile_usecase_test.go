package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dimasadrian/portfolio/internal/application/mocks"
	"github.com/dimasadrian/portfolio/internal/application/usecase/media"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type ProfileUseCaseSuite struct {
	suite.Suite
	repo    *mocks.ProfileRepository
	storage *mocks.ObjectStorage
	events  *mocks.EventPublisher
	uc      *ProfileUseCase
	ownerID uuid.UUID
}

func (s *ProfileUseCaseSuite) SetupTest() {
	s.repo = new(mocks.ProfileRepository)
	s.storage = new(mocks.ObjectStorage)
	s.events = new(mocks.EventPublisher)
	s.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.ownerID = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	manager := media.NewManager(s.storage, s.events, logger.NewNop()).
		WithClock(func() time.Time { return time.UnixMilli(42) })
	s.uc = NewProfileUseCase(s.repo, manager, s.events, logger.NewNop())
}

func (s *ProfileUseCaseSuite) TestUpdateProfileTrimsFields() {
	s.repo.On("FindByID", mock.Anything, s.ownerID).Return(&profile.Profile{ID: s.ownerID}, nil)
	s.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	out, err := s.uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		OwnerID: s.ownerID, FullName: "  Dimas  ", Bio: "Backend dev ",
	})

	s.Require().NoError(err)
	s.Equal("Dimas", *out.Profile.FullName)
	s.Equal("Backend dev", *out.Profile.Bio)
}

func (s *ProfileUseCaseSuite) TestUpdateProfileStoresBlankFieldsAsNull() {
	name, bio := "Dimas", "Backend dev"
	s.repo.On("FindByID", mock.Anything, s.ownerID).
		Return(&profile.Profile{ID: s.ownerID, FullName: &name, Bio: &bio}, nil)
	s.repo.On("Update", mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool {
		return p.FullName == nil && p.Bio == nil
	})).Return(nil)

	out, err := s.uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		OwnerID: s.ownerID, FullName: "", Bio: "   ",
	})

	s.Require().NoError(err)
	s.Nil(out.Profile.FullName)
	s.Nil(out.Profile.Bio)
	s.repo.AssertExpectations(s.T())
}

func (s *ProfileUseCaseSuite) TestUploadAvatarUsesOwnerPrefix() {
	old := "https://cdn.example.com/avatars/avatar-old.png"
	s.repo.On("FindByID", mock.Anything, s.ownerID).Return(&profile.Profile{ID: s.ownerID, AvatarURL: &old}, nil)
	s.storage.On("Delete", mock.Anything, "avatars", "avatar-old.png").Return(nil)
	s.storage.On("Upload", mock.Anything, "avatars", "avatar-11111111-2222-3333-4444-555555555555-42.png", mock.Anything, "image/png").
		Return("https://cdn.example.com/avatars/new.png", nil)
	s.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	out, err := s.uc.ExecuteUploadAvatar(context.Background(), UploadAvatarInput{
		OwnerID: s.ownerID,
		File:    media.StagedFile{Filename: "me.png", ContentType: "image/png", Reader: strings.NewReader("png")},
	})

	s.Require().NoError(err)
	s.Equal("https://cdn.example.com/avatars/new.png", *out.Profile.AvatarURL)
	s.storage.AssertExpectations(s.T())
}

func (s *ProfileUseCaseSuite) TestUploadAvatarFailureKeepsProfile() {
	s.repo.On("FindByID", mock.Anything, s.ownerID).Return(&profile.Profile{ID: s.ownerID}, nil)
	s.storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("denied"))

	_, err := s.uc.ExecuteUploadAvatar(context.Background(), UploadAvatarInput{
		OwnerID: s.ownerID,
		File:    media.StagedFile{Filename: "me.png", Reader: strings.NewReader("png")},
	})

	s.Error(err)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ProfileUseCaseSuite) TestDeleteAvatarToleratesStorageFailure() {
	url := "https://cdn.example.com/avatars/avatar-x-1.png"
	s.repo.On("FindByID", mock.Anything, s.ownerID).Return(&profile.Profile{ID: s.ownerID, AvatarURL: &url}, nil)
	s.storage.On("Delete", mock.Anything, "avatars", "avatar-x-1.png").Return(errors.New("forbidden"))
	s.repo.On("Update", mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool { return p.AvatarURL == nil })).Return(nil)

	out, err := s.uc.ExecuteDeleteAvatar(context.Background(), GetProfileInput{OwnerID: s.ownerID})

	s.Require().NoError(err)
	s.Nil(out.Profile.AvatarURL)
	s.repo.AssertExpectations(s.T())
}

func (s *ProfileUseCaseSuite) TestDeleteAvatarWithoutAvatarIsNoop() {
	s.repo.On("FindByID", mock.Anything, s.ownerID).Return(&profile.Profile{ID: s.ownerID}, nil)

	_, err := s.uc.ExecuteDeleteAvatar(context.Background(), GetProfileInput{OwnerID: s.ownerID})

	s.NoError(err)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func TestProfileUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ProfileUseCaseSuite))
}
