package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dimasadrian/portfolio/internal/application/mocks"
	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const oldURL = "https://cdn.example.com/articles/article-1.png"

type ManagerSuite struct {
	suite.Suite
	storage *mocks.ObjectStorage
	events  *mocks.EventPublisher
	manager *Manager
	order   []string
}

func (s *ManagerSuite) SetupTest() {
	s.storage = new(mocks.ObjectStorage)
	s.events = new(mocks.EventPublisher)
	s.order = nil
	s.manager = NewManager(s.storage, s.events, logger.NewNop()).
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) })
}

func (s *ManagerSuite) staged() StagedFile {
	return StagedFile{Filename: "cover.PNG", ContentType: "image/png", Reader: strings.NewReader("img")}
}

func (s *ManagerSuite) TestUploadNamesObjectWithTimestamp() {
	s.storage.On("Upload", mock.Anything, "articles", "article-1700000000000.png", mock.Anything, "image/png").
		Return("https://cdn.example.com/articles/article-1700000000000.png", nil)

	url, err := s.manager.Upload(context.Background(), asset.BucketArticles, asset.PrefixArticle, s.staged())
	s.Require().NoError(err)
	s.Equal("https://cdn.example.com/articles/article-1700000000000.png", url)
}

func (s *ManagerSuite) TestRemoveIgnoresMissingObject() {
	s.storage.On("Delete", mock.Anything, "articles", "article-1.png").Return(asset.ErrObjectNotFound)
	s.NoError(s.manager.Remove(context.Background(), asset.BucketArticles, oldURL))
}

func (s *ManagerSuite) TestRemoveIgnoresUnparsableURL() {
	s.NoError(s.manager.Remove(context.Background(), asset.BucketArticles, "https://cdn.example.com/"))
	s.storage.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManagerSuite) TestRemoveReturnsOtherErrors() {
	s.storage.On("Delete", mock.Anything, "articles", "article-1.png").Return(errors.New("boom"))
	s.Error(s.manager.Remove(context.Background(), asset.BucketArticles, oldURL))
}

func (s *ManagerSuite) TestApplyKeep() {
	current := oldURL
	got, err := s.manager.Apply(context.Background(), asset.BucketArticles, asset.PrefixArticle, &current, KeepImage())
	s.Require().NoError(err)
	s.Equal(&current, got)
	s.storage.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManagerSuite) TestApplyClearRemovesAndReturnsNil() {
	s.storage.On("Delete", mock.Anything, "articles", "article-1.png").Return(errors.New("storage down"))

	current := oldURL
	got, err := s.manager.Apply(context.Background(), asset.BucketArticles, asset.PrefixArticle, &current, ClearImage())
	s.Require().NoError(err)
	s.Nil(got)
	s.storage.AssertExpectations(s.T())
}

func (s *ManagerSuite) TestApplyReplaceRemovesOldBeforeUpload() {
	s.storage.On("Delete", mock.Anything, "articles", "article-1.png").
		Run(func(mock.Arguments) { s.order = append(s.order, "delete") }).
		Return(nil)
	s.storage.On("Upload", mock.Anything, "articles", "article-1700000000000.png", mock.Anything, "image/png").
		Run(func(mock.Arguments) { s.order = append(s.order, "upload") }).
		Return("https://cdn.example.com/articles/article-1700000000000.png", nil)

	current := oldURL
	got, err := s.manager.Apply(context.Background(), asset.BucketArticles, asset.PrefixArticle, &current, ReplaceImage(s.staged()))
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("https://cdn.example.com/articles/article-1700000000000.png", *got)
	s.Equal([]string{"delete", "upload"}, s.order)
}

func (s *ManagerSuite) TestApplyReplaceUploadFailureAborts() {
	s.storage.On("Upload", mock.Anything, "articles", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))

	got, err := s.manager.Apply(context.Background(), asset.BucketArticles, asset.PrefixArticle, nil, ReplaceImage(s.staged()))
	s.Error(err)
	s.Nil(got)
}

func (s *ManagerSuite) TestApplyReplaceWithoutFile() {
	_, err := s.manager.Apply(context.Background(), asset.BucketArticles, asset.PrefixArticle, nil, ImageChange{Action: ImageReplace})
	s.Error(err)
}

func (s *ManagerSuite) TestRecordOrphanPublishesEvent() {
	id := uuid.New()
	published := make(chan service.ContentEventPayload, 1)
	s.events.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published <- args.Get(1).(service.ContentEventPayload) }).
		Return(nil)

	s.manager.RecordOrphan(asset.BucketProjects, "https://cdn.example.com/projects/project-9.png", "project", &id, errors.New("db down"))

	select {
	case p := <-published:
		s.Equal(service.EventAssetOrphaned, p.EventType)
		s.Equal("projects", p.Bucket)
		s.Equal("db down", p.Reason)
		s.Equal(&id, p.EntityID)
	case <-time.After(2 * time.Second):
		s.Fail("orphan event was not published")
	}
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func TestImageChangeConstructors(t *testing.T) {
	assert.Equal(t, ImageKeep, KeepImage().Action)
	assert.Equal(t, ImageClear, ClearImage().Action)
	change := ReplaceImage(StagedFile{Filename: "a.jpg"})
	require.NotNil(t, change.File)
	assert.Equal(t, "a.jpg", change.File.Filename)
}
