package media_storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

func newTestSupabase(t *testing.T, h http.HandlerFunc) *supabaseStorage {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	var cfg config.Config
	cfg.Supabase.URL = srv.URL + "/"
	cfg.Supabase.ServiceKey = "service-key"

	store, err := NewSupabaseStorage(cfg, logger.NewNop())
	require.NoError(t, err)
	return store.(*supabaseStorage)
}

func TestSupabaseUpload(t *testing.T) {
	var gotPath, gotAuth, gotType, gotBody string
	store := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Key":"articles/article-1.png"}`))
	})

	url, err := store.Upload(context.Background(), string(asset.BucketArticles), "article-1.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/articles/article-1.png", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "png", gotBody)
	assert.True(t, strings.HasSuffix(url, "/storage/v1/object/public/articles/article-1.png"))

	name, err := asset.NameFromURL(url)
	require.NoError(t, err)
	assert.Equal(t, "article-1.png", name)
}

func TestSupabaseUploadError(t *testing.T) {
	store := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"statusCode":"403","error":"Unauthorized","message":"bad key"}`))
	})

	_, err := store.Upload(context.Background(), string(asset.BucketProjects), "p.png", strings.NewReader("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestSupabaseDelete(t *testing.T) {
	var method string
	store := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, store.Delete(context.Background(), string(asset.BucketAvatars), "avatar-x.png"))
	assert.Equal(t, http.MethodDelete, method)
}

func TestSupabaseDeleteMissingObject(t *testing.T) {
	store := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":"404","error":"not_found","message":"Object not found"}`))
	})

	err := store.Delete(context.Background(), string(asset.BucketActivities), "gone.png")
	assert.ErrorIs(t, err, asset.ErrObjectNotFound)
}

func TestNewObjectStorageRejectsUnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.Storage.Driver = "ftp"
	_, err := NewObjectStorage(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestS3ObjectURL(t *testing.T) {
	s := &s3Storage{bucketPrefix: "pf-", publicBaseURL: "http://localhost:9000/", usePathStyle: true}
	assert.Equal(t, "http://localhost:9000/pf-articles/a.png", s.objectURL("articles", "a.png"))

	s = &s3Storage{bucketPrefix: "pf-"}
	assert.Equal(t, "https://pf-articles.s3.amazonaws.com/a.png", s.objectURL("articles", "a.png"))

	s = &s3Storage{publicBaseURL: "https://cdn.example.com"}
	articles := s.objectURL("articles", "article-1.png")
	projects := s.objectURL("projects", "article-1.png")
	assert.Equal(t, "https://articles.cdn.example.com/article-1.png", articles)
	assert.Equal(t, "https://projects.cdn.example.com/article-1.png", projects)
	assert.NotEqual(t, articles, projects)

	s = &s3Storage{endpoint: "https://s3.eu-central-1.wasabisys.com/", bucketPrefix: "pf-"}
	assert.Equal(t, "https://pf-avatars.s3.eu-central-1.wasabisys.com/me.jpg", s.objectURL("avatars", "me.jpg"))

	s = &s3Storage{publicBaseURL: "not a url"}
	assert.Equal(t, "not a url/articles/a.png", s.objectURL("articles", "a.png"))
}
