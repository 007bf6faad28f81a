package media_storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// supabaseStorage talks to the Supabase Storage REST API. Buckets are
// expected to be public so the returned URL is directly readable.
type supabaseStorage struct {
	client  *resty.Client
	baseURL string
}

type supabaseError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func NewSupabaseStorage(cfg config.Config, log logger.Logger) (service.ObjectStorage, error) {
	if cfg.Supabase.URL == "" || cfg.Supabase.ServiceKey == "" {
		return nil, fmt.Errorf("supabase url or service key has not config")
	}

	base := strings.TrimRight(cfg.Supabase.URL, "/")
	client := resty.New().
		SetTimeout(30*time.Second).
		SetBaseURL(base).
		SetAuthToken(cfg.Supabase.ServiceKey).
		SetHeader("apikey", cfg.Supabase.ServiceKey)

	log.Info("Initialize Supabase storage successfully.")
	return &supabaseStorage{client: client, baseURL: base}, nil
}

func objectPath(bucket, name string) string {
	return url.PathEscape(bucket) + "/" + url.PathEscape(name)
}

func (s *supabaseStorage) publicURL(bucket, name string) string {
	return s.baseURL + "/storage/v1/object/public/" + objectPath(bucket, name)
}

func (s *supabaseStorage) Upload(ctx context.Context, bucket, name string, r io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var apiErr supabaseError
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(r).
		SetError(&apiErr).
		Post("/storage/v1/object/" + objectPath(bucket, name))
	if err != nil {
		return "", fmt.Errorf("failed to upload supabase object: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to upload supabase object: status %d: %s", resp.StatusCode(), apiErr.Message)
	}
	return s.publicURL(bucket, name), nil
}

func (s *supabaseStorage) Delete(ctx context.Context, bucket, name string) error {
	var apiErr supabaseError
	resp, err := s.client.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete("/storage/v1/object/" + objectPath(bucket, name))
	if err != nil {
		return fmt.Errorf("failed to delete supabase object: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	// Supabase reports a missing object as 400 with statusCode "404".
	if resp.StatusCode() == http.StatusNotFound || apiErr.StatusCode == "404" || apiErr.Error == "not_found" {
		return asset.ErrObjectNotFound
	}
	return fmt.Errorf("failed to delete supabase object: status %d: %s", resp.StatusCode(), apiErr.Message)
}
