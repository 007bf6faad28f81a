package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const (
	feedCacheKey = "rss:articles"
	feedTTL      = 5 * time.Minute
	feedItems    = 20
)

type FeedInfo struct {
	Title       string
	Description string
	Author      string
	// SiteURL is the public site, article links are SiteURL/articles/<slug>.
	SiteURL string
}

type RSSUseCase struct {
	articleRepo article.Repository
	cache       *gocache.Cache
	info        FeedInfo
	logger      logger.Logger
}

func NewRSSUseCase(repo article.Repository, info FeedInfo, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		articleRepo: repo,
		cache:       gocache.New(feedTTL, 2*feedTTL),
		info:        info,
		logger:      log,
	}
}

// Execute returns the RSS document, built at most once per cache window.
func (uc *RSSUseCase) Execute(ctx context.Context) (string, error) {
	if cached, ok := uc.cache.Get(feedCacheKey); ok {
		return cached.(string), nil
	}

	articles, err := uc.articleRepo.List(ctx, feedItems)
	if err != nil {
		uc.logger.Error("Failed to list articles for RSS", err)
		return "", err
	}

	site := strings.TrimRight(uc.info.SiteURL, "/")
	feed := &feeds.Feed{
		Title:       uc.info.Title,
		Link:        &feeds.Link{Href: site},
		Description: uc.info.Description,
		Author:      &feeds.Author{Name: uc.info.Author},
		Created:     time.Now(),
	}

	for _, a := range articles {
		item := &feeds.Item{
			Id:          a.ID.String(),
			Title:       a.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/articles/%s", site, a.Slug)},
			Description: excerpt(a.Content, 280),
			Created:     a.PublishedAt,
		}
		if a.UpdatedAt != nil {
			item.Updated = *a.UpdatedAt
		}
		if a.ImageURL != nil {
			item.Enclosure = &feeds.Enclosure{Url: *a.ImageURL, Type: "image/*", Length: "0"}
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("render rss failed: %w", err)
	}

	uc.cache.Set(feedCacheKey, rss, gocache.DefaultExpiration)
	uc.logger.Info("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return rss, nil
}

// Invalidate drops the cached feed.
func (uc *RSSUseCase) Invalidate() {
	uc.cache.Delete(feedCacheKey)
}

func excerpt(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max]) + "…"
}
