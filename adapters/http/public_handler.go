package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	articleUC "github.com/dimasadrian/portfolio/internal/application/usecase/article"
	homeUC "github.com/dimasadrian/portfolio/internal/application/usecase/home"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// PublicHandler serves the landing page aggregate, the feed and search.
type PublicHandler struct {
	homeUC   *homeUC.HomeUseCase
	rssUC    *articleUC.RSSUseCase
	searchUC *articleUC.SearchArticlesUseCase
	logger   logger.Logger
}

func NewPublicHandler(home *homeUC.HomeUseCase, rss *articleUC.RSSUseCase, search *articleUC.SearchArticlesUseCase, log logger.Logger) *PublicHandler {
	return &PublicHandler{homeUC: home, rssUC: rss, searchUC: search, logger: log}
}

func (h *PublicHandler) Home(c *gin.Context) {
	output, err := h.homeUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to load home", err))
		return
	}
	c.JSON(http.StatusOK, HomeDTO{
		Profile:    ToProfileDTO(output.Profile),
		Articles:   ToArticleDTOs(output.Articles),
		Projects:   ToProjectDTOs(output.Projects),
		Activities: ToActivityDTOs(output.Activities),
	})
}

func (h *PublicHandler) RSS(c *gin.Context) {
	feed, err := h.rssUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(feed))
}

func (h *PublicHandler) SearchArticles(c *gin.Context) {
	docs, err := h.searchUC.Execute(c.Request.Context(), articleUC.SearchArticlesInput{
		Query: c.Query("q"),
		Limit: queryLimit(c, 10),
	})
	if err != nil {
		c.Error(err)
		return
	}

	results := make([]SearchResultDTO, len(docs))
	for i, d := range docs {
		results[i] = ToSearchResultDTO(d)
	}
	c.JSON(http.StatusOK, results)
}
