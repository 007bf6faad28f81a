package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	articleUC "github.com/dimasadrian/portfolio/internal/application/usecase/article"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type ArticleHandler struct {
	createArticleUC    *articleUC.CreateArticleUseCase
	updateArticleUC    *articleUC.UpdateArticleUseCase
	deleteArticleUC    *articleUC.DeleteArticleUseCase
	getArticleUC       *articleUC.GetArticleUseCase
	getArticleBySlugUC *articleUC.GetArticleBySlugUseCase
	listArticlesUC     *articleUC.ListArticlesUseCase
	rssUC              *articleUC.RSSUseCase
	logger             logger.Logger
}

func NewArticleHandler(
	createUC *articleUC.CreateArticleUseCase,
	updateUC *articleUC.UpdateArticleUseCase,
	deleteUC *articleUC.DeleteArticleUseCase,
	getUC *articleUC.GetArticleUseCase,
	getBySlugUC *articleUC.GetArticleBySlugUseCase,
	listUC *articleUC.ListArticlesUseCase,
	rssUC *articleUC.RSSUseCase,
	log logger.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC:    createUC,
		updateArticleUC:    updateUC,
		deleteArticleUC:    deleteUC,
		getArticleUC:       getUC,
		getArticleBySlugUC: getBySlugUC,
		listArticlesUC:     listUC,
		rssUC:              rssUC,
		logger:             log,
	}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var form ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	image, closer, err := imageChangeFromForm(c, imageField)
	if err != nil {
		c.Error(err)
		return
	}
	defer closer.Close()

	output, err := h.createArticleUC.Execute(c.Request.Context(), articleUC.CreateArticleInput{
		Title:      form.Title,
		Slug:       form.Slug,
		SlugLocked: form.SlugLocked,
		Content:    form.Content,
		Image:      image,
	})
	if err != nil {
		c.Error(err)
		return
	}
	h.rssUC.Invalidate()

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Article created",
		"data":     ToArticleDTO(output.Article),
		"redirect": output.Redirect,
	})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article ID", err))
		return
	}

	var form ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	image, closer, err := imageChangeFromForm(c, imageField)
	if err != nil {
		c.Error(err)
		return
	}
	defer closer.Close()

	output, err := h.updateArticleUC.Execute(c.Request.Context(), articleUC.UpdateArticleInput{
		ID:      id,
		Title:   form.Title,
		Slug:    form.Slug,
		Content: form.Content,
		Image:   image,
	})
	if err != nil {
		c.Error(err)
		return
	}
	h.rssUC.Invalidate()

	c.JSON(http.StatusOK, gin.H{
		"message":  "Article updated",
		"data":     ToArticleDTO(output.Article),
		"redirect": output.Redirect,
	})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article ID", err))
		return
	}

	if err := h.deleteArticleUC.Execute(c.Request.Context(), articleUC.DeleteArticleInput{ID: id}); err != nil {
		c.Error(err)
		return
	}
	h.rssUC.Invalidate()
	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid article ID", err))
		return
	}

	a, err := h.getArticleUC.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToArticleDTO(a))
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	output, err := h.listArticlesUC.Execute(c.Request.Context(), articleUC.ListArticlesInput{Limit: queryLimit(c, 0)})
	if err != nil {
		c.Error(apperror.NewInternal("failed to list articles", err))
		return
	}
	c.JSON(http.StatusOK, ToArticleDTOs(output.Articles))
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	a, err := h.getArticleBySlugUC.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToArticleDTO(a))
}
