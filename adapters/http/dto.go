package http

import (
	"time"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/activity"
	"github.com/dimasadrian/portfolio/internal/domain/article"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/internal/domain/profile"
	"github.com/dimasadrian/portfolio/internal/domain/project"
)

// Profile DTOs

type ProfileDTO struct {
	ID        string    `json:"id"`
	FullName  *string   `json:"full_name"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"max=120"`
	Bio      string `json:"bio" binding:"max=2000"`
}

func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:        p.ID.String(),
		FullName:  p.FullName,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}

// Article DTOs

type ArticleForm struct {
	Title      string `form:"title" json:"title" binding:"required"`
	Slug       string `form:"slug" json:"slug"`
	SlugLocked bool   `form:"slug_locked" json:"slug_locked"`
	Content    string `form:"content" json:"content"`
}

type ArticleDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"image_url"`
	PublishedAt time.Time  `json:"published_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func ToArticleDTO(a *article.Article) ArticleDTO {
	return ArticleDTO{
		ID:          a.ID.String(),
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToArticleDTOs(items []*article.Article) []ArticleDTO {
	dtos := make([]ArticleDTO, len(items))
	for i, a := range items {
		dtos[i] = ToArticleDTO(a)
	}
	return dtos
}

// Project DTOs

type ProjectForm struct {
	Title       string   `form:"title" json:"title" binding:"required"`
	Description string   `form:"description" json:"description"`
	TechStack   []string `form:"tech_stack" json:"tech_stack"`
	Link        string   `form:"link" json:"link" binding:"omitempty,url"`
}

type ProjectDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	ImageURL    *string   `json:"image_url"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	stack := p.TechStack
	if stack == nil {
		stack = []string{}
	}
	return ProjectDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		TechStack:   stack,
		ImageURL:    p.ImageURL,
		Link:        p.Link,
		CreatedAt:   p.CreatedAt,
	}
}

func ToProjectDTOs(items []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(items))
	for i, p := range items {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Activity DTOs

type ActivityForm struct {
	Title        string `form:"title" json:"title" binding:"required"`
	Type         string `form:"type" json:"type"`
	Organization string `form:"organization" json:"organization"`
	Role         string `form:"role" json:"role"`
	StartDate    string `form:"start_date" json:"start_date" binding:"required"`
	EndDate      string `form:"end_date" json:"end_date"`
	Description  string `form:"description" json:"description"`
}

type ActivityDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Organization *string   `json:"organization"`
	Role         *string   `json:"role"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	Period       string    `json:"period"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToActivityDTO(a *activity.Activity) ActivityDTO {
	dto := ActivityDTO{
		ID:           a.ID.String(),
		Title:        a.Title,
		Type:         string(a.Type),
		Organization: a.Organization,
		Role:         a.Role,
		StartDate:    a.StartDate.Format(activity.DateLayout),
		Period:       a.Period(),
		Description:  a.Description,
		ImageURL:     a.ImageURL,
		CreatedAt:    a.CreatedAt,
	}
	if a.EndDate != nil {
		end := a.EndDate.Format(activity.DateLayout)
		dto.EndDate = &end
	}
	return dto
}

func ToActivityDTOs(items []*activity.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(items))
	for i, a := range items {
		dtos[i] = ToActivityDTO(a)
	}
	return dtos
}

// Dashboard DTOs

type StatsDTO struct {
	Articles   int `json:"articles"`
	Projects   int `json:"projects"`
	Activities int `json:"activities"`
}

type OrphanDTO struct {
	ID         string    `json:"id"`
	Bucket     string    `json:"bucket"`
	ObjectURL  string    `json:"object_url"`
	EntityType string    `json:"entity_type"`
	EntityID   *string   `json:"entity_id"`
	Reason     string    `json:"reason"`
	RecordedAt time.Time `json:"recorded_at"`
}

func ToOrphanDTO(o *asset.OrphanedAsset) OrphanDTO {
	dto := OrphanDTO{
		ID:         o.ID.String(),
		Bucket:     string(o.Bucket),
		ObjectURL:  o.ObjectURL,
		EntityType: o.EntityType,
		Reason:     o.Reason,
		RecordedAt: o.RecordedAt,
	}
	if o.EntityID != nil {
		id := o.EntityID.String()
		dto.EntityID = &id
	}
	return dto
}

type HomeDTO struct {
	Profile    *ProfileDTO   `json:"profile"`
	Articles   []ArticleDTO  `json:"articles"`
	Projects   []ProjectDTO  `json:"projects"`
	Activities []ActivityDTO `json:"activities"`
}

type SearchResultDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

func ToSearchResultDTO(d service.ArticleDocument) SearchResultDTO {
	return SearchResultDTO{
		ID:          d.ID,
		Title:       d.Title,
		Slug:        d.Slug,
		ImageURL:    d.ImageURL,
		PublishedAt: d.PublishedAt,
	}
}
