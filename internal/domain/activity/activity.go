package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeExperience   Type = "Experience"
	TypeVolunteering Type = "Volunteering"
	TypeOrganization Type = "Organization"
	TypeCompetition  Type = "Competition"
	TypeInternship   Type = "Internship"
	TypeOther        Type = "Other"
)

// DateLayout is the wire and storage format of start and end dates.
const DateLayout = "2006-01-02"

const ongoingLabel = "Sekarang"

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrStartDateRequired = errors.New("start_date is required")
	ErrInvalidType       = errors.New("invalid activity type")
	ErrInvalidDate       = errors.New("dates must use the YYYY-MM-DD format")
	ErrEndBeforeStart    = errors.New("end_date cannot be before start_date")
)

func AllTypes() []Type {
	return []Type{TypeExperience, TypeVolunteering, TypeOrganization, TypeCompetition, TypeInternship, TypeOther}
}

// PublicTypes are the activity types shown on the public home page.
func PublicTypes() []Type {
	return []Type{TypeInternship, TypeOrganization, TypeCompetition, TypeVolunteering, TypeOther}
}

func (t Type) Valid() bool {
	switch t {
	case TypeExperience, TypeVolunteering, TypeOrganization, TypeCompetition, TypeInternship, TypeOther:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.TrimSpace(s))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &d, nil
}

type Activity struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Type         Type       `json:"type"`
	Organization *string    `json:"organization"`
	Role         *string    `json:"role"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrTitleRequired
	}
	if !a.Type.Valid() {
		return ErrInvalidType
	}
	if a.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// Ongoing reports whether the activity has no end date.
func (a *Activity) Ongoing() bool {
	return a.EndDate == nil
}

// Period renders "start → end", or "start → Sekarang" while ongoing.
func (a *Activity) Period() string {
	end := ongoingLabel
	if a.EndDate != nil {
		end = a.EndDate.Format(DateLayout)
	}
	return a.StartDate.Format(DateLayout) + " → " + end
}

// Filter narrows a listing by type. Include and Exclude are mutually
// exclusive; Include wins when both are set.
type Filter struct {
	Include []Type
	Exclude []Type
	Limit   int
}

type Repository interface {
	Save(ctx context.Context, activity *Activity) error
	Update(ctx context.Context, activity *Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Activity, error)
	// List returns activities by start date, latest first.
	List(ctx context.Context, filter Filter) ([]*Activity, error)
	Count(ctx context.Context) (int, error)
}
