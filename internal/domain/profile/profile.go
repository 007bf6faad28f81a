package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile shares its id with the owning user.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  *string   `json:"full_name"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewForEmail seeds a profile for a first sign-in, named after the local part
// of the email address.
func NewForEmail(userID uuid.UUID, email string) *Profile {
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	bio := ""
	return &Profile{ID: userID, FullName: &name, Bio: &bio}
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	// FindOwner returns the site owner's profile, the oldest one.
	FindOwner(ctx context.Context) (*Profile, error)
	// CreateIfAbsent inserts p unless a profile with the same id exists.
	CreateIfAbsent(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
}
