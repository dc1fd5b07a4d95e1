package content

import (
	"time"

	"github.com/google/uuid"
)

type PromotionMetadata struct {
	ValidFrom string     `json:"valid_from"` // YYYY-MM-DD
	ValidTo   string     `json:"valid_to"`
	Image     *uuid.UUID `json:"image,omitempty"`
}

type Promotion struct {
	ID        uint
	UUID      uuid.UUID
	Title     string
	Content   string
	Metadata  PromotionMetadata
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidOn reports whether day falls inside the promotion window, bounds included.
func (p *Promotion) IsValidOn(day time.Time) bool {
	today := day.Format(DateLayout)
	if p.Metadata.ValidFrom != "" && today < p.Metadata.ValidFrom {
		return false
	}
	if p.Metadata.ValidTo != "" && today > p.Metadata.ValidTo {
		return false
	}
	return true
}

type PostMetadata struct {
	Author string     `json:"author"`
	Image  *uuid.UUID `json:"image,omitempty"`
}

type Post struct {
	ID        uint
	UUID      uuid.UUID
	Title     string
	Slug      string
	Content   string
	Metadata  PostMetadata
	CreatedAt time.Time
	UpdatedAt time.Time
}

const DateLayout = "2006-01-02"
