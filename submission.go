package talenthub

import (
	"time"
)

type Submission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	// Performer is the owner's display name captured at creation time.
	// It is not re-synced when the user later renames.
	Performer string `json:"performer"`
	UserID    string `json:"userId"`

	MediaRef     string `json:"mediaRef"`
	ThumbnailRef string `json:"thumbnailRef,omitempty"`
	Duration     string `json:"duration,omitempty"`

	Date  time.Time `json:"date"`
	Views int       `json:"views"`
	Likes int       `json:"likes"`
}

type SubmissionStore interface {
	Get(id string) (*Submission, error)
	List() ([]Submission, error)
	ListByCategory(category string) ([]Submission, error)
	ListByOwner(userID string) ([]Submission, error)
	Create(*Submission) error
	Update(*Submission) error
	Delete(id string) error
	IncrementViews(id string) error
	IncrementLikes(id string) error
}

// SuggestIndex feeds search-as-you-type. It returns submission ids, to be
// resolved against the store.
type SuggestIndex interface {
	Index(*Submission) error
	Suggest(q string, limit int) ([]string, error)
	Delete(id string) error
}

// SubcategoryIndex keeps track of the subcategories seen per category, for
// the filter menus.
type SubcategoryIndex interface {
	Index(category, subcategory string) error
	Search(category, prefix string) ([]string, error)
}
