package services

import (
	"fmt"
	"sort"

	"github.com/russross/blackfriday"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
)

func errSubmissionNotFound(id string) error {
	return errors.New(fmt.Sprintf("submission %s not found", id), errors.NotFound())
}

// MediaManager is the part of the media manager the service needs: pinning
// assets referenced by a submission and letting go of them on delete.
type MediaManager interface {
	Acquire(id string) error
	Release(id string)
}

type SubmissionService struct {
	store         talenthub.SubmissionStore
	suggest       talenthub.SuggestIndex
	subcategories talenthub.SubcategoryIndex
	media         MediaManager
}

func NewSubmissionService(
	store talenthub.SubmissionStore,
	suggest talenthub.SuggestIndex,
	subcategories talenthub.SubcategoryIndex,
	media MediaManager,
) *SubmissionService {
	return &SubmissionService{
		store:         store,
		suggest:       suggest,
		subcategories: subcategories,
		media:         media,
	}
}

// Gallery returns the page-scoped gallery view: all submissions of the page
// category run through the query pipeline.
func (s *SubmissionService) Gallery(category string, p talenthub.QueryParams) (talenthub.QueryResult, error) {
	all, err := s.store.ListByCategory(category)
	if err != nil {
		return talenthub.QueryResult{}, err
	}

	return talenthub.Query(all, p), nil
}

type CreateSubmissionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	MediaRef     string `json:"mediaRef"`
	ThumbnailRef string `json:"thumbnailRef"`
	Duration     string `json:"duration"`
}

func (s *SubmissionService) Create(user talenthub.User, input CreateSubmissionInput) (talenthub.Submission, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" || input.Subcategory == "" {
		return talenthub.Submission{}, errors.New("please fill in all required fields", errors.BadRequest())
	}
	if input.MediaRef == "" {
		return talenthub.Submission{}, errors.New("please select a media file to upload", errors.BadRequest())
	}

	// Pin the referenced assets for the lifetime of the record.
	if err := s.media.Acquire(input.MediaRef); err != nil {
		return talenthub.Submission{}, err
	}
	if input.ThumbnailRef != "" {
		if err := s.media.Acquire(input.ThumbnailRef); err != nil {
			s.media.Release(input.MediaRef)
			return talenthub.Submission{}, err
		}
	}

	sub := talenthub.Submission{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		Performer:    user.Name(),
		UserID:       user.ID,
		MediaRef:     input.MediaRef,
		ThumbnailRef: input.ThumbnailRef,
		Duration:     input.Duration,
	}

	if err := s.store.Create(&sub); err != nil {
		s.media.Release(input.MediaRef)
		if input.ThumbnailRef != "" {
			s.media.Release(input.ThumbnailRef)
		}
		return talenthub.Submission{}, err
	}

	if err := s.suggest.Index(&sub); err != nil {
		return talenthub.Submission{}, errors.New("error indexing submission", errors.WithCause(err))
	}

	if err := s.subcategories.Index(sub.Category, sub.Subcategory); err != nil {
		return talenthub.Submission{}, errors.New("error indexing subcategory", errors.WithCause(err))
	}

	return sub, nil
}

type SubmissionDetail struct {
	talenthub.Submission
	DescriptionHTML string `json:"descriptionHtml"`
}

// Detail returns a single submission and counts the view.
func (s *SubmissionService) Detail(id string) (SubmissionDetail, error) {
	if err := s.store.IncrementViews(id); err != nil {
		return SubmissionDetail{}, err
	}

	sub, err := s.store.Get(id)
	if err != nil {
		return SubmissionDetail{}, err
	} else if sub == nil {
		return SubmissionDetail{}, errSubmissionNotFound(id)
	}

	return SubmissionDetail{
		Submission:      *sub,
		DescriptionHTML: string(blackfriday.MarkdownCommon([]byte(sub.Description))),
	}, nil
}

// Like counts one like. Anyone logged in can like, any number of times.
func (s *SubmissionService) Like(id string) (talenthub.Submission, error) {
	sub, err := s.store.Get(id)
	if err != nil {
		return talenthub.Submission{}, err
	} else if sub == nil {
		return talenthub.Submission{}, errSubmissionNotFound(id)
	}

	if err := s.store.IncrementLikes(id); err != nil {
		return talenthub.Submission{}, err
	}

	sub.Likes++
	return *sub, nil
}

// Delete removes a submission. Only the owner can delete: the userId on the
// record is the sole access-control marker.
func (s *SubmissionService) Delete(user talenthub.User, id string) error {
	sub, err := s.store.Get(id)
	if err != nil {
		return err
	} else if sub == nil {
		return errSubmissionNotFound(id)
	}

	if sub.UserID != user.ID {
		return errors.New("only the owner can delete a submission", errors.Forbidden())
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}

	if err := s.suggest.Delete(id); err != nil {
		return errors.New("error removing submission from the index", errors.WithCause(err))
	}

	if sub.MediaRef != "" {
		s.media.Release(sub.MediaRef)
	}
	if sub.ThumbnailRef != "" {
		s.media.Release(sub.ThumbnailRef)
	}

	return nil
}

// defaultTrendingLimit is the number of entries on the dashboard widget.
const defaultTrendingLimit = 6

// Trending returns the most engaging submissions across all owners, ordered
// by likes+views, ties in insertion order.
func (s *SubmissionService) Trending(limit int) ([]talenthub.Submission, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Likes+all[i].Views > all[j].Likes+all[j].Views
	})

	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	if limit > len(all) {
		limit = len(all)
	}

	return all[:limit], nil
}

// Mine lists the submissions owned by the user, for the dashboard.
func (s *SubmissionService) Mine(user talenthub.User) ([]talenthub.Submission, error) {
	return s.store.ListByOwner(user.ID)
}

type OwnerStats struct {
	Submissions int `json:"submissions"`
	Likes       int `json:"likes"`
	Views       int `json:"views"`
	Rank        int `json:"rank"`
}

// OwnerStats derives the dashboard numbers from the store instead of keeping
// counters on the user record. The rank orders owners by likes+views of
// their submissions; owners without any submission rank behind everyone.
func (s *SubmissionService) OwnerStats(userID string) (OwnerStats, error) {
	all, err := s.store.List()
	if err != nil {
		return OwnerStats{}, err
	}

	stats := OwnerStats{}
	scores := make(map[string]int)
	owners := make([]string, 0)
	for _, sub := range all {
		if _, seen := scores[sub.UserID]; !seen {
			owners = append(owners, sub.UserID)
		}
		scores[sub.UserID] += sub.Likes + sub.Views

		if sub.UserID == userID {
			stats.Submissions++
			stats.Likes += sub.Likes
			stats.Views += sub.Views
		}
	}

	if stats.Submissions == 0 {
		stats.Rank = len(owners) + 1
		return stats, nil
	}

	rank := 1
	for _, owner := range owners {
		if owner != userID && scores[owner] > scores[userID] {
			rank++
		}
	}
	stats.Rank = rank

	return stats, nil
}

type Suggestion struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
	Category  string `json:"category"`
}

// Suggest resolves index hits back to live submissions. Hits whose record is
// gone are silently skipped.
func (s *SubmissionService) Suggest(q string, limit int) ([]Suggestion, error) {
	ids, err := s.suggest.Suggest(q, limit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(ids))
	for _, id := range ids {
		sub, err := s.store.Get(id)
		if err != nil {
			return nil, err
		} else if sub == nil {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			ID:        sub.ID,
			Title:     sub.Title,
			Performer: sub.Performer,
			Category:  sub.Category,
		})
	}

	return suggestions, nil
}

// Subcategories lists the known subcategories of a category, optionally
// narrowed by prefix.
func (s *SubmissionService) Subcategories(category, prefix string) ([]string, error) {
	return s.subcategories.Search(category, prefix)
}
