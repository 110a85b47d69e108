package talenthub

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func galleryFixture() []Submission {
	return []Submission{
		{ID: "1", Title: "Morning kathak", Performer: "Sita Sharma", Description: "a classical piece", Subcategory: "classical", Date: day("2024-01-01"), Likes: 5, Views: 10},
		{ID: "2", Title: "Street cypher", Performer: "Hari KC", Description: "freestyle session", Subcategory: "hiphop", Date: day("2024-06-01"), Likes: 1, Views: 50},
		{ID: "3", Title: "Lakhe mask dance", Performer: "Gita Rai", Description: "traditional newari dance", Subcategory: "Traditional", Date: day("2024-03-15"), Likes: 3, Views: 30},
		{ID: "4", Title: "Evening raga", Performer: "Sita Sharma", Description: "classical improvisation", Subcategory: "classical", Date: day("2024-05-20"), Likes: 3, Views: 20},
	}
}

func ids(subs []Submission) []string {
	out := make([]string, len(subs))
	for i, sub := range subs {
		out[i] = sub.ID
	}
	return out
}

func TestQuery_SubcategoryFilter(t *testing.T) {
	all := galleryFixture()

	res := Query(all, QueryParams{Subcategory: "classical"})
	assert.Equal(t, []string{"1", "4"}, ids(res.Submissions))

	// Case-insensitive match.
	res = Query(all, QueryParams{Subcategory: "traditional"})
	assert.Equal(t, []string{"3"}, ids(res.Submissions))

	// "all" and empty pass everything through.
	assert.Len(t, Query(all, QueryParams{Subcategory: FilterAll}).Submissions, 4)
	assert.Len(t, Query(all, QueryParams{}).Submissions, 4)
}

func TestQuery_Search(t *testing.T) {
	all := galleryFixture()

	tts := map[string]struct {
		search   string
		expected []string
	}{
		"title":       {"cypher", []string{"2"}},
		"performer":   {"sita", []string{"1", "4"}},
		"description": {"newari", []string{"3"}},
		"mixed case":  {"KATHAK", []string{"1"}},
		"or not and":  {"classical", []string{"1", "4"}},
		"no match":    {"violin", []string{}},
	}

	for name, tt := range tts {
		res := Query(all, QueryParams{Search: tt.search})
		assert.Equal(t, tt.expected, ids(res.Submissions), name)
	}
}

func TestQuery_SearchMatchesOnly(t *testing.T) {
	all := galleryFixture()

	for _, term := range []string{"classical", "sita", "dance", "e"} {
		res := Query(all, QueryParams{Search: term})
		for _, sub := range res.Submissions {
			haystack := strings.ToLower(sub.Title + " " + sub.Performer + " " + sub.Description)
			assert.Contains(t, haystack, term, "term %q", term)
		}
	}
}

func TestQuery_Sort(t *testing.T) {
	all := galleryFixture()

	newest := Query(all, QueryParams{Sort: SortNewest})
	assert.Equal(t, []string{"2", "4", "3", "1"}, ids(newest.Submissions))

	oldest := Query(all, QueryParams{Sort: SortOldest})
	assert.Equal(t, []string{"1", "3", "4", "2"}, ids(oldest.Submissions))

	// With no date ties, oldest is exactly the reverse of newest.
	for i, sub := range oldest.Submissions {
		assert.Equal(t, newest.Submissions[len(all)-1-i].ID, sub.ID)
	}

	popular := Query(all, QueryParams{Sort: SortPopular})
	assert.Equal(t, []string{"1", "3", "4", "2"}, ids(popular.Submissions))
	// 3 and 4 tie on likes: source order is preserved.

	views := Query(all, QueryParams{Sort: SortViews})
	assert.Equal(t, []string{"2", "3", "4", "1"}, ids(views.Submissions))

	// Unknown sort key keeps source order.
	unsorted := Query(all, QueryParams{Sort: SortKey("shuffle")})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(unsorted.Submissions))
}

func TestQuery_SortExample(t *testing.T) {
	all := []Submission{
		{ID: "jan", Date: day("2024-01-01"), Likes: 5},
		{ID: "june", Date: day("2024-06-01"), Likes: 1},
	}

	newest := Query(all, QueryParams{Sort: SortNewest})
	assert.Equal(t, []string{"june", "jan"}, ids(newest.Submissions))

	popular := Query(all, QueryParams{Sort: SortPopular})
	assert.Equal(t, []string{"jan", "june"}, ids(popular.Submissions))
}

func TestQuery_CumulativePagination(t *testing.T) {
	all := make([]Submission, 30)
	for i := range all {
		all[i] = Submission{
			ID:   fmt.Sprintf("%02d", i),
			Date: day("2024-01-01").AddDate(0, 0, i),
		}
	}

	page1 := Query(all, QueryParams{Sort: SortNewest, Page: 1, PageSize: 12})
	require.Len(t, page1.Submissions, 12)
	assert.True(t, page1.Pagination.HasMore)
	assert.Equal(t, 30, page1.Pagination.Total)

	// Page 2 is a longer prefix of the same ordering, not a disjoint slice.
	page2 := Query(all, QueryParams{Sort: SortNewest, Page: 2, PageSize: 12})
	require.Len(t, page2.Submissions, 24)
	assert.Equal(t, ids(page1.Submissions), ids(page2.Submissions)[:12])
	assert.True(t, page2.Pagination.HasMore)

	page3 := Query(all, QueryParams{Sort: SortNewest, Page: 3, PageSize: 12})
	assert.Len(t, page3.Submissions, 30)
	assert.False(t, page3.Pagination.HasMore)
}

func TestQuery_EmptyResult(t *testing.T) {
	res := Query(galleryFixture(), QueryParams{Search: "does not exist"})
	assert.Empty(t, res.Submissions)
	assert.Equal(t, 0, res.Pagination.Total)
	assert.False(t, res.Pagination.HasMore)
}

func TestQuery_Defaults(t *testing.T) {
	all := make([]Submission, 20)
	for i := range all {
		all[i] = Submission{ID: fmt.Sprintf("%02d", i)}
	}

	res := Query(all, QueryParams{})
	assert.Len(t, res.Submissions, DefaultPageSize)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, DefaultPageSize, res.Pagination.PageSize)
}

func TestView_ResetPolicy(t *testing.T) {
	view := NewView()
	assert.Equal(t, 1, view.Page())

	view.LoadMore()
	view.LoadMore()
	assert.Equal(t, 3, view.Page())

	// Any change of filter, search or sort resets to the first page.
	view.SetSubcategory("hiphop")
	assert.Equal(t, 1, view.Page())

	view.LoadMore()
	view.SetSearch("sita")
	assert.Equal(t, 1, view.Page())

	view.LoadMore()
	view.SetSort(SortPopular)
	assert.Equal(t, 1, view.Page())

	params := view.Params(12)
	assert.Equal(t, "hiphop", params.Subcategory)
	assert.Equal(t, "sita", params.Search)
	assert.Equal(t, SortPopular, params.Sort)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 12, params.PageSize)
}
