package talenthub

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortOldest  SortKey = "oldest"
	SortPopular SortKey = "popular"
	SortViews   SortKey = "views"
)

const (
	// FilterAll disables subcategory filtering.
	FilterAll = "all"

	DefaultPageSize = 12
)

type QueryParams struct {
	Subcategory string  `json:"subcategory"`
	Search      string  `json:"search"`
	Sort        SortKey `json:"sort"`

	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type Pagination struct {
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	HasMore  bool `json:"hasMore"`
}

type QueryResult struct {
	Submissions []Submission `json:"submissions"`
	Pagination  Pagination   `json:"pagination"`
}

// Query runs the fixed gallery pipeline over a snapshot of submissions:
// subcategory filter, then free-text search, then a stable sort, then
// cumulative-prefix pagination. Page n returns the first n*pageSize records
// of the sorted set, so every "load more" widens the prefix instead of
// fetching a disjoint slice.
func Query(all []Submission, p QueryParams) QueryResult {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}

	filtered := make([]Submission, 0, len(all))
	for _, sub := range all {
		if !matchSubcategory(sub, p.Subcategory) {
			continue
		}
		if !matchSearch(sub, p.Search) {
			continue
		}
		filtered = append(filtered, sub)
	}

	sortSubmissions(filtered, p.Sort)

	end := p.Page * p.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return QueryResult{
		Submissions: filtered[:end],
		Pagination: Pagination{
			Total:    len(filtered),
			Page:     p.Page,
			PageSize: p.PageSize,
			HasMore:  end < len(filtered),
		},
	}
}

func matchSubcategory(sub Submission, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return strings.EqualFold(sub.Subcategory, filter)
}

func matchSearch(sub Submission, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(sub.Title), term) ||
		strings.Contains(strings.ToLower(sub.Performer), term) ||
		strings.Contains(strings.ToLower(sub.Description), term)
}

// sortSubmissions sorts in place. The sort is stable so records that compare
// equal keep their source order. Unknown keys leave the order untouched.
func sortSubmissions(subs []Submission, key SortKey) {
	var less func(i, j int) bool
	switch key {
	case SortNewest:
		less = func(i, j int) bool { return subs[i].Date.After(subs[j].Date) }
	case SortOldest:
		less = func(i, j int) bool { return subs[i].Date.Before(subs[j].Date) }
	case SortPopular:
		less = func(i, j int) bool { return subs[i].Likes > subs[j].Likes }
	case SortViews:
		less = func(i, j int) bool { return subs[i].Views > subs[j].Views }
	default:
		return
	}
	sort.SliceStable(subs, less)
}

// View holds the state of a gallery between queries. Changing the
// subcategory, the search term or the sort key resets the view to the first
// page; only LoadMore widens the prefix.
type View struct {
	subcategory string
	search      string
	sort        SortKey
	page        int
}

func NewView() *View {
	return &View{
		subcategory: FilterAll,
		sort:        SortNewest,
		page:        1,
	}
}

func (v *View) SetSubcategory(subcategory string) {
	v.subcategory = subcategory
	v.page = 1
}

func (v *View) SetSearch(search string) {
	v.search = search
	v.page = 1
}

func (v *View) SetSort(key SortKey) {
	v.sort = key
	v.page = 1
}

func (v *View) LoadMore() {
	v.page++
}

func (v *View) Page() int { return v.page }

func (v *View) Params(pageSize int) QueryParams {
	return QueryParams{
		Subcategory: v.subcategory,
		Search:      v.search,
		Sort:        v.sort,
		Page:        v.page,
		PageSize:    pageSize,
	}
}
