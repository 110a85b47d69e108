package bleve

import (
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	"github.com/techspire/talenthub"
)

// SuggestIndex answers search-as-you-type over submission titles, performers
// and subcategories. It only returns ids: the hits are resolved against the
// submission store.
type SuggestIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it with the submission mapping when
// it does not exist yet.
func (s *SuggestIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, indexMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *SuggestIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func indexMapping() *mapping.IndexMappingImpl {
	m := bleve.NewIndexMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = en.AnalyzerName

	performer := bleve.NewTextFieldMapping()
	performer.Analyzer = simple.Name

	subcategory := bleve.NewTextFieldMapping()
	subcategory.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", title)
	doc.AddFieldMappingsAt("performer", performer)
	doc.AddFieldMappingsAt("subcategory", subcategory)
	m.DefaultMapping = doc

	return m
}

func (s *SuggestIndex) Index(sub *talenthub.Submission) error {
	data := map[string]interface{}{
		"title":       sub.Title,
		"performer":   sub.Performer,
		"subcategory": sub.Subcategory,
	}

	return s.index.Index(sub.ID, data)
}

func (s *SuggestIndex) Delete(id string) error {
	return s.index.Delete(id)
}

func (s *SuggestIndex) Suggest(q string, limit int) ([]string, error) {
	root := s.suggestQuery(q)
	if root == nil {
		return []string{}, nil
	}

	searchRequest := bleve.NewSearchRequest(root)
	if limit > 0 {
		searchRequest.Size = limit
	}

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i] = hit.ID
	}

	return ids, nil
}

// suggestQuery builds a conjunction over the words of q, each word matching
// the title or the performer by prefix.
func (s *SuggestIndex) suggestQuery(q string) query.Query {
	words := strings.Fields(q)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			s.prefixQuery(word, "title", en.AnalyzerName),
			s.prefixQuery(word, "performer", simple.Name),
		))
	}

	return andQ(ands...)
}

func (s *SuggestIndex) prefixQuery(queryString, field, analyzerName string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(analyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncts := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncts[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncts)
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}
