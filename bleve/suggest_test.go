package bleve

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/techspire/talenthub"
)

func createIndex(t *testing.T) (*SuggestIndex, func()) {
	dir, err := ioutil.TempDir("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	index := &SuggestIndex{}
	if err := index.Open(filepath.Join(dir, "suggest.bleve")); err != nil {
		os.RemoveAll(dir)
		t.Fatal("error creating index:", err)
	}

	return index, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func TestSuggest(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	subs := []*talenthub.Submission{
		{ID: "1", Title: "Classical fusion", Performer: "Sita Sharma", Subcategory: "classical"},
		{ID: "2", Title: "Street style cypher", Performer: "Hari KC", Subcategory: "hiphop"},
		{ID: "3", Title: "Classical kathak", Performer: "Gita Rai", Subcategory: "classical"},
		{ID: "4", Title: "Beatbox battle", Performer: "Hari KC", Subcategory: "beatbox"},
	}
	for _, sub := range subs {
		if err := index.Index(sub); err != nil {
			t.Fatal("error indexing", sub.ID, err)
		}
	}

	var tts = map[string]struct {
		q        string
		expected []string
	}{
		"title prefix":     {"classic", []string{"1", "3"}},
		"performer":        {"hari", []string{"2", "4"}},
		"title word":       {"battle", []string{"4"}},
		"multi word":       {"classical kath", []string{"3"}},
		"no hit":           {"tabla", []string{}},
		"empty":            {"", []string{}},
		"title and author": {"street hari", []string{"2"}},
	}

	for name, tt := range tts {
		ids, err := index.Suggest(tt.q, 10)
		if err != nil {
			t.Fatalf("%s - error suggesting: %v", name, err)
		}

		sort.Strings(ids)
		if len(ids) != len(tt.expected) {
			t.Errorf("%s - expected %v got %v", name, tt.expected, ids)
			continue
		}
		for i := range ids {
			if ids[i] != tt.expected[i] {
				t.Errorf("%s - expected %v got %v", name, tt.expected, ids)
				break
			}
		}
	}
}

func TestSuggest_Delete(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	sub := &talenthub.Submission{ID: "1", Title: "Solo tap dance", Performer: "Sita Sharma"}
	if err := index.Index(sub); err != nil {
		t.Fatal("error indexing:", err)
	}

	ids, err := index.Suggest("tap", 10)
	if err != nil {
		t.Fatal("error suggesting:", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(ids))
	}

	if err := index.Delete("1"); err != nil {
		t.Fatal("error deleting:", err)
	}

	ids, err = index.Suggest("tap", 10)
	if err != nil {
		t.Fatal("error suggesting:", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected 0 hits after delete, got %d", len(ids))
	}
}
