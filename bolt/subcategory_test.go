package bolt

import (
	"reflect"
	"testing"
)

func TestSubcategoryIndex(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	index := &SubcategoryIndex{Driver: driver}

	entries := []struct{ category, subcategory string }{
		{"dance", "hiphop"},
		{"dance", "classical"},
		{"dance", "contemporary"},
		{"music", "classical"},
		{"dance", "hiphop"}, // duplicate
	}
	for _, e := range entries {
		if err := index.Index(e.category, e.subcategory); err != nil {
			t.Fatal("error indexing:", err)
		}
	}

	var tts = map[string]struct {
		category string
		prefix   string
		expected []string
	}{
		"all dance":    {"dance", "", []string{"classical", "contemporary", "hiphop"}},
		"dance c":      {"dance", "c", []string{"classical", "contemporary"}},
		"dance hiphop": {"dance", "hiphop", []string{"hiphop"}},
		"music":        {"music", "", []string{"classical"}},
		"no match":     {"dance", "zz", []string{}},
		"unknown cat":  {"theatre", "", []string{}},
	}

	for name, tt := range tts {
		subs, err := index.Search(tt.category, tt.prefix)
		if err != nil {
			t.Fatalf("%s - error searching: %v", name, err)
		}
		if !reflect.DeepEqual(subs, tt.expected) {
			t.Errorf("%s - expected %v got %v", name, tt.expected, subs)
		}
	}
}
