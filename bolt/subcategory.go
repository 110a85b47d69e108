package bolt

import (
	"bytes"
	"strings"

	"github.com/boltdb/bolt"
)

var subcategoryBucket = []byte("subcategories")

// SubcategoryIndex records the subcategories seen per category. Keys are
// "category/subcategory" so a Seek on "category/prefix" walks exactly the
// matching range.
type SubcategoryIndex struct {
	Driver *Driver
}

func subcategoryKey(category, subcategory string) []byte {
	return []byte(category + "/" + strings.ToLower(subcategory))
}

func (s *SubcategoryIndex) Index(category, subcategory string) error {
	if subcategory == "" {
		return nil
	}
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(subcategoryBucket)
		return bucket.Put(subcategoryKey(category, subcategory), []byte(subcategory))
	})
}

func (s *SubcategoryIndex) Search(category, prefix string) ([]string, error) {
	subcategories := make([]string, 0)
	seek := subcategoryKey(category, prefix)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(subcategoryBucket)
		c := bucket.Cursor()

		for key, value := c.Seek(seek); bytes.HasPrefix(key, seek); key, value = c.Next() {
			subcategories = append(subcategories, string(value))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return subcategories, nil
}
