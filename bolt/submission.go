package bolt

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/boltdb/bolt"

	"github.com/techspire/talenthub"
)

var submissionBucket = []byte("submissions")

// SubmissionStore persists submissions as JSON values keyed by their id.
// Ids are the creation timestamp in nanoseconds, so a cursor walk returns
// submissions in insertion order.
type SubmissionStore struct {
	Driver *Driver
}

func (s *SubmissionStore) Get(id string) (*talenthub.Submission, error) {
	var submission *talenthub.Submission
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(submissionBucket)

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		submission = &talenthub.Submission{}
		return json.Unmarshal(data, submission)
	})
	if err != nil {
		return nil, err
	}

	return submission, nil
}

func (s *SubmissionStore) List() ([]talenthub.Submission, error) {
	return s.list(func(talenthub.Submission) bool { return true })
}

func (s *SubmissionStore) ListByCategory(category string) ([]talenthub.Submission, error) {
	return s.list(func(sub talenthub.Submission) bool { return sub.Category == category })
}

func (s *SubmissionStore) ListByOwner(userID string) ([]talenthub.Submission, error) {
	return s.list(func(sub talenthub.Submission) bool { return sub.UserID == userID })
}

func (s *SubmissionStore) list(keep func(talenthub.Submission) bool) ([]talenthub.Submission, error) {
	submissions := make([]talenthub.Submission, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(submissionBucket)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var sub talenthub.Submission
			if err := json.Unmarshal(data, &sub); err != nil {
				// A corrupt record must not take the whole
				// collection down with it.
				continue
			}
			if keep(sub) {
				submissions = append(submissions, sub)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

// Create assigns the id and the creation fields before persisting. The id is
// derived from the creation timestamp and bumped on the (unlikely) collision.
func (s *SubmissionStore) Create(sub *talenthub.Submission) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(submissionBucket)

		now := time.Now()
		ns := now.UnixNano()
		for bucket.Get([]byte(strconv.FormatInt(ns, 10))) != nil {
			ns++
		}

		sub.ID = strconv.FormatInt(ns, 10)
		sub.Date = now
		sub.Views = 0
		sub.Likes = 0

		data, err := json.Marshal(sub)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(sub.ID), data)
	})
}

// Update replaces the stored record. Updating a record that no longer exists
// is a silent no-op.
func (s *SubmissionStore) Update(sub *talenthub.Submission) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(submissionBucket)

		if bucket.Get([]byte(sub.ID)) == nil {
			return nil
		}

		data, err := json.Marshal(sub)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(sub.ID), data)
	})
}

func (s *SubmissionStore) Delete(id string) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(submissionBucket)
		return bucket.Delete([]byte(id))
	})
}

func (s *SubmissionStore) IncrementViews(id string) error {
	return s.increment(id, func(sub *talenthub.Submission) { sub.Views++ })
}

func (s *SubmissionStore) IncrementLikes(id string) error {
	return s.increment(id, func(sub *talenthub.Submission) { sub.Likes++ })
}

// increment is a single-record read-modify-write inside one transaction.
// Incrementing a missing or corrupt record is a no-op.
func (s *SubmissionStore) increment(id string, bump func(*talenthub.Submission)) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(submissionBucket)

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		var sub talenthub.Submission
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil
		}

		bump(&sub)

		data, err := json.Marshal(sub)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(id), data)
	})
}
