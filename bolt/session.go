package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/techspire/talenthub"
)

var (
	sessionBucket = []byte("session")
	sessionKey    = []byte("current")
)

// SessionStore holds the single current-session slot.
type SessionStore struct {
	Driver *Driver
}

// Current returns the stored session, or nil when the slot is empty or its
// content cannot be decoded.
func (s *SessionStore) Current() (*talenthub.Session, error) {
	var session *talenthub.Session
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)

		data := bucket.Get(sessionKey)
		if data == nil {
			return nil
		}

		var sess talenthub.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			return nil
		}
		session = &sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionStore) Save(session *talenthub.Session) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)

		data, err := json.Marshal(session)
		if err != nil {
			return err
		}

		return bucket.Put(sessionKey, data)
	})
}

func (s *SessionStore) Clear() error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)
		return bucket.Delete(sessionKey)
	})
}
