package bolt

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/boltdb/bolt"

	"github.com/techspire/talenthub"
)

var contactBucket = []byte("contacts")

type ContactStore struct {
	Driver *Driver
}

func (s *ContactStore) Insert(msg *talenthub.ContactMessage) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(contactBucket)

		now := time.Now()
		ns := now.UnixNano()
		for bucket.Get([]byte(strconv.FormatInt(ns, 10))) != nil {
			ns++
		}

		msg.ID = strconv.FormatInt(ns, 10)
		msg.Date = now

		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(msg.ID), data)
	})
}

func (s *ContactStore) List() ([]talenthub.ContactMessage, error) {
	messages := make([]talenthub.ContactMessage, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(contactBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var msg talenthub.ContactMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			messages = append(messages, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}
