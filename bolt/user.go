package bolt

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/boltdb/bolt"

	"github.com/techspire/talenthub"
)

var userBucket = []byte("users")

type UserStore struct {
	Driver *Driver
}

func (s *UserStore) Get(id string) (*talenthub.User, error) {
	var user *talenthub.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		user = &talenthub.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) GetByEmail(email string) (*talenthub.User, error) {
	var user *talenthub.User

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u talenthub.User
			if err := json.Unmarshal(data, &u); err != nil {
				continue
			}

			if u.Email == email {
				user = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) List() ([]talenthub.User, error) {
	users := make([]talenthub.User, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user talenthub.User
			if err := json.Unmarshal(data, &user); err != nil {
				continue
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Upsert inserts or updates a user. On insert the id is derived from the
// registration timestamp, like submission ids.
func (s *UserStore) Upsert(user *talenthub.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID == "" {
			ns := time.Now().UnixNano()
			for bucket.Get([]byte(strconv.FormatInt(ns, 10))) != nil {
				ns++
			}
			user.ID = strconv.FormatInt(ns, 10)
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(user.ID), data)
	})
}
