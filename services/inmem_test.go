package services

import (
	"strconv"
	"time"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
)

var errAssetMissing = errors.New("asset not found", errors.NotFound())

// In-memory stores backing the service tests.

type inMemSubmissionStore struct {
	subs  []talenthub.Submission
	maxID int
}

func newInMemSubmissionStore() *inMemSubmissionStore {
	return &inMemSubmissionStore{subs: make([]talenthub.Submission, 0)}
}

func (r *inMemSubmissionStore) Get(id string) (*talenthub.Submission, error) {
	for _, sub := range r.subs {
		if sub.ID == id {
			s := sub
			return &s, nil
		}
	}
	return nil, nil
}

func (r *inMemSubmissionStore) List() ([]talenthub.Submission, error) {
	return append([]talenthub.Submission(nil), r.subs...), nil
}

func (r *inMemSubmissionStore) ListByCategory(category string) ([]talenthub.Submission, error) {
	subs := make([]talenthub.Submission, 0)
	for _, sub := range r.subs {
		if sub.Category == category {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (r *inMemSubmissionStore) ListByOwner(userID string) ([]talenthub.Submission, error) {
	subs := make([]talenthub.Submission, 0)
	for _, sub := range r.subs {
		if sub.UserID == userID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (r *inMemSubmissionStore) Create(sub *talenthub.Submission) error {
	r.maxID++
	sub.ID = strconv.Itoa(r.maxID)
	sub.Date = time.Now()
	sub.Views = 0
	sub.Likes = 0
	r.subs = append(r.subs, *sub)
	return nil
}

func (r *inMemSubmissionStore) Update(sub *talenthub.Submission) error {
	for i := range r.subs {
		if r.subs[i].ID == sub.ID {
			r.subs[i] = *sub
			return nil
		}
	}
	return nil
}

func (r *inMemSubmissionStore) Delete(id string) error {
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *inMemSubmissionStore) IncrementViews(id string) error {
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs[i].Views++
			return nil
		}
	}
	return nil
}

func (r *inMemSubmissionStore) IncrementLikes(id string) error {
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs[i].Likes++
			return nil
		}
	}
	return nil
}

type inMemUserStore struct {
	users []talenthub.User
	maxID int
}

func newInMemUserStore() *inMemUserStore {
	return &inMemUserStore{users: make([]talenthub.User, 0)}
}

func (r *inMemUserStore) Get(id string) (*talenthub.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *inMemUserStore) GetByEmail(email string) (*talenthub.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *inMemUserStore) List() ([]talenthub.User, error) {
	return append([]talenthub.User(nil), r.users...), nil
}

func (r *inMemUserStore) Upsert(user *talenthub.User) error {
	if user.ID == "" {
		r.maxID++
		user.ID = strconv.Itoa(r.maxID)
	}
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	r.users = append(r.users, *user)
	return nil
}

type inMemSessionStore struct {
	session *talenthub.Session
}

func (r *inMemSessionStore) Current() (*talenthub.Session, error) {
	if r.session == nil {
		return nil, nil
	}
	s := *r.session
	return &s, nil
}

func (r *inMemSessionStore) Save(session *talenthub.Session) error {
	s := *session
	r.session = &s
	return nil
}

func (r *inMemSessionStore) Clear() error {
	r.session = nil
	return nil
}

type inMemContactStore struct {
	messages []talenthub.ContactMessage
	maxID    int
}

func (r *inMemContactStore) Insert(msg *talenthub.ContactMessage) error {
	r.maxID++
	msg.ID = strconv.Itoa(r.maxID)
	msg.Date = time.Now()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *inMemContactStore) List() ([]talenthub.ContactMessage, error) {
	return append([]talenthub.ContactMessage(nil), r.messages...), nil
}

type fakeSuggestIndex struct {
	indexed []string
	deleted []string
	hits    []string
}

func (f *fakeSuggestIndex) Index(sub *talenthub.Submission) error {
	f.indexed = append(f.indexed, sub.ID)
	return nil
}

func (f *fakeSuggestIndex) Suggest(q string, limit int) ([]string, error) {
	return f.hits, nil
}

func (f *fakeSuggestIndex) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSubcategoryIndex struct {
	entries map[string][]string
}

func newFakeSubcategoryIndex() *fakeSubcategoryIndex {
	return &fakeSubcategoryIndex{entries: make(map[string][]string)}
}

func (f *fakeSubcategoryIndex) Index(category, subcategory string) error {
	f.entries[category] = append(f.entries[category], subcategory)
	return nil
}

func (f *fakeSubcategoryIndex) Search(category, prefix string) ([]string, error) {
	return f.entries[category], nil
}

type fakeMediaManager struct {
	refs map[string]int
}

func newFakeMediaManager(ids ...string) *fakeMediaManager {
	refs := make(map[string]int)
	for _, id := range ids {
		refs[id] = 1
	}
	return &fakeMediaManager{refs: refs}
}

func (f *fakeMediaManager) Acquire(id string) error {
	if _, ok := f.refs[id]; !ok {
		return errAssetMissing
	}
	f.refs[id]++
	return nil
}

func (f *fakeMediaManager) Release(id string) {
	if _, ok := f.refs[id]; !ok {
		return
	}
	f.refs[id]--
	if f.refs[id] <= 0 {
		delete(f.refs, id)
	}
}

type fakeTokenEncoder struct{}

func (fakeTokenEncoder) Encode(userID string) (string, error) {
	return "token-" + userID, nil
}
