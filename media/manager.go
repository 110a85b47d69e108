package media

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/techspire/talenthub/errors"
)

// Asset describes one stored preview blob.
type Asset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

type asset struct {
	Asset
	data []byte
	refs int
}

// Manager holds preview assets in memory, reference counted. An asset starts
// with one reference for its creator; it is dropped as soon as the count
// reaches zero, so nothing outlives the records pointing to it.
type Manager struct {
	mu     sync.Mutex
	assets map[string]*asset
}

func NewManager() *Manager {
	return &Manager{
		assets: make(map[string]*asset),
	}
}

func errAssetNotFound(id string) error {
	return errors.New(fmt.Sprintf("no asset for id %s", id), errors.NotFound())
}

func (m *Manager) Put(name, contentType string, data []byte) (Asset, error) {
	if len(data) == 0 {
		return Asset{}, errors.New("empty asset", errors.BadRequest())
	}

	a := &asset{
		Asset: Asset{
			ID:          uuid.NewString(),
			Name:        name,
			ContentType: contentType,
			Size:        len(data),
		},
		data: data,
		refs: 1,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.ID] = a

	return a.Asset, nil
}

func (m *Manager) Get(id string) (Asset, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.assets[id]
	if !ok {
		return Asset{}, nil, errAssetNotFound(id)
	}

	return a.Asset, a.data, nil
}

// Acquire adds a reference to the asset, keeping it alive for another holder.
func (m *Manager) Acquire(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.assets[id]
	if !ok {
		return errAssetNotFound(id)
	}

	a.refs++
	return nil
}

// Release drops a reference. The asset is removed when no holder remains.
// Releasing an unknown id is a no-op.
func (m *Manager) Release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.assets[id]
	if !ok {
		return
	}

	a.refs--
	if a.refs <= 0 {
		delete(m.assets, id)
	}
}

// Len returns the number of live assets.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.assets)
}
