package talenthub

import (
	"strings"
	"time"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`

	Bio     string   `json:"bio,omitempty"`
	Talents []string `json:"talents"`

	JoinDate time.Time `json:"joinDate"`

	PasswordHash string `json:"passwordHash,omitempty"`
	Salt         string `json:"salt,omitempty"`

	EmailNotifications bool `json:"emailNotifications"`
	ProfileVisibility  bool `json:"profileVisibility"`
	ShowContact        bool `json:"showContact"`
}

// Name is the display name used as performer on submissions.
func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Public strips the credential fields before the user leaves the service
// layer.
func (u User) Public() User {
	u.PasswordHash = ""
	u.Salt = ""
	return u
}

type UserStore interface {
	Get(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	List() ([]User, error)
	Upsert(*User) error
}

// Session is the single "currently logged in" slot: a point-in-time copy of
// one user record. It can drift from the users collection if the same user
// is updated elsewhere.
type Session struct {
	User     User `json:"user"`
	Remember bool `json:"remember"`
}

type SessionStore interface {
	// Current returns nil when no session is stored or the stored value
	// cannot be decoded.
	Current() (*Session, error)
	Save(*Session) error
	Clear() error
}
