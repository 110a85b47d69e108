package services

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
)

const (
	emailDomain       = "@cps.edu.np"
	minPasswordLength = 8
)

func errUserNotFound(id string) error {
	return errors.New(fmt.Sprintf("no user for id %s", id), errors.NotFound())
}

// errBadCredentials deliberately does not say whether the email or the
// password was wrong.
func errBadCredentials() error {
	return errors.New("email or password incorrect", errors.Unauthorized())
}

func errNotLoggedIn() error {
	return errors.New("not logged in", errors.Unauthorized())
}

type TokenEncoder interface {
	Encode(userID string) (string, error)
}

type UserService struct {
	users    talenthub.UserStore
	sessions talenthub.SessionStore

	encoder TokenEncoder
}

func NewUserService(users talenthub.UserStore, sessions talenthub.SessionStore, encoder TokenEncoder) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		encoder:  encoder,
	}
}

type RegisterInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	StudentID string   `json:"studentId"`
	Talents   []string `json:"talents"`
}

// Register creates an account. It does not log the new user in.
func (s *UserService) Register(input RegisterInput) (talenthub.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return talenthub.User{}, errors.New("please fill in all required fields", errors.BadRequest())
	}
	if !strings.HasSuffix(input.Email, emailDomain) {
		return talenthub.User{}, errors.New("please use a valid cps.edu.np email address", errors.BadRequest())
	}
	if len(input.Password) < minPasswordLength {
		return talenthub.User{}, errors.New("password must be at least 8 characters long", errors.BadRequest())
	}

	existing, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return talenthub.User{}, err
	} else if existing != nil {
		return talenthub.User{}, errors.New("an account with this email already exists", errors.BadRequest())
	}

	user := talenthub.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		StudentID: input.StudentID,
		Talents:   input.Talents,
		JoinDate:  time.Now(),
		Salt:      randToken(32),

		EmailNotifications: true,
		ProfileVisibility:  true,
		ShowContact:        false,
	}
	if user.Talents == nil {
		user.Talents = []string{}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password+user.Salt), bcrypt.DefaultCost)
	if err != nil {
		return talenthub.User{}, err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Upsert(&user); err != nil {
		return talenthub.User{}, err
	}

	return user.Public(), nil
}

// Authenticate checks the credentials and, on success, writes the session
// snapshot and returns a token for the HTTP surface.
func (s *UserService) Authenticate(email, password string, remember bool) (talenthub.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return talenthub.User{}, "", err
	} else if user == nil {
		return talenthub.User{}, "", errBadCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password+user.Salt)); err != nil {
		return talenthub.User{}, "", errBadCredentials()
	}

	err = s.sessions.Save(&talenthub.Session{User: *user, Remember: remember})
	if err != nil {
		return talenthub.User{}, "", err
	}

	token, err := s.encoder.Encode(user.ID)
	if err != nil {
		return talenthub.User{}, "", err
	}

	return user.Public(), token, nil
}

func (s *UserService) Get(id string) (talenthub.User, error) {
	user, err := s.users.Get(id)
	if err != nil {
		return talenthub.User{}, err
	} else if user == nil {
		return talenthub.User{}, errUserNotFound(id)
	}

	return *user, nil
}

// All lists every account, credentials stripped.
func (s *UserService) All() ([]talenthub.User, error) {
	all, err := s.users.List()
	if err != nil {
		return nil, err
	}

	for i, user := range all {
		all[i] = user.Public()
	}
	return all, nil
}

// Current returns the session snapshot, or nil when nobody is logged in.
func (s *UserService) Current() (*talenthub.Session, error) {
	return s.sessions.Current()
}

type ProfileUpdate struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Bio       string   `json:"bio"`
	Talents   []string `json:"talents"`
}

// UpdateProfile mutates the session snapshot and the users collection entry
// together. The two writes are not transactional: if the second fails they
// diverge, which mirrors how the session slot behaves everywhere else.
func (s *UserService) UpdateProfile(update ProfileUpdate) (talenthub.User, error) {
	session, err := s.sessions.Current()
	if err != nil {
		return talenthub.User{}, err
	} else if session == nil {
		return talenthub.User{}, errNotLoggedIn()
	}

	apply := func(u *talenthub.User) {
		u.FirstName = update.FirstName
		u.LastName = update.LastName
		u.Bio = update.Bio
		u.Talents = update.Talents
		if u.Talents == nil {
			u.Talents = []string{}
		}
	}

	// The collection entry may be gone; the snapshot is still updated.
	stored, err := s.users.Get(session.User.ID)
	if err != nil {
		return talenthub.User{}, err
	}
	if stored != nil {
		apply(stored)
		if err := s.users.Upsert(stored); err != nil {
			return talenthub.User{}, err
		}
	}

	apply(&session.User)
	if err := s.sessions.Save(session); err != nil {
		return talenthub.User{}, err
	}

	return session.User.Public(), nil
}

// UpdateSetting flips one of the boolean preference flags, with the same
// dual write as UpdateProfile.
func (s *UserService) UpdateSetting(name string, value bool) (talenthub.User, error) {
	session, err := s.sessions.Current()
	if err != nil {
		return talenthub.User{}, err
	} else if session == nil {
		return talenthub.User{}, errNotLoggedIn()
	}

	apply := func(u *talenthub.User) error {
		switch name {
		case "emailNotifications":
			u.EmailNotifications = value
		case "profileVisibility":
			u.ProfileVisibility = value
		case "showContact":
			u.ShowContact = value
		default:
			return errors.New(fmt.Sprintf("unknown setting %s", name), errors.BadRequest())
		}
		return nil
	}

	stored, err := s.users.Get(session.User.ID)
	if err != nil {
		return talenthub.User{}, err
	}
	if stored != nil {
		if err := apply(stored); err != nil {
			return talenthub.User{}, err
		}
		if err := s.users.Upsert(stored); err != nil {
			return talenthub.User{}, err
		}
	}

	if err := apply(&session.User); err != nil {
		return talenthub.User{}, err
	}
	if err := s.sessions.Save(session); err != nil {
		return talenthub.User{}, err
	}

	return session.User.Public(), nil
}

// Logout clears the session slot. The users collection is untouched.
func (s *UserService) Logout() error {
	return s.sessions.Clear()
}
