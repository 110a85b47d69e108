package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techspire/talenthub/errors"
)

func createUserService() (*UserService, *inMemUserStore, *inMemSessionStore) {
	users := newInMemUserStore()
	sessions := &inMemSessionStore{}
	service := NewUserService(users, sessions, fakeTokenEncoder{})
	return service, users, sessions
}

func registration() RegisterInput {
	return RegisterInput{
		FirstName: "Sita",
		LastName:  "Sharma",
		Email:     "sita.sharma@cps.edu.np",
		Password:  "sup3rsecret",
		StudentID: "CPS-1234",
		Talents:   []string{"sitar"},
	}
}

func TestUserService_Register(t *testing.T) {
	service, _, sessions := createUserService()

	user, err := service.Register(registration())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "sita.sharma@cps.edu.np", user.Email)
	assert.False(t, user.JoinDate.IsZero())
	assert.Empty(t, user.PasswordHash)
	assert.Empty(t, user.Salt)

	// Default preference flags.
	assert.True(t, user.EmailNotifications)
	assert.True(t, user.ProfileVisibility)
	assert.False(t, user.ShowContact)

	// Registering does not log in.
	session, err := sessions.Current()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestUserService_Register_Validation(t *testing.T) {
	service, users, _ := createUserService()

	tts := map[string]func(*RegisterInput){
		"missing first name": func(in *RegisterInput) { in.FirstName = "" },
		"missing last name":  func(in *RegisterInput) { in.LastName = "" },
		"missing email":      func(in *RegisterInput) { in.Email = "" },
		"missing password":   func(in *RegisterInput) { in.Password = "" },
		"wrong email domain": func(in *RegisterInput) { in.Email = "x@gmail.com" },
		"password too short": func(in *RegisterInput) { in.Password = "shrt" },
	}

	for name, mutate := range tts {
		t.Run(name, func(t *testing.T) {
			input := registration()
			mutate(&input)
			_, err := service.Register(input)
			errors.AssertCode(t, err, http.StatusBadRequest)
		})
	}

	all, err := users.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _, _ := createUserService()

	_, err := service.Register(registration())
	require.NoError(t, err)

	_, err = service.Register(registration())
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestUserService_Authenticate(t *testing.T) {
	service, _, sessions := createUserService()

	registered, err := service.Register(registration())
	require.NoError(t, err)

	user, token, err := service.Authenticate("sita.sharma@cps.edu.np", "sup3rsecret", true)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "token-"+user.ID, token)
	assert.Empty(t, user.PasswordHash)

	session, err := sessions.Current()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, registered.ID, session.User.ID)
	assert.True(t, session.Remember)
}

func TestUserService_Authenticate_BadCredentials(t *testing.T) {
	service, _, sessions := createUserService()

	_, err := service.Register(registration())
	require.NoError(t, err)

	_, _, err = service.Authenticate("sita.sharma@cps.edu.np", "wrongpassword", false)
	errors.AssertCode(t, err, http.StatusUnauthorized)

	_, _, err = service.Authenticate("nobody@cps.edu.np", "sup3rsecret", false)
	errors.AssertCode(t, err, http.StatusUnauthorized)

	session, err := sessions.Current()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestUserService_UpdateProfile(t *testing.T) {
	service, users, sessions := createUserService()

	_, err := service.UpdateProfile(ProfileUpdate{FirstName: "Sita"})
	errors.AssertCode(t, err, http.StatusUnauthorized)

	registered, err := service.Register(registration())
	require.NoError(t, err)
	_, _, err = service.Authenticate("sita.sharma@cps.edu.np", "sup3rsecret", false)
	require.NoError(t, err)

	updated, err := service.UpdateProfile(ProfileUpdate{
		FirstName: "Gita",
		LastName:  "Sharma",
		Bio:       "Sitar player",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gita", updated.FirstName)
	assert.Equal(t, "Sitar player", updated.Bio)
	assert.Equal(t, []string{}, updated.Talents)

	// Both the collection entry and the session snapshot moved.
	stored, err := users.Get(registered.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Gita", stored.FirstName)

	session, err := sessions.Current()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Gita", session.User.FirstName)

	// Credentials survive a profile update.
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEmpty(t, stored.Salt)
}

func TestUserService_UpdateSetting(t *testing.T) {
	service, users, _ := createUserService()

	registered, err := service.Register(registration())
	require.NoError(t, err)
	_, _, err = service.Authenticate("sita.sharma@cps.edu.np", "sup3rsecret", false)
	require.NoError(t, err)

	updated, err := service.UpdateSetting("showContact", true)
	require.NoError(t, err)
	assert.True(t, updated.ShowContact)

	updated, err = service.UpdateSetting("emailNotifications", false)
	require.NoError(t, err)
	assert.False(t, updated.EmailNotifications)

	stored, err := users.Get(registered.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.ShowContact)
	assert.False(t, stored.EmailNotifications)

	_, err = service.UpdateSetting("darkMode", true)
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestUserService_Logout(t *testing.T) {
	service, users, sessions := createUserService()

	_, err := service.Register(registration())
	require.NoError(t, err)
	_, _, err = service.Authenticate("sita.sharma@cps.edu.np", "sup3rsecret", false)
	require.NoError(t, err)

	require.NoError(t, service.Logout())

	session, err := sessions.Current()
	require.NoError(t, err)
	assert.Nil(t, session)

	// The account itself is untouched.
	all, err := users.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
