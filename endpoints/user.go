package endpoints

import (
	"context"
	"net/http"

	"github.com/techspire/talenthub/services"
	"github.com/techspire/talenthub/users"
)

type UserEndpoint struct {
	service *services.UserService
}

func NewUserEndpoint(service *services.UserService) *UserEndpoint {
	return &UserEndpoint{
		service: service,
	}
}

func (ep *UserEndpoint) SignUp(ctx context.Context, r interface{}) (interface{}, error) {
	input, ok := r.(services.RegisterInput)
	if !ok {
		return nil, errInvalidRequest
	}

	user, err := ep.service.Register(input)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": user,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func (ep *UserEndpoint) Login(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(LoginRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	user, token, err := ep.service.Authenticate(req.Email, req.Password, req.Remember)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data":  user,
		"token": token,
	}, nil
}

func (ep *UserEndpoint) Logout(ctx context.Context, r interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	if err := ep.service.Logout(); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *UserEndpoint) Me(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": user.Public(),
	}, nil
}

func (ep *UserEndpoint) UpdateProfile(ctx context.Context, r interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	update, ok := r.(services.ProfileUpdate)
	if !ok {
		return nil, errInvalidRequest
	}

	user, err := ep.service.UpdateProfile(update)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": user,
	}, nil
}

type UpdateSettingRequest struct {
	Name  string
	Value bool
}

func (ep *UserEndpoint) UpdateSetting(ctx context.Context, r interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	req, ok := r.(UpdateSettingRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	user, err := ep.service.UpdateSetting(req.Name, req.Value)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": user,
	}, nil
}
