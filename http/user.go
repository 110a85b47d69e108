package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/techspire/talenthub/errors"
	"github.com/techspire/talenthub/jwt"
	"github.com/techspire/talenthub/users"

	"github.com/techspire/talenthub/endpoints"
	"github.com/techspire/talenthub/services"
)

func RegisterUserEndpoints(srv Server, service *services.UserService, jwtKey []byte, authenticator *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewUserEndpoint(service)

	signUpHandler := kithttp.NewServer(
		ep.SignUp,
		decodeSignUpRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	loginHandler := kithttp.NewServer(
		ep.Login,
		decodeLoginRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	logoutHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Logout)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	meHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Me)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateProfileHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.UpdateProfile)),
		decodeUpdateProfileRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateSettingHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.UpdateSetting)),
		decodeUpdateSettingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/auth/signup", "POST", signUpHandler)
	srv.RegisterHandler("/auth/login", "POST", loginHandler)
	srv.RegisterHandler("/auth/logout", "POST", logoutHandler)
	srv.RegisterHandler("/auth/me", "GET", meHandler)
	srv.RegisterHandler("/account/profile", "PUT", updateProfileHandler)
	srv.RegisterHandler("/account/settings/:name", "PUT", updateSettingHandler)
}

func decodeSignUpRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return input, nil
}

func decodeLoginRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return req, nil
}

func decodeUpdateProfileRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return update, nil
}

func decodeUpdateSettingRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)

	var body struct {
		Value bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return endpoints.UpdateSettingRequest{
		Name:  params["name"],
		Value: body.Value,
	}, nil
}
