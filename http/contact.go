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

func RegisterContactEndpoints(srv Server, service *services.ContactService, jwtKey []byte, authenticator *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewContactEndpoint(service)

	submitHandler := kithttp.NewServer(
		ep.Submit,
		decodeContactRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.List)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/contact", "POST", submitHandler)
	srv.RegisterHandler("/contact", "GET", listHandler)
}

func decodeContactRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var input services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return input, nil
}
