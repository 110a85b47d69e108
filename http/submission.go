package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
	"github.com/techspire/talenthub/jwt"
	"github.com/techspire/talenthub/users"

	"github.com/techspire/talenthub/endpoints"
	"github.com/techspire/talenthub/services"
)

func RegisterSubmissionEndpoints(srv Server, service *services.SubmissionService, jwtKey []byte, authenticator *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)
	optionalJWT := jwt.OptionalMiddleware(jwtKey)

	ep := endpoints.NewSubmissionEndpoint(service)

	// Gallery handler
	galleryHandler := kithttp.NewServer(
		ep.Gallery,
		decodeGalleryRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Create submission handler
	createHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Create)),
		decodeCreateSubmissionRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Detail handler. The viewer is optional.
	detailHandler := kithttp.NewServer(
		optionalJWT(authenticator.Optional(ep.Detail)),
		decodeSubmissionIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Like handler
	likeHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Like)),
		decodeSubmissionIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Delete handler
	deleteHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Delete)),
		decodeSubmissionIDRequest, // Decoder is the same as detail
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Trending handler
	trendingHandler := kithttp.NewServer(
		ep.Trending,
		decodeTrendingRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Own submissions handler
	mineHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Mine)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Owner stats handler
	statsHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Stats)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Suggest handler
	suggestHandler := kithttp.NewServer(
		ep.Suggest,
		decodeSuggestRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Subcategories handler
	subcategoriesHandler := kithttp.NewServer(
		ep.Subcategories,
		decodeSubcategoriesRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Register all handlers
	srv.RegisterHandler("/gallery", "POST", createHandler)
	srv.RegisterHandler("/gallery/:category", "GET", galleryHandler)
	srv.RegisterHandler("/gallery/:category/:id", "GET", detailHandler)
	srv.RegisterHandler("/gallery/:category/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/gallery/:category/:id/like", "POST", likeHandler)
	srv.RegisterHandler("/trending", "GET", trendingHandler)
	srv.RegisterHandler("/suggest", "GET", suggestHandler)
	srv.RegisterHandler("/subcategories/:category", "GET", subcategoriesHandler)
	srv.RegisterHandler("/account/submissions", "GET", mineHandler)
	srv.RegisterHandler("/account/stats", "GET", statsHandler)
}

func decodeGalleryRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)

	req := endpoints.GalleryRequest{Category: params["category"]}
	req.Params.Subcategory = r.URL.Query().Get("subcategory")
	req.Params.Search = r.URL.Query().Get("q")
	req.Params.Sort = talenthub.SortKey(r.URL.Query().Get("sort"))

	page := r.URL.Query().Get("page")
	if page != "" {
		var err error
		req.Params.Page, err = strconv.Atoi(page)
		if err != nil {
			return nil, errors.New("invalid parameter: page", errors.BadRequest(), errors.WithCause(err))
		}
	}

	pageSize := r.URL.Query().Get("pageSize")
	if pageSize != "" {
		var err error
		req.Params.PageSize, err = strconv.Atoi(pageSize)
		if err != nil {
			return nil, errors.New("invalid parameter: pageSize", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return req, nil
}

func decodeSubmissionIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["id"], nil
}

func decodeCreateSubmissionRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var input services.CreateSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return input, nil
}

func decodeTrendingRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid parameter: limit", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return limit, nil
}

func decodeSuggestRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	req := endpoints.SuggestRequest{Q: r.URL.Query().Get("q")}

	limit := r.URL.Query().Get("limit")
	if limit != "" {
		var err error
		req.Limit, err = strconv.Atoi(limit)
		if err != nil {
			return nil, errors.New("invalid parameter: limit", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return req, nil
}

func decodeSubcategoriesRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return endpoints.SubcategoriesRequest{
		Category: params["category"],
		Prefix:   r.URL.Query().Get("prefix"),
	}, nil
}

func decodeEmptyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}
