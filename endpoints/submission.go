package endpoints

import (
	"context"
	"net/http"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
	"github.com/techspire/talenthub/services"
	"github.com/techspire/talenthub/users"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request")
)

type SubmissionEndpoint struct {
	service *services.SubmissionService
}

func NewSubmissionEndpoint(service *services.SubmissionService) *SubmissionEndpoint {
	return &SubmissionEndpoint{
		service: service,
	}
}

type GalleryRequest struct {
	Category string
	Params   talenthub.QueryParams
}

func (ep *SubmissionEndpoint) Gallery(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(GalleryRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	res, err := ep.service.Gallery(req.Category, req.Params)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data":       res.Submissions,
		"pagination": res.Pagination,
	}, nil
}

func (ep *SubmissionEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	input, ok := r.(services.CreateSubmissionInput)
	if !ok {
		return nil, errInvalidRequest
	}

	sub, err := ep.service.Create(user, input)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": sub,
	}, nil
}

func (ep *SubmissionEndpoint) Detail(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	detail, err := ep.service.Detail(id)
	if err != nil {
		return nil, err
	}

	// The viewer is optional here: owned drives the delete button.
	owned := false
	if user, err := users.FromContext(ctx); err == nil {
		owned = user.ID == detail.UserID
	}

	return map[string]interface{}{
		"data":  detail,
		"owned": owned,
	}, nil
}

func (ep *SubmissionEndpoint) Like(ctx context.Context, r interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	sub, err := ep.service.Like(id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": sub,
	}, nil
}

func (ep *SubmissionEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(user, id); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *SubmissionEndpoint) Trending(ctx context.Context, r interface{}) (interface{}, error) {
	limit, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	subs, err := ep.service.Trending(limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": subs,
	}, nil
}

func (ep *SubmissionEndpoint) Mine(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := ep.service.Mine(user)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": subs,
	}, nil
}

func (ep *SubmissionEndpoint) Stats(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := ep.service.OwnerStats(user.ID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": stats,
	}, nil
}

type SuggestRequest struct {
	Q     string
	Limit int
}

func (ep *SubmissionEndpoint) Suggest(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SuggestRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	suggestions, err := ep.service.Suggest(req.Q, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": suggestions,
	}, nil
}

type SubcategoriesRequest struct {
	Category string
	Prefix   string
}

func (ep *SubmissionEndpoint) Subcategories(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SubcategoriesRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	subcategories, err := ep.service.Subcategories(req.Category, req.Prefix)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": subcategories,
	}, nil
}

// statusCoder is useful to return http responses with a status that is not 200 but is not
// an error either.
type statusCoder struct {
	code int
}

func (s statusCoder) StatusCode() int { return s.code }
