package endpoints

import (
	"context"

	"github.com/techspire/talenthub/services"
	"github.com/techspire/talenthub/users"
)

type ContactEndpoint struct {
	service *services.ContactService
}

func NewContactEndpoint(service *services.ContactService) *ContactEndpoint {
	return &ContactEndpoint{
		service: service,
	}
}

func (ep *ContactEndpoint) Submit(ctx context.Context, r interface{}) (interface{}, error) {
	input, ok := r.(services.ContactInput)
	if !ok {
		return nil, errInvalidRequest
	}

	msg, err := ep.service.Submit(input)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": msg,
	}, nil
}

func (ep *ContactEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	messages, err := ep.service.List()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": messages,
	}, nil
}
