package users

import (
	"context"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
	"github.com/techspire/talenthub/jwt"
	"github.com/techspire/talenthub/services"
)

var (
	contextKey = "user"
)

func FromContext(ctx context.Context) (talenthub.User, error) {
	v := ctx.Value(contextKey)
	if v == nil {
		return talenthub.User{}, errors.New("no user", errors.Unauthorized())
	}

	user, ok := v.(talenthub.User)
	if !ok {
		return talenthub.User{}, errors.New("invalid user", errors.Unauthorized())
	}

	return user, nil
}

func extractUserID(ctx context.Context) (string, error) {
	claims := ctx.Value(kitjwt.JWTClaimsContextKey)
	if claims == nil {
		return "", errors.New("no user", errors.Unauthorized())
	}

	thClaims, ok := claims.(*jwt.Claims)
	if !ok {
		return "", errors.New("invalid claims", errors.Unauthorized())
	}

	return thClaims.UserID, nil
}

type Authenticator struct {
	service *services.UserService
}

func NewAuthenticator(s *services.UserService) *Authenticator {
	return &Authenticator{
		service: s,
	}
}

// Authenticated requires a valid token and loads the user behind it.
func (a *Authenticator) Authenticated(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, err := extractUserID(ctx)
		if err != nil {
			return nil, err
		}

		user, err := a.service.Get(userID)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.New("no user", errors.Unauthorized())
			}
			return nil, err
		}

		ctx = context.WithValue(ctx, contextKey, user)
		return next(ctx, req)
	}
}

// Optional loads the user when a token is present and lets anonymous
// requests through with no user in the context.
func (a *Authenticator) Optional(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, err := extractUserID(ctx)
		if err != nil {
			return next(ctx, req)
		}

		user, err := a.service.Get(userID)
		if err != nil {
			return next(ctx, req)
		}

		ctx = context.WithValue(ctx, contextKey, user)
		return next(ctx, req)
	}
}
