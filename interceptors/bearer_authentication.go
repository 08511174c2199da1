package interceptors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/golang-jwt/jwt/v5"
)

// BearerAuthenticationInterceptor verifies the bearer token of a request with the tenant signing secret
type BearerAuthenticationInterceptor struct {
	Secret []byte
}

// BearerAuthenticationIntercept checks the request carries a valid token and stores the caller in the context
func (interceptor BearerAuthenticationInterceptor) BearerAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := helpers.GetBearerToken(r)
		if token == "" {
			log.InfoR(r, "BearerAuthenticationInterceptor unauthorised: no bearer token")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		caller, err := interceptor.parseCaller(token)
		if err != nil {
			log.InfoR(r, "BearerAuthenticationInterceptor unauthorised", log.Data{"reason": err.Error()})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyCaller, caller)
		ctx = context.WithValue(ctx, authentication.ContextKeyUserDetails, authentication.AuthUserDetails{
			ID:    caller.UserID,
			Email: caller.Email,
		})
		log.DebugR(r, "BearerAuthenticationInterceptor proceeding with caller in context", log.Data{"tenant_id": caller.TenantID, "role": caller.Role})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (interceptor BearerAuthenticationInterceptor) parseCaller(token string) (models.Caller, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return interceptor.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Caller{}, fmt.Errorf("invalid token: %v", err)
	}

	switch {
	case claims.Subject == "":
		return models.Caller{}, errors.New("token has no subject")
	case claims.TenantID == "":
		return models.Caller{}, errors.New("token has no tenant")
	case claims.Role != models.RoleAdmin && claims.Role != models.RoleStudent:
		return models.Caller{}, fmt.Errorf("token role [%s] not recognised", claims.Role)
	}

	return models.Caller{
		TenantID: claims.TenantID,
		UserID:   claims.Subject,
		Role:     claims.Role,
		Email:    claims.Email,
	}, nil
}
