package interceptors

import (
	"context"
	"net/http"
	"time"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-signing-secret")

func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

func signToken(method jwt.SigningMethod, secret []byte, claims models.TokenClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		panic(err)
	}
	return token
}

func validClaims(role string) models.TokenClaims {
	return models.TokenClaims{
		TenantID: "tenant-1",
		Role:     role,
		Email:    "student@school.example",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "student-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func withCaller(req *http.Request, caller models.Caller) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyCaller, caller))
}
