package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("utils-test")
	id := uuid.New()

	token, err := GenerateJWT(id, "a@example.com", 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "material-map", claims.Issuer)
}

func TestValidateJWTRejects(t *testing.T) {
	SetJWTSecret("utils-test")

	expired, err := GenerateJWT(uuid.New(), "a@example.com", -1)
	require.NoError(t, err)
	_, err = ValidateJWT(expired)
	assert.Error(t, err)

	SetJWTSecret("other-secret")
	foreign, err := GenerateJWT(uuid.New(), "a@example.com", 1)
	require.NoError(t, err)
	SetJWTSecret("utils-test")
	_, err = ValidateJWT(foreign)
	assert.Error(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := noSubject.SignedString([]byte("utils-test"))
	require.NoError(t, err)
	_, err = ValidateJWT(signed)
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidationErrors(t *testing.T) {
	type request struct {
		Name     string   `validate:"required,notblank"`
		Email    string   `validate:"required,email"`
		Latitude *float64 `validate:"omitempty,gte=-90,lte=90"`
	}
	lat := 95.0

	errs := GetValidationErrors(ValidateStruct(&request{Name: "   ", Email: "nope", Latitude: &lat}))
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "notblank", byField["name"].Tag)
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "Latitude must be less than or equal to 90", byField["latitude"].Message)

	assert.Empty(t, GetValidationErrors(ValidateStruct(&request{Name: "x", Email: "x@example.com"})))
}
