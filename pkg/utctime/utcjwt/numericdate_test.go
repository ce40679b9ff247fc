package utcjwt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aelexs/utctime/pkg/utctime"
	"github.com/aelexs/utctime/pkg/utctime/utcjwt"
	"github.com/aelexs/utctime/pkg/utctime/utctimetest"
)

var (
	fixedTime  = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	signingKey = []byte("test-signing-key")
)

func keyFunc(*jwt.Token) (any, error) { return signingKey, nil }

func TestNumericDateRoundTrip(t *testing.T) {
	in := utctime.MustNew(fixedTime)

	data, err := json.Marshal(utcjwt.ToNumericDate(in))
	require.NoError(t, err)
	assert.Equal(t, "1769940000", string(data))

	var decoded jwt.NumericDate
	require.NoError(t, json.Unmarshal(data, &decoded))

	out, ok := utcjwt.FromNumericDate(&decoded)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestFromNumericDateNil(t *testing.T) {
	_, ok := utcjwt.FromNumericDate(nil)
	assert.False(t, ok)
}

func TestWithProvider(t *testing.T) {
	clock := utctimetest.NewFakeProviderAt(fixedTime)

	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  utcjwt.IssuedAt(clock),
		ExpiresAt: utcjwt.ExpiresAt(clock, time.Hour),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	require.NoError(t, err)

	parse := func() error {
		_, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, keyFunc,
			jwt.WithValidMethods([]string{"HS256"}),
			utcjwt.WithProvider(clock),
		)
		return err
	}

	t.Run("valid before expiry", func(t *testing.T) {
		assert.NoError(t, parse())
	})

	t.Run("expired after advancing", func(t *testing.T) {
		clock.Advance(2 * time.Hour)
		err := parse()
		require.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}
