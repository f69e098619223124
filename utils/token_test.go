package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := SignAccessToken(42, time.Minute)
	require.NoError(t, err)

	id, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	_, err := ParseAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	token, err := SignAccessToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
