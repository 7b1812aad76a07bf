package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
	assert.False(t, CheckPasswordHash("password123", "not-a-hash"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("test@example.com"))
	assert.True(t, IsEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("missing@domain@twice.com"))
	assert.False(t, IsEmail(""))
}
