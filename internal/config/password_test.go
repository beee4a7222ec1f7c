package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cost string
	}{
		{"too low", "9"},
		{"too high", "15"},
		{"not a number", "daug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)

			cfg, err := NewPasswordConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("slaptazodis123")
	require.NoError(t, err)
	assert.NotEqual(t, "slaptazodis123", hash)

	assert.True(t, cfg.VerifyPassword("slaptazodis123", hash))
	assert.False(t, cfg.VerifyPassword("neteisingas", hash))
}

func TestPasswordConfig_HashesAreSalted(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	first, err := cfg.HashPassword("slaptazodis123")
	require.NoError(t, err)
	second, err := cfg.HashPassword("slaptazodis123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, cfg.VerifyPassword("slaptazodis123", first))
	assert.True(t, cfg.VerifyPassword("slaptazodis123", second))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "slaptas-prieskoniai"}

	hash, err := peppered.HashPassword("slaptazodis123")
	require.NoError(t, err)
	assert.True(t, peppered.VerifyPassword("slaptazodis123", hash))

	// Without the pepper the same password no longer verifies.
	plain := &PasswordConfig{BcryptCost: 10}
	assert.False(t, plain.VerifyPassword("slaptazodis123", hash))
}

func TestPasswordConfig_VerifyRejectsGarbageHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}
	assert.False(t, cfg.VerifyPassword("slaptazodis123", "ne-bcrypt-hashas"))
}
