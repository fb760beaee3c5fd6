package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHexKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestAESSecretsService_RoundTrip(t *testing.T) {
	svc, err := NewAESSecretsService(testHexKey)
	require.NoError(t, err)

	enc, err := svc.Encrypt("provider-api-key-123")
	require.NoError(t, err)
	assert.NotEqual(t, "provider-api-key-123", enc)

	dec, err := svc.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "provider-api-key-123", dec)
}

func TestAESSecretsService_NonDeterministicCiphertext(t *testing.T) {
	svc, err := NewAESSecretsService(testHexKey)
	require.NoError(t, err)

	a, err := svc.Encrypt("same-plaintext")
	require.NoError(t, err)
	b, err := svc.Encrypt("same-plaintext")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAESSecretsService_InvalidKey(t *testing.T) {
	_, err := NewAESSecretsService("zzzz")
	assert.Error(t, err)

	_, err = NewAESSecretsService("abcd1234")
	assert.Error(t, err)
}

func TestAESSecretsService_DecryptGarbage(t *testing.T) {
	svc, err := NewAESSecretsService(testHexKey)
	require.NoError(t, err)

	_, err = svc.Decrypt("not-hex")
	assert.Error(t, err)

	_, err = svc.Decrypt("abcd")
	assert.Error(t, err)

	_, err = svc.Decrypt(strings.Repeat("ab", 40))
	assert.Error(t, err)
}
