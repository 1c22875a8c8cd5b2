package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateParse(t *testing.T) {
	token, err := Generate(secret, "u-1", "gerente1", false, "tienda-api", 60)
	require.NoError(t, err)

	claims, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "gerente1", claims.Username)
	assert.False(t, claims.Superuser)
	assert.Equal(t, "tienda-api", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate(secret, "u-1", "admin1", true, "tienda-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := Generate(secret, "u-1", "admin1", false, "tienda-api", -1)
	require.NoError(t, err)

	_, err = Parse(secret, token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u-1", "x", false, "", 60)
	assert.Error(t, err)
	_, err = Parse("", "abc")
	assert.Error(t, err)
}
