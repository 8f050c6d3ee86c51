package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/pkg/jwt"
)

const (
	testSecret = "test-secret"
	testUser   = "00000000-0000-0000-0000-000000000001"
	testAcct   = "00000000-0000-0000-0000-000000000002"
)

func TestGenerateYParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUser, testAcct, "comercio-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, accountID, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
	assert.Equal(t, testAcct, accountID)
}

func TestGenerate_SecretVacioRetornaError(t *testing.T) {
	_, err := jwt.Generate("", testUser, testAcct, "comercio-api", 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrectaRetornaError(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUser, testAcct, "comercio-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpiradoRetornaError(t *testing.T) {
	tok, err := jwt.Generate(testSecret, testUser, testAcct, "comercio-api", -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_TokenMalformadoRetornaError(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
