package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventadeautos-cli/pkg/token"
)

const (
	testSecret = "secreto-solo-para-tests"
	testIssuer = "ventadeautos-test"
)

func TestGenerateYDecode_RoundTrip(t *testing.T) {
	tok, err := token.Generate(testSecret, "42", "admin@autos.test", "ADMIN", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := token.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "admin@autos.test", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestGenerate_SinSecret_Error(t *testing.T) {
	_, err := token.Generate("", "1", "a@b.c", "CLIENTE", testIssuer, 60)
	assert.Error(t, err)
}

// DecodeUnverified no valida firma: un token firmado con otro secret sigue
// siendo legible (la autorización real la aplica el backend).
func TestDecodeUnverified_IgnoraFirma(t *testing.T) {
	tok, err := token.Generate("otro-secret", "7", "c@d.e", "CLIENTE", testIssuer, 60)
	require.NoError(t, err)

	claims, err := token.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, "CLIENTE", claims.Role)
}

func TestDecodeUnverified_TokenBasura_Error(t *testing.T) {
	_, err := token.DecodeUnverified("no.es.jwt-valido")
	assert.Error(t, err)
}
