package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "smartfarm", TTL: time.Hour}

	tok, err := j.Issue("user-1", "farmer")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "farmer", claims.Role)
	assert.Equal(t, "smartfarm", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "smartfarm", TTL: time.Hour}
	tok, err := j.Issue("user-1", "farmer")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different"), Issuer: "smartfarm", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := j.Issue("user-1", "farmer")
	require.NoError(t, err)

	mine := &JWTer{Secret: []byte("s3cret"), Issuer: "smartfarm", TTL: time.Hour}
	_, err = mine.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	// 过期超出 60s 容差
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "smartfarm", TTL: -2 * time.Minute}
	tok, err := j.Issue("user-1", "farmer")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "smartfarm", TTL: time.Hour}
	_, err := j.Parse("not.a.jwt")
	assert.Error(t, err)
}
