package tokens

import (
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

const testKey = "a-signing-key-that-is-long-enough-for-hs256"

func newTestIssuer(t *testing.T, key string) *TokenIssuer {
	issuer, err := NewIssuer(zaptest.NewLogger(t), &config.JWTConfiguration{
		Algorithm:      "HS256",
		HMACSigningKey: key,
		Expiry:         time.Minute,
	})
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	return issuer
}

func TestIssueAndVerifyPrincipal(t *testing.T) {
	assert := assert.New(t)
	issuer := newTestIssuer(t, testKey)
	verifier := NewTokenVerifier(zaptest.NewLogger(t), issuer)

	token, err := issuer.IssuePrincipalToken(&identity.Principal{
		UserID:         4,
		Username:       "andrea",
		ConsumerOrgURL: "/consumer-orgs/1/2/3",
		Permissions:    []string{identity.PermissionEditAnyApplication},
	})
	assert.NoError(err)
	signed, err := issuer.Sign(token)
	assert.NoError(err)

	parsed, err := verifier.ParseAndValidate(string(signed))
	assert.NoError(err)
	p, err := PrincipalFromToken(parsed)
	assert.NoError(err)
	assert.Equal(4, p.UserID)
	assert.Equal("andrea", p.Username)
	assert.Equal("/consumer-orgs/1/2/3", p.ConsumerOrgURL)
	assert.True(p.HasPermission(identity.PermissionEditAnyApplication))
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := newTestIssuer(t, testKey)
	other := newTestIssuer(t, testKey+"-other")
	token, _ := other.IssuePrincipalToken(&identity.Principal{UserID: 1})
	signed, err := other.Sign(token)
	assert.NoError(t, err)

	_, err = NewTokenVerifier(zaptest.NewLogger(t), issuer).ParseAndValidate(string(signed))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := newTestIssuer(t, testKey)
	token, err := jwt.NewBuilder().
		Subject("2").
		IssuedAt(time.Now().Add(-2 * time.Hour)).
		Expiration(time.Now().Add(-time.Hour)).
		Build()
	assert.NoError(t, err)
	signed, err := issuer.Sign(token)
	assert.NoError(t, err)

	_, err = NewTokenVerifier(zaptest.NewLogger(t), issuer).ParseAndValidate(string(signed))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestPrincipalRequiresNumericSubject(t *testing.T) {
	token, _ := jwt.NewBuilder().Subject("not-a-number").Build()
	_, err := PrincipalFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = PrincipalFromToken(nil)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewIssuerValidation(t *testing.T) {
	_, err := NewIssuer(zaptest.NewLogger(t), &config.JWTConfiguration{Algorithm: "RS256", HMACSigningKey: testKey})
	assert.ErrorIs(t, err, ErrUnsupportedAlg)
	_, err = NewIssuer(zaptest.NewLogger(t), &config.JWTConfiguration{Algorithm: "HS512"})
	assert.ErrorIs(t, err, ErrMissingSigningKey)

	issuer, err := NewIssuer(zaptest.NewLogger(t), &config.JWTConfiguration{Algorithm: "HS384", HMACSigningKey: testKey})
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, issuer.Expiry())
	assert.Equal(t, "HS384", issuer.Alg())
}
