package tokens

import (
	"errors"
	"strconv"

	"github.com/eisenwinter/apicportal/identity"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"go.uber.org/zap"
)

func NewTokenVerifier(log *zap.Logger, issuer *TokenIssuer) *TokenVerifier {
	return &TokenVerifier{
		log:    log,
		issuer: issuer,
	}
}

type TokenVerifier struct {
	log    *zap.Logger
	issuer *TokenIssuer
}

// ParseAndValidate parses and validates the signed token
func (t *TokenVerifier) ParseAndValidate(raw string) (jwt.Token, error) {
	token, err := jwt.Parse([]byte(raw), t.issuer.parseOptions...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired()):
			return nil, ErrTokenExpired
		default:
			t.log.Debug("unexpected token parsing error", zap.Error(err))
			return nil, ErrInvalidToken
		}
	}
	return token, nil
}

// PrincipalFromToken maps the claims of a validated token to a principal
func PrincipalFromToken(token jwt.Token) (*identity.Principal, error) {
	if token == nil {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.Atoi(token.Subject())
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}
	p := &identity.Principal{
		UserID:      userID,
		Permissions: []string{},
	}
	if v, ok := token.Get(ClaimUsername); ok {
		p.Username, _ = v.(string)
	}
	if v, ok := token.Get(ClaimOrganization); ok {
		p.ConsumerOrgURL, _ = v.(string)
	}
	if v, ok := token.Get(ClaimPermissions); ok {
		switch perms := v.(type) {
		case []string:
			p.Permissions = append(p.Permissions, perms...)
		case []interface{}:
			for _, perm := range perms {
				if s, ok := perm.(string); ok {
					p.Permissions = append(p.Permissions, s)
				}
			}
		}
	}
	return p, nil
}
