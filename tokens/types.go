package tokens

import "errors"

const (
	// ClaimUsername is the claim storing the username
	ClaimUsername = "name"
	// ClaimOrganization is the claim storing the consumer organization url
	ClaimOrganization = "org"
	// ClaimPermissions is the claim storing the granted permissions
	ClaimPermissions = "perms"

	algHS256 = "HS256"
	algHS384 = "HS384"
	algHS512 = "HS512"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token has expired")
	ErrUnsupportedAlg    = errors.New("invalid jwt.alg defined. Possible values: HS256,HS384,HS512")
	ErrMissingSigningKey = errors.New("no HMAC key defined, set jwt.hmac-signing-key")
)
