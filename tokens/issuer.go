package tokens

import (
	"strconv"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"go.uber.org/zap"
)

const defaultExpiry = time.Hour

// TokenIssuer issues the bearer tokens carrying the caller principal
type TokenIssuer struct {
	log          *zap.Logger
	key          jwk.Key
	alg          jwa.SignatureAlgorithm
	expiry       time.Duration
	parseOptions []jwt.ParseOption
}

func checkForWeakHMAC(log *zap.Logger, alg string, key string) {
	if alg == algHS256 && len(key) <= 31 {
		log.Warn("weak secret, consider choosing another secret")
	}
	if alg == algHS384 && len(key) <= 39 {
		log.Warn("weak secret, consider choosing another secret")
	}
	if alg == algHS512 && len(key) <= 57 {
		log.Warn("weak secret, consider choosing another secret")
	}
}

// NewIssuer returns a HMAC issuer for the jwt configuration
func NewIssuer(log *zap.Logger, cfg *config.JWTConfiguration) (*TokenIssuer, error) {
	switch cfg.Algorithm {
	case algHS256, algHS384, algHS512:
	default:
		log.Error("unsupported jwt algorithm", zap.String("alg", cfg.Algorithm))
		return nil, ErrUnsupportedAlg
	}
	if cfg.HMACSigningKey == "" {
		return nil, ErrMissingSigningKey
	}
	checkForWeakHMAC(log, cfg.Algorithm, cfg.HMACSigningKey)
	key, err := jwk.FromRaw([]byte(cfg.HMACSigningKey))
	if err != nil {
		log.Error("unable to process symetric key", zap.Error(err))
		return nil, err
	}
	alg := jwa.SignatureAlgorithm(cfg.Algorithm)
	_ = key.Set(jwk.AlgorithmKey, alg)
	_ = key.Set(jwk.KeyUsageKey, "sig")

	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	return &TokenIssuer{
		log:    log,
		key:    key,
		alg:    alg,
		expiry: expiry,
		parseOptions: []jwt.ParseOption{
			jwt.WithValidate(true),
			jwt.WithKey(alg, key),
		},
	}, nil
}

// IssuePrincipalToken builds a token for the principal
func (t *TokenIssuer) IssuePrincipalToken(p *identity.Principal) (jwt.Token, error) {
	now := time.Now().UTC()
	builder := jwt.NewBuilder().
		IssuedAt(now).
		Expiration(now.Add(t.expiry)).
		Subject(strconv.Itoa(p.UserID)).
		Claim(ClaimUsername, p.Username).
		Claim(ClaimPermissions, p.Permissions)
	if p.ConsumerOrgURL != "" {
		builder.Claim(ClaimOrganization, p.ConsumerOrgURL)
	}
	return builder.Build()
}

// Sign signs the token with the configured key
func (t *TokenIssuer) Sign(token jwt.Token) ([]byte, error) {
	return jwt.Sign(token, jwt.WithKey(t.alg, t.key))
}

func (t *TokenIssuer) Alg() string {
	return string(t.alg)
}

func (t *TokenIssuer) Key() jwk.Key {
	return t.key
}

func (t *TokenIssuer) Expiry() time.Duration {
	return t.expiry
}
