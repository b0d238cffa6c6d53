// Package auth verifies Google Sign-In ID tokens and models the verified
// caller identity. Token verification is the only trusted source of
// name/email in the system; everything downstream treats Identity as
// authoritative.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

// ErrInvalidToken is returned for tokens that fail signature, issuer,
// audience, or expiry checks.
var ErrInvalidToken = errors.New("auth: invalid identity token")

// ErrNotConfigured is returned when no Google client ID is configured.
var ErrNotConfigured = errors.New("auth: google sign-in is not configured")

// Identity is the verified caller identity. Replaced wholesale on
// re-authentication; never mutated field by field.
type Identity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

type googleClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleVerifier validates Google-issued ID tokens against Google's JWKS.
type GoogleVerifier struct {
	clientID string
	jwksURL  string
	client   *http.Client

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

// VerifierOption customizes a GoogleVerifier.
type VerifierOption func(*GoogleVerifier)

// WithJWKSURL overrides the JWKS endpoint. Intended for tests.
func WithJWKSURL(url string) VerifierOption {
	return func(v *GoogleVerifier) {
		v.jwksURL = url
	}
}

// NewGoogleVerifier creates a verifier bound to the given OAuth client ID.
// An empty client ID yields a verifier that fails closed with
// ErrNotConfigured.
func NewGoogleVerifier(clientID string, opts ...VerifierOption) *GoogleVerifier {
	v := &GoogleVerifier{
		clientID: clientID,
		jwksURL:  googleJWKSURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Configured reports whether a client ID is set.
func (v *GoogleVerifier) Configured() bool {
	return v != nil && v.clientID != ""
}

// Verify checks the ID token and returns the identity it asserts.
func (v *GoogleVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	if !v.Configured() {
		return nil, ErrNotConfigured
	}
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &googleClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing key id", ErrInvalidToken)
	}

	pubKey, err := v.publicKey(ctx, kid)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims := &googleClaims{}
	validated, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return pubKey, nil
	}, jwt.WithAudience(v.clientID), jwt.WithExpirationRequired())
	if err != nil || !validated.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !validIssuer(claims.Issuer) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email", ErrInvalidToken)
	}

	return &Identity{
		Name:    claims.Name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}, nil
}

func validIssuer(iss string) bool {
	for _, allowed := range googleIssuers {
		if iss == allowed {
			return true
		}
	}
	return false
}

// publicKey returns the cached JWKS key for kid, refreshing the cache when
// it is stale or the kid is unknown.
func (v *GoogleVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	if time.Now().Before(v.expires) {
		if key, ok := v.keys[kid]; ok {
			v.mu.RUnlock()
			return key, nil
		}
	}
	v.mu.RUnlock()

	keys, err := v.fetchJWKS(ctx)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.keys = keys
	v.expires = time.Now().Add(1 * time.Hour)
	v.mu.Unlock()

	key, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("key %s not found in JWKS", kid)
	}
	return key, nil
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (v *GoogleVerifier) fetchJWKS(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS request failed with status %d", resp.StatusCode)
	}

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}
		pubKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		keys[key.Kid] = pubKey
	}

	if len(keys) == 0 {
		return nil, errors.New("no valid RSA keys found in JWKS")
	}
	return keys, nil
}

// parseRSAPublicKey parses RSA public key components from base64url-encoded
// strings.
func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	n := new(big.Int).SetBytes(nBytes)
	e := 0
	for _, b := range eBytes {
		e = e<<8 + int(b)
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}
