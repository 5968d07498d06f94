// Package googleauth validates Google-issued ID tokens. Signing keys are
// fetched from the published JWKS endpoint and cached; an unknown key id
// triggers one refetch before the token is rejected.
package googleauth

import (
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

const (
	discoveryURL = "https://accounts.google.com/.well-known/openid-configuration"

	// Tokens arrive with either issuer spelling depending on the flow.
	issuerBare  = "accounts.google.com"
	issuerHTTPS = "https://accounts.google.com"

	keyRefreshInterval = time.Hour
	clockSkewLeeway    = 5 * time.Minute
)

// GoogleClaims represents the ID token claims this service consumes
type GoogleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
	jwt.RegisteredClaims
}

// Verifier validates ID tokens against a configured OAuth client ID
type Verifier struct {
	clientID   string
	httpClient *http.Client

	mu          sync.Mutex
	keys        map[string]*rsa.PublicKey
	lastRefresh time.Time
}

var verifier *Verifier

// Initialize sets up the package-level verifier
func Initialize(clientID string) {
	verifier = NewVerifier(clientID)
}

// NewVerifier creates a verifier for the given OAuth client ID
func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		keys:       map[string]*rsa.PublicKey{},
	}
}

// ValidateToken validates an ID token with the package-level verifier
func ValidateToken(tokenString string) (*GoogleClaims, error) {
	if verifier == nil {
		return nil, errors.New("google auth verifier not initialized")
	}
	return verifier.ValidateToken(tokenString)
}

// ValidateToken validates the signature, issuer, audience and lifetime
// of an ID token and returns its claims
func (v *Verifier) ValidateToken(tokenString string) (*GoogleClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&GoogleClaims{},
		v.keyFunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.clientID),
		jwt.WithLeeway(clockSkewLeeway),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*GoogleClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	issuer, err := claims.GetIssuer()
	if err != nil {
		return nil, err
	}
	if issuer != issuerBare && issuer != issuerHTTPS {
		return nil, fmt.Errorf("unexpected token issuer: %s", issuer)
	}
	if claims.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	return claims, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token has no key id")
	}

	key, err := v.signingKey(kid)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// signingKey returns the cached key for kid, refreshing the key set when
// the kid is unknown or the cache is stale.
func (v *Verifier) signingKey(kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok && time.Since(v.lastRefresh) < keyRefreshInterval {
		return key, nil
	}

	if err := v.refreshKeysLocked(); err != nil {
		// A previously cached key is still better than failing outright.
		if key, ok := v.keys[kid]; ok {
			return key, nil
		}
		return nil, err
	}

	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no signing key for kid %q", kid)
	}
	return key, nil
}

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (v *Verifier) refreshKeysLocked() error {
	var discovery struct {
		JWKSURI string `json:"jwks_uri"`
	}
	if err := v.getJSON(discoveryURL, &discovery); err != nil {
		return fmt.Errorf("fetch discovery document: %w", err)
	}

	var keySet struct {
		Keys []jwk `json:"keys"`
	}
	if err := v.getJSON(discovery.JWKSURI, &keySet); err != nil {
		return fmt.Errorf("fetch signing keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(keySet.Keys))
	for _, k := range keySet.Keys {
		if k.Kty != "RSA" {
			continue
		}
		key, err := parseRSAKey(k)
		if err != nil {
			continue
		}
		keys[k.Kid] = key
	}
	if len(keys) == 0 {
		return errors.New("signing key set is empty")
	}

	v.keys = keys
	v.lastRefresh = time.Now()
	return nil
}

func (v *Verifier) getJSON(url string, out interface{}) error {
	resp, err := v.httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
