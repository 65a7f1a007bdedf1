// Package auth gates the admin surface behind the configured shared
// secrets. The successful-login record (flag plus issue timestamp) lives in
// the durable store; validity is a rolling window computed at read time.
package auth

import (
	"crypto/subtle"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/insiderdeals/storefront/internal/store"
	"github.com/insiderdeals/storefront/pkg/common"
)

var (
	// ErrNotConfigured means the secrets are absent; comparison is never
	// attempted.
	ErrNotConfigured = errors.New("auth: admin credentials not configured")
	// ErrInvalidCredentials does not distinguish which field was wrong.
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	// ErrTooManyAttempts trips when the failure throttle is exceeded.
	ErrTooManyAttempts = errors.New("auth: too many failed attempts")
)

// Config for an Authenticator. Username/Password are the configured shared
// secrets; empty values leave the gate unconfigured.
type Config struct {
	Username    string
	Password    string
	TokenSecret string
	TTL         time.Duration
	MaxAttempts int
	Window      time.Duration
	Now         func() time.Time
}

// Authenticator verifies submitted credentials and manages the session
// record.
type Authenticator struct {
	kv  store.KVStore
	cfg Config

	mu       sync.Mutex
	failures []time.Time
}

func New(kv store.KVStore, cfg Config) *Authenticator {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Authenticator{kv: kv, cfg: cfg}
}

// Authenticate compares both fields against the configured secrets. On
// success it persists the session flag plus issue timestamp and returns a
// signed session token carrying the same expiry. On mismatch it reports a
// generic failure and leaves no session state behind.
func (a *Authenticator) Authenticate(username, password string) (string, error) {
	if a.cfg.Username == "" || a.cfg.Password == "" {
		return "", ErrNotConfigured
	}
	if a.throttled() {
		return "", ErrTooManyAttempts
	}

	salt := common.GetSecretSalt()
	userOK := hashEqual(username, a.cfg.Username, salt)
	passOK := hashEqual(password, a.cfg.Password, salt)
	if !userOK || !passOK {
		a.recordFailure()
		return "", ErrInvalidCredentials
	}

	now := a.cfg.Now()
	if err := a.kv.Put(store.KeySessionAuth, []byte("true")); err != nil {
		return "", errors.Wrap(err, "persist session flag")
	}
	if err := a.kv.Put(store.KeySessionTime, []byte(strconv.FormatInt(now.UnixMilli(), 10))); err != nil {
		return "", errors.Wrap(err, "persist session timestamp")
	}

	token, err := a.signToken(now)
	if err != nil {
		return "", err
	}
	zap.L().Info("admin authenticated", zap.Time("issued_at", now))
	return token, nil
}

// hashEqual compares salted digests in constant time; raw secrets never meet
// a plain string comparison.
func hashEqual(submitted, configured, salt string) bool {
	a := common.Sha256HashWithSalt(submitted, salt)
	b := common.Sha256HashWithSalt(configured, salt)
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (a *Authenticator) throttled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	cutoff := a.cfg.Now().Add(-a.cfg.Window)
	kept := a.failures[:0]
	for _, t := range a.failures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	a.failures = kept
	return len(a.failures) >= a.cfg.MaxAttempts
}

func (a *Authenticator) recordFailure() {
	a.mu.Lock()
	a.failures = append(a.failures, a.cfg.Now())
	a.mu.Unlock()
}

// Valid reports whether a non-expired session record exists. The window is
// recomputed from the stored issue timestamp on every call; an expired
// record is cleared so re-authentication is forced.
func (a *Authenticator) Valid() bool {
	flag, err := a.kv.Get(store.KeySessionAuth)
	if err != nil || string(flag) != "true" {
		return false
	}
	raw, err := a.kv.Get(store.KeySessionTime)
	if err != nil {
		return false
	}
	issued, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return false
	}
	age := a.cfg.Now().Sub(time.UnixMilli(issued))
	if age >= a.cfg.TTL {
		a.Logout()
		return false
	}
	return true
}

// Logout clears the session record unconditionally.
func (a *Authenticator) Logout() {
	_ = a.kv.Delete(store.KeySessionAuth)
	_ = a.kv.Delete(store.KeySessionTime)
}

// SweepExpired drops an expired session record if one is lying around; used
// by the hourly maintenance job.
func (a *Authenticator) SweepExpired() {
	_ = a.Valid()
}

// TokenSecret exposes the signing secret for the web layer's JWT middleware.
func (a *Authenticator) TokenSecret() string {
	return a.cfg.TokenSecret
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (a *Authenticator) signToken(now time.Time) (string, error) {
	claims := sessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(a.cfg.TokenSecret))
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}
	return signed, nil
}

// VerifyToken checks the token signature and expiry, then re-checks the
// stored session window so a cleared or expired record invalidates every
// outstanding token.
func (a *Authenticator) VerifyToken(token string) error {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.cfg.TokenSecret), nil
	}, jwt.WithTimeFunc(a.cfg.Now))
	if err != nil {
		return errors.Wrap(err, "parse session token")
	}
	if !a.Valid() {
		return ErrInvalidCredentials
	}
	return nil
}
