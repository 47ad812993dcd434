package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"inkwell-blog/app/server/constants"
)

// ErrNoSession is returned when a token does not map to a live session,
// whether because it is invalid, expired, or was destroyed by logout.
var ErrNoSession = errors.New("no active session")

// Manager keeps sessions in Redis keyed by a random session ID, and hands the
// ID to the browser inside a signed token so cookies cannot be forged.
type Manager struct {
	rdb *redis.Client
	key []byte
	ttl time.Duration
}

func New(rdb *redis.Client, signKey string, ttl time.Duration) (*Manager, error) {
	if len(signKey) == 0 {
		return nil, errors.New("signature key is empty")
	}

	return &Manager{rdb: rdb, key: []byte(signKey), ttl: ttl}, nil
}

// Create stores a new session for the user and returns the signed cookie
// token together with its expiry.
func (m *Manager) Create(ctx context.Context, userID uint) (string, time.Time, error) {
	sid := uuid.NewString()
	expires := time.Now().Add(m.ttl)

	if err := m.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeySession, sid), uint64(userID), m.ttl).Err(); err != nil {
		return "", time.Time{}, fmt.Errorf("store session: %w", err)
	}

	// Sign the session ID into the cookie token
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, expires, nil
}

func (m *Manager) sid(tokenString string) (string, error) {
	if len(tokenString) == 0 {
		return "", errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return "", errors.New("invalid session token")
	}

	return sid, nil
}

// Resolve maps a cookie token back to the user ID it was created for.
func (m *Manager) Resolve(ctx context.Context, tokenString string) (uint, error) {
	sid, err := m.sid(tokenString)
	if err != nil {
		return 0, ErrNoSession
	}

	userID, err := m.rdb.Get(ctx, fmt.Sprintf(constants.CacheKeySession, sid)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("load session: %w", err)
	}

	return uint(userID), nil
}

// Destroy removes the session; the token itself becomes useless afterwards.
func (m *Manager) Destroy(ctx context.Context, tokenString string) error {
	sid, err := m.sid(tokenString)
	if err != nil {
		// nothing that could still resolve
		return nil
	}

	if err := m.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySession, sid)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
