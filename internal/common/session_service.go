package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fieldflow/backoffice/internal/constants"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionData is one operator's dashboard session.
type SessionData struct {
	SessionID  string    `json:"session_id"`
	OperatorID string    `json:"operator_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SessionService manages operator sessions in Redis.
type SessionService struct {
	redis *redis.Client
}

func NewSessionService(redis *redis.Client) *SessionService {
	return &SessionService{redis: redis}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// CreateSession stores a new session and returns it. The TTL matches a
// working shift with margin; there is no refresh.
func (s *SessionService) CreateSession(ctx context.Context, operatorID, name string) (*SessionData, error) {
	now := time.Now()
	ttl := time.Duration(constants.SessionTTLHours) * time.Hour

	session := SessionData{
		SessionID:  uuid.New().String(),
		OperatorID: operatorID,
		Name:       name,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &session, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, sessionKey(sessionID)).Err()
}
