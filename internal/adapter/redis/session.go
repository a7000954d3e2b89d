package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	sessionKeyPrefix = "adpilot:session:"
	lockKeyPrefix    = "adpilot:lock:"
	releaseTimeout   = 2 * time.Second
)

// releaseScript deletes the lock only if it still holds our token, so an
// expired lock taken over by another turn is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// SessionStore keeps conversation sessions in redis as JSON documents.
type SessionStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
	logger  *slog.Logger
}

// NewSessionStore builds a store whose sessions expire ttl after the last
// turn. lockTTL is how long a lock outlives a holder that stopped
// refreshing it.
func NewSessionStore(client *redis.Client, ttl, lockTTL time.Duration, logger *slog.Logger) *SessionStore {
	return &SessionStore{client: client, ttl: ttl, lockTTL: lockTTL, logger: logger}
}

// Load returns the stored session or a fresh idle one.
func (s *SessionStore) Load(ctx context.Context, conversationID string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+conversationID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Session{
			ConversationID: conversationID,
			Dialogue:       domain.DialogueState{Stage: domain.StageIdle},
			Control:        domain.ControlState{Stage: domain.ControlIdle},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", conversationID, err)
	}

	var sess domain.Session
	if err = json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", conversationID, err)
	}
	sess.ConversationID = conversationID
	return &sess, nil
}

// Save stores the session and refreshes its expiry.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.ConversationID, raw, s.ttl).Err()
}

// Lock takes the per-conversation lock. It fails fast with
// port.ErrConversationBusy instead of waiting. While held, the lock is
// extended every third of lockTTL so a slow turn keeps it.
func (s *SessionStore) Lock(ctx context.Context, conversationID string) (func(), error) {
	key := lockKeyPrefix + conversationID
	token := uuid.NewString()

	ok, err := s.client.SetNX(ctx, key, token, s.lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", conversationID, err)
	}
	if !ok {
		return nil, port.ErrConversationBusy
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	if s.lockTTL > 0 {
		go s.keepAlive(context.WithoutCancel(ctx), key, token, stop, done)
	} else {
		close(done)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done

			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()
			if err := releaseScript.Run(rctx, s.client, []string{key}, token).Err(); err != nil {
				s.logger.Warn("release conversation lock", slog.String("conversation", conversationID), slog.Any("error", err))
			}
		})
	}, nil
}

func (s *SessionStore) keepAlive(ctx context.Context, key, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.lockTTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			held, err := s.refresh(ctx, key, token)
			if err != nil {
				s.logger.Warn("refresh conversation lock", slog.String("key", key), slog.Any("error", err))
				continue
			}
			if !held {
				s.logger.Warn("conversation lock lost", slog.String("key", key))
				return
			}
		}
	}
}

// refresh resets the lock expiry and reports whether the token still owns
// the lock.
func (s *SessionStore) refresh(ctx context.Context, key, token string) (bool, error) {
	rctx, cancel := context.WithTimeout(ctx, releaseTimeout)
	defer cancel()
	n, err := refreshScript.Run(rctx, s.client, []string{key}, token, s.lockTTL.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
