package navigation

import (
    "context"
    "encoding/json"
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/redis/go-redis/v9"

    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// ErrHandoffNotFound is returned when a handoff token is unknown,
// expired or already consumed.  Tokens are strictly one-shot.
var ErrHandoffNotFound = errors.New("handoff payload not found")

// HandoffStore keeps a clicked calendar event alive across one page
// navigation.  Save issues a token, Take redeems it exactly once and
// deletes the payload.  Entries expire after a short TTL so abandoned
// navigations leave nothing behind.
type HandoffStore interface {
    Save(ctx context.Context, ev model.CalendarEvent) (string, error)
    Take(ctx context.Context, token string) (model.CalendarEvent, error)
}

// RedisHandoffStore keeps handoff payloads in Redis so any gateway
// instance can redeem a token issued by another.
type RedisHandoffStore struct {
    rdb *redis.Client
    ttl time.Duration
}

// NewRedisHandoffStore builds a store on the given client.  A TTL of
// zero falls back to five minutes.
func NewRedisHandoffStore(rdb *redis.Client, ttl time.Duration) *RedisHandoffStore {
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }
    return &RedisHandoffStore{rdb: rdb, ttl: ttl}
}

func handoffKey(token string) string { return "handoff:" + token }

// Save stores the event under a fresh token.
func (s *RedisHandoffStore) Save(ctx context.Context, ev model.CalendarEvent) (string, error) {
    body, err := json.Marshal(ev)
    if err != nil {
        return "", err
    }
    token := uuid.NewString()
    if err := s.rdb.Set(ctx, handoffKey(token), body, s.ttl).Err(); err != nil {
        return "", err
    }
    return token, nil
}

// Take redeems a token.  GETDEL makes the read-and-delete atomic, so
// two concurrent redeems of the same token cannot both succeed.
func (s *RedisHandoffStore) Take(ctx context.Context, token string) (model.CalendarEvent, error) {
    body, err := s.rdb.GetDel(ctx, handoffKey(token)).Bytes()
    if errors.Is(err, redis.Nil) {
        return model.CalendarEvent{}, ErrHandoffNotFound
    }
    if err != nil {
        return model.CalendarEvent{}, err
    }
    var ev model.CalendarEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return model.CalendarEvent{}, err
    }
    return ev, nil
}

// MemoryHandoffStore is the in-process fallback used when no Redis
// connection is available at startup.  Semantics match the Redis
// store; entries expire lazily on access.
type MemoryHandoffStore struct {
    mu      sync.Mutex
    ttl     time.Duration
    entries map[string]memoryEntry
}

type memoryEntry struct {
    ev      model.CalendarEvent
    expires time.Time
}

// NewMemoryHandoffStore builds an in-memory store.  A TTL of zero
// falls back to five minutes.
func NewMemoryHandoffStore(ttl time.Duration) *MemoryHandoffStore {
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }
    return &MemoryHandoffStore{ttl: ttl, entries: make(map[string]memoryEntry)}
}

// Save stores the event under a fresh token.
func (s *MemoryHandoffStore) Save(_ context.Context, ev model.CalendarEvent) (string, error) {
    token := uuid.NewString()
    s.mu.Lock()
    s.entries[token] = memoryEntry{ev: ev, expires: time.Now().Add(s.ttl)}
    s.mu.Unlock()
    return token, nil
}

// Take redeems a token exactly once.
func (s *MemoryHandoffStore) Take(_ context.Context, token string) (model.CalendarEvent, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    e, ok := s.entries[token]
    if !ok {
        return model.CalendarEvent{}, ErrHandoffNotFound
    }
    delete(s.entries, token)
    if time.Now().After(e.expires) {
        return model.CalendarEvent{}, ErrHandoffNotFound
    }
    return e.ev, nil
}
