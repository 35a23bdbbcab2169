// Package cache holds the Redis-backed adapters: open carts, the
// re-entrancy guard and the revoked-token list.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	cartKeyPrefix    = "cart:"
	guardKeyPrefix   = "guard:"
	revokedKeyPrefix = "auth:revoked:"

	DefaultCartTTL  = 24 * time.Hour
	DefaultGuardTTL = 30 * time.Second
)

// redisAPI is the subset of redis.Cmdable the adapters use. The Eval
// family lets redis.Script run against it.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd
	ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd
	ScriptLoad(ctx context.Context, script string) *redis.StringCmd
}

// saveOpenCartSource writes ARGV[1] with a PX of ARGV[2] unless the stored
// cart is already committed or discarded. Returns 1 when written.
const saveOpenCartSource = `
local cur = redis.call('GET', KEYS[1])
if cur then
  local ok, doc = pcall(cjson.decode, cur)
  if ok and (doc['state'] == 'committed' or doc['state'] == 'discarded') then
    return 0
  end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
return 1
`

// releaseGuardSource deletes KEYS[1] only while it still holds ARGV[1].
const releaseGuardSource = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`

var (
	saveOpenCart = redis.NewScript(saveOpenCartSource)
	releaseGuard = redis.NewScript(releaseGuardSource)
)

var _ redisAPI = (*redis.Client)(nil)

// CartRedisStore keeps carts as JSON documents. Every save refreshes the TTL,
// so an abandoned cart expires on its own.
type CartRedisStore struct {
	rdb redisAPI
	ttl time.Duration
}

var _ interfaces.ICartStore = (*CartRedisStore)(nil)

func NewCartRedisStore(rdb redisAPI, ttl time.Duration) *CartRedisStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartRedisStore{rdb: rdb, ttl: ttl}
}

func (s *CartRedisStore) Get(ctx context.Context, id string) (*pricing.Cart, error) {
	val, err := s.rdb.Get(ctx, cartKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, entities.NewPersistenceError("get cart", err)
	}
	var cart pricing.Cart
	if err := json.Unmarshal(val, &cart); err != nil {
		return nil, entities.NewPersistenceError("decode cart", err)
	}
	return &cart, nil
}

func (s *CartRedisStore) Save(ctx context.Context, cart *pricing.Cart) error {
	if cart == nil || cart.ID == "" {
		return fmt.Errorf("%w: cart without id", entities.ErrValidation)
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return entities.NewPersistenceError("encode cart", err)
	}
	written, err := saveOpenCart.Run(ctx, s.rdb, []string{cartKeyPrefix + cart.ID}, data, s.ttl.Milliseconds()).Int()
	if err != nil {
		return entities.NewPersistenceError("save cart", err)
	}
	if written == 0 {
		log.Printf("[cart][cache] save refused, cart already closed cart_id=%s", cart.ID)
		return pricing.ErrCartClosed
	}
	return nil
}

// OperationGuard is a SETNX lock holding a random owner token. Keys expire
// after ttl so a crashed holder cannot block the action forever, and a holder
// that outlived its ttl cannot release the next owner's lock.
type OperationGuard struct {
	rdb redisAPI
	ttl time.Duration
}

var _ interfaces.IOperationGuard = (*OperationGuard)(nil)

func NewOperationGuard(rdb redisAPI, ttl time.Duration) *OperationGuard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	return &OperationGuard{rdb: rdb, ttl: ttl}
}

func (g *OperationGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.rdb.SetNX(ctx, guardKeyPrefix+key, token, g.ttl).Result()
	if err != nil {
		return "", false, entities.NewPersistenceError("acquire guard", err)
	}
	if !ok {
		log.Printf("[guard][cache] busy key=%s", key)
		return "", false, nil
	}
	return token, true, nil
}

func (g *OperationGuard) Release(ctx context.Context, key, token string) error {
	deleted, err := releaseGuard.Run(ctx, g.rdb, []string{guardKeyPrefix + key}, token).Int()
	if err != nil {
		return entities.NewPersistenceError("release guard", err)
	}
	if deleted == 0 {
		log.Printf("[guard][cache] release skipped, key expired or taken over key=%s", key)
	}
	return nil
}

// TokenDenylist stores revoked token ids until the token would expire anyway.
type TokenDenylist struct {
	rdb redisAPI
}

var _ interfaces.ITokenDenylist = (*TokenDenylist)(nil)

func NewTokenDenylist(rdb redisAPI) *TokenDenylist {
	return &TokenDenylist{rdb: rdb}
}

// Revoke is a no-op for tokens that already expired.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := d.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return entities.NewPersistenceError("revoke token", err)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	n, err := d.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, entities.NewPersistenceError("check revoked token", err)
	}
	return n > 0, nil
}
