package interfaces

import (
	"context"
	"time"

	"bahia_gestao/internal/domain/pricing"
)

// ICartStore keeps carts in Redis. Get returns nil, nil for an unknown or
// expired cart. Save refuses to overwrite a committed or discarded cart and
// returns pricing.ErrCartClosed.
type ICartStore interface {
	Get(ctx context.Context, id string) (*pricing.Cart, error)
	Save(ctx context.Context, cart *pricing.Cart) error
}

// IOperationGuard rejects re-entrant submissions of the same action.
// Acquire returns false when key is already held; otherwise it returns the
// token that owns the key. Release only frees the key while token still owns
// it.
type IOperationGuard interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

// ITokenDenylist remembers revoked token ids until they would have expired.
type ITokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
