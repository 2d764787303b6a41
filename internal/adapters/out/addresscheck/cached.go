package addresscheck

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/cache"
)

const (
	cacheOperation = "address"

	cachedNotFound    = "not_found"
	cachedBadFormat   = "bad_format"
	cachedFoundPrefix = "found:"
)

// CachedChecker remembers definite answers of the wrapped checker for ttl.
// Infrastructure failures are never cached, and a failing cache only costs a
// call to the wrapped checker.
type CachedChecker struct {
	next   ports.AddressChecker
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedChecker(next ports.AddressChecker, c cache.Cache, ttl time.Duration, logger *slog.Logger) *CachedChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedChecker{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("component", "address_cache"),
	}
}

func (c *CachedChecker) CheckAddressExists(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	key, err := c.key(address)
	if err != nil {
		return c.next.CheckAddressExists(ctx, address)
	}

	if checked, hit, err := c.lookup(ctx, key); hit {
		return checked, err
	}

	checked, err := c.next.CheckAddressExists(ctx, address)
	c.store(ctx, key, checked, err)
	return checked, err
}

func (c *CachedChecker) key(address order.UnvalidatedAddress) (string, error) {
	raw, err := json.Marshal(fromUnvalidated(address))
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return c.cache.GenerateKey(cacheOperation, hex.EncodeToString(sum[:])), nil
}

func (c *CachedChecker) lookup(ctx context.Context, key string) (order.CheckedAddress, bool, error) {
	value, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "address cache read failed", "error", err)
		return order.CheckedAddress{}, false, nil
	}

	switch {
	case value == "":
		return order.CheckedAddress{}, false, nil
	case value == cachedNotFound:
		return order.CheckedAddress{}, true, &order.AddressValidationError{Kind: order.AddressNotFound}
	case value == cachedBadFormat:
		return order.CheckedAddress{}, true, &order.AddressValidationError{Kind: order.InvalidFormat}
	case strings.HasPrefix(value, cachedFoundPrefix):
		var dto addressDTO
		if err = json.Unmarshal([]byte(strings.TrimPrefix(value, cachedFoundPrefix)), &dto); err != nil {
			c.logger.WarnContext(ctx, "address cache entry is corrupt", "key", key, "error", err)
			return order.CheckedAddress{}, false, nil
		}
		return dto.toChecked(), true, nil
	}
	return order.CheckedAddress{}, false, nil
}

func (c *CachedChecker) store(ctx context.Context, key string, checked order.CheckedAddress, checkErr error) {
	var value string
	var addressErr *order.AddressValidationError
	switch {
	case checkErr == nil:
		raw, err := json.Marshal(addressDTO(checked))
		if err != nil {
			return
		}
		value = cachedFoundPrefix + string(raw)
	case errors.As(checkErr, &addressErr) && addressErr.Kind == order.AddressNotFound:
		value = cachedNotFound
	case errors.As(checkErr, &addressErr) && addressErr.Kind == order.InvalidFormat:
		value = cachedBadFormat
	default:
		return
	}

	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "address cache write failed", "error", err)
	}
}
