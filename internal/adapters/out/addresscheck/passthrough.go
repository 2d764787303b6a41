// Package addresscheck confirms that postal addresses exist.
//
// HTTPChecker asks a remote address service, CachedChecker remembers its
// answers in Redis, and PassThroughChecker accepts every address for
// deployments without an address service.
package addresscheck

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// PassThroughChecker accepts every address unchanged.
type PassThroughChecker struct{}

func (PassThroughChecker) CheckAddressExists(
	_ context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	return order.CheckedAddress(address), nil
}
