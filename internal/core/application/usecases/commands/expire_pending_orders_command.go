package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ExpiredOrderReason is recorded in the notes of orders cancelled by expiry.
const ExpiredOrderReason = "Order was not confirmed in time"

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels every Pending order older than TTL.
//
// Example:
//
//	cmd, err := NewExpirePendingOrdersCommand(48 * time.Hour)
//	if err != nil {
//	    return err
//	}
//	expired, err := handler.Handle(ctx, cmd)
type ExpirePendingOrdersCommand struct {
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand requires a positive ttl.
func NewExpirePendingOrdersCommand(ttl time.Duration) (ExpirePendingOrdersCommand, error) {
	if ttl <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}

	return ExpirePendingOrdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay Pending.
func (c ExpirePendingOrdersCommand) TTL() time.Duration {
	return c.ttl
}
