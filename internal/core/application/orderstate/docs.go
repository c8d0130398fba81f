// Package orderstate is the single entry point callers use to move an order
// through its lifecycle.
//
// A Context resolves the behavior for the order's current status on every
// call, runs the requested transition, persists it through a Store and
// reports the attempt as a Result. Illegal transitions and persistence
// failures are never returned as errors; they are described by the Result's
// Outcome.
//
// Usage:
//
//	machine := orderstate.NewContext(orderstate.NewUnitOfWorkStore(uowFactory), logger)
//
//	if !machine.CanShip(o) {
//	    return ErrNotShippable
//	}
//
//	result := machine.Ship(ctx, o)
//	if !result.OK() {
//	    return result.Err
//	}
//
// Concurrency Considerations:
//   - Context itself is stateless and safe for concurrent use
//   - An *order.Order must not be shared between goroutines
//   - Two transitions of the same order race at the Store, where the loser
//     gets OutcomeConflict
package orderstate
