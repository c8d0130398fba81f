// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding identity, status, payment status, notes and version
//   - Status: the closed set of lifecycle statuses with codes and display labels
//   - State: the per-status behavior returned by ResolveState
//
// Key business rules:
//   - Orders start in Pending
//   - Pending -> ReadyToShip (confirm), ReadyToShip -> Shipping (ship),
//     Shipping -> Delivered (deliver)
//   - Pending and ReadyToShip orders can be cancelled; cancelling records the
//     reason in the notes and the refund notice in the payment status
//   - Delivering records the payment status "Paid"
//   - Delivered and Cancelled are terminal
//   - readyToShip is part of the contract but no status allows it
//   - Unknown statuses resolve to an error, never to a default behavior
package order
