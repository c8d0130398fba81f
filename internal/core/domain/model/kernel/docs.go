// Package kernel provides shared domain primitives for the fulfillment service.
//
// The package currently includes UUID, an immutable identifier value object
// used by the Order aggregate and by persistence adapters.
package kernel
