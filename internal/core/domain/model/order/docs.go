// Package order provides the Order aggregate for the store's order-creation
// workflow.
//
// The package includes:
//   - Order: the aggregate root holding customer, delivery fee, discount and lines
//   - Item: an order line with the unit price captured at addition time
//   - Status: the lifecycle state persisted with the order
//
// Key business rules:
//   - Every order starts in WaitingPayment with a generated short number
//   - Items need a resolved product and a positive quantity
//   - Total = sum(quantity x unit price) - discount + delivery fee, in decimal arithmetic
//   - Missing customer, missing products and empty orders surface as notifications
//     rather than errors, so callers can report every violation at once
package order
