// Package order provides the domain model for order creation.
//
// The package includes:
//   - Order: The aggregate created by the validation pipeline, with identity,
//     timestamps, normalized products, and a derived total
//   - ProductLine: A normalized entry within an order's product list
//   - Status: The order lifecycle state; creation only produces New
//   - Address: The opaque delivery destination forwarded to the delivery service
//
// Key business rules:
//   - The total always equals the sum of line subtotals plus the delivery price
//   - Identifiers are generated exactly once per creation attempt
//   - createdDate and modifiedDate are the same instant at creation
//   - Product normalization is a projection; unknown input fields are dropped
//
// The package follows the same Domain-Driven Design conventions as the rest
// of the core: private fields, validating factory constructors, and explicit
// restore paths for persistence.
package order
