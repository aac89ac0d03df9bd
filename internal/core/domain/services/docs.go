// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the food delivery system. It
// implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - TransitionPolicy: A domain service deciding which actor may request
//     which order status transition, and who may assign riders to orders
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
