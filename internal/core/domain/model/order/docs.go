// Package order provides the Order aggregate and its status state machine
// for the lab workflow engine.
//
// The package includes:
//   - Order: the aggregate root carrying the series-issued order code,
//     patient details, the referenced catalog test, and the order date
//   - Status: a closed enum whose single transition table decides every
//     legal status change
//
// Key business rules:
//   - Orders are created in Draft with a code minted by the naming series
//   - Draft -> Ordered or Cancelled; Ordered -> Completed or Cancelled;
//     Completed and Cancelled are terminal
//   - The order date may not precede the creation day
//   - A result may only be created while the order is Ordered
//
// All transitions funnel through Status.TransitionTo; no caller inspects
// the table directly, so an illegal pair is rejected identically wherever
// it is attempted.
package order
