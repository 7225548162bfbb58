// Package result provides the Result aggregate: the outcome recorded for a
// lab test order.
//
// A Result starts in Draft, where its value and technician notes may be
// edited, and transitions to Completed exactly once. Completing a result is
// the only event in the system that also completes the owning order; that
// cross-aggregate write is coordinated by the complete-result use case
// inside a single unit of work, not here.
//
// At most one result exists per order. The rule is enforced by the
// create-result use case together with a unique index on the order
// reference.
package result
