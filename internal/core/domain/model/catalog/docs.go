// Package catalog provides the Test aggregate: the master list of pathology
// tests a lab can perform.
//
// A Test carries its display name, short code, required sample type, normal
// reference range, price, and an active flag. Name and code are globally
// unique; uniqueness is enforced by the persistence layer (unique indexes
// plus handler pre-checks), while this package owns all per-field rules:
// required text fields must be non-blank and the price strictly positive.
//
// Tests have no state machine. The active flag decides whether new orders
// may reference the test; flipping it never touches existing orders, and
// tests are never physically deleted.
package catalog
