// Package queries contains read-only operations implementing the query
// side of the CQRS architecture. Query handlers bypass the domain model
// and read projections straight from the database, returning plain
// response structs shaped for the callers.
package queries
