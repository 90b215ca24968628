// Package model defines the persisted entities and their enumerations.
//
// Entities are plain records: every field is materialized by the query
// that produced it and no field access ever triggers I/O. Related
// collections are fetched by explicit repository methods, never through
// relationship traversal on the struct.
package model
