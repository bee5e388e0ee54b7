// Package store persists the system module in SQLite (modernc.org/sqlite,
// no cgo).
//
// Mappers return plain entities; the display fields on them are left for
// enrichment. DeptService and UserService are the lookup services enrichment
// resolves names through.
package store
