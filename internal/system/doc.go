// Package system exposes the enriched query services of the system module:
// the store mappers wrapped so that display fields are populated before the
// caller sees a result.
package system
