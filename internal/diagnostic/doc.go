// Package diagnostic provides structured errors, warnings and infos with
// stable codes and "did you mean" suggestions.
//
// It is used for two things:
//   - validating enrichment declarations before they are used
//   - collecting abandoned enrichments so callers can surface them
package diagnostic
