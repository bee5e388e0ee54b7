// Package match provides identifier conversion and fuzzy name matching.
//
// Key functions:
//   - ToCamelCase: converts snake_case column names to camelCase property names
//   - Capitalize / LowerCamel: accessor and property name synthesis
//   - Words / Fold: case and separator insensitive identifier keys
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one ("did you mean")
package match
