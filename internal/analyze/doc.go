// Package analyze loads Go packages and extracts the struct model that
// accessor generation works from.
//
// It uses golang.org/x/tools/go/packages with go/types.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: an exported named struct with its fields, in source order
//   - FieldInfo: field name, go/types type, tags and embedding
package analyze
