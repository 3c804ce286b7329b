// internal/types/types.go
package types

// EntityID identifies an entity inside one arena run. Zero is never issued.
type EntityID uint64
