// Package types defines the core data model shared across remedigraph:
// entity records (drugs, diseases, evidence, gene associations), typed
// graph node identities and edges, and the result shapes returned by the
// ranking and explanation engines.
//
// Records are immutable once loaded into an entity store. Node identity is
// a tagged (kind, value) pair so that a drug and a disease with the same
// raw identifier can never collide.
package types
