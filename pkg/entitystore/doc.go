// Package entitystore supplies the typed records the engine is built
// from: drugs, diseases, drug-disease evidence, and drug-gene
// associations, with id/name lookup and fuzzy disease matching.
//
// The in-memory store is populated once, either directly from record
// slices or from CSV seed files via LoadDir, and is read-only afterwards.
package entitystore
