// Package graph builds and queries the typed drug-disease-gene graph.
//
// A Graph is constructed once from an entity source via Build and is
// immutable afterwards: ranking and explanation read it concurrently
// without locking. Rebuilding replaces the whole value rather than
// mutating in place.
//
// Besides construction, the package provides link-prediction scores
// (Adamic-Adar, common-neighbor overlap) and bounded path search used by
// the path explainer.
package graph
