// Package embedder provides text embedding clients for vector
// representations of indication and disease text.
//
// The Client interface abstracts the embedding provider; the engine only
// depends on its input/output contract (text in, fixed-length vector
// out). Two backends are provided:
//   - OpenAI: text-embedding-3-small, text-embedding-3-large, text-embedding-ada-002
//   - EmbedEverything: local models such as all-MiniLM-L6-v2
//
// NewBreakerClient wraps any backend in a circuit breaker so a failing
// provider trips fast instead of stalling every ranking request.
package embedder
