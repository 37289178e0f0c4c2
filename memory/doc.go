// Package memory provides the vector memory store behind adaptive
// interview personalization.
//
// Each answered question becomes an immutable PerformanceRecord embedded
// into vector space, namespaced by CandidateID so one candidate's history
// never leaks into another's retrieval.
//
// Architecture:
//   - Store: append-only vector storage backend (chromem-go locally,
//     pgvector in production)
//   - Embedder: text-to-vector conversion (hash-based mock for tests,
//     ONNX all-MiniLM-L6-v2 for real semantic search, offline)
//   - Retriever: turns topic aggregates into a biased sampling
//     distribution favoring demonstrated weaknesses
//
// Integration:
//   - RECORD path: engine.RecordAnswer appends one record per answer
//   - RETRIEVE path: engine.NextQuestionSpec asks the Retriever for a
//     topic distribution before the next question is generated
package memory
