// Package env layers environment variables over another driven.ConfigStore.
//
// Every known setting can be overridden with WIKIQA_<KEY>, where dots in the
// key become underscores (neo4j.uri is WIKIQA_NEO4J_URI). Backend connection
// settings also honour the bare names NEO4J_URI, QDRANT_URL, OLLAMA_BASE_URL
// and friends. Reads prefer the environment; writes go to the wrapped store.
package env
