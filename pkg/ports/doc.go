/*
Package ports defines the driven ports (interfaces) for the specdoc generator.

These interfaces decouple schema sources and artifact storage from the traversal
engine, so a schema can come from a definition file, the DSL or memory, and the
generated reference can be kept in process or in Redis.

# Key Interfaces

  - SchemaLoader: Produces a compiled schema (e.g., from a file or the DSL).
  - Watchable: Signals when the schema source changed and must be reloaded.
  - ArtifactStore: Persists generated artifacts for the HTTP and MCP servers.
  - DistributedLocker: Serializes regeneration across publisher replicas.
*/
package ports
