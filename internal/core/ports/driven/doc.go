// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RowStore: Appends projected rows to the external tabular store
//   - ConfigStore: Application configuration persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Generates the confirmation note. Without it, replies
//     carry the plain field summary only.
//   - Spool: Journals rows whose delivery attempts were exhausted.
//     Without it, exhausted rows are dropped after logging.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
