// Package domain defines the core business entities for haulbot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Report: The structured result of parsing one breakdown message
//   - Lexicon: The keyword vocabulary driving the field extractor
//   - AppSettings: The application configuration surface
//   - SpooledRow: A row journaled after exhausted delivery attempts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
