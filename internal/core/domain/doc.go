// Package domain defines the core entities exported by lexport.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Bot: The root bot definition plus its resolved Dependencies
//   - Intent: A versioned intent with its slots and utterances
//   - SlotType: A versioned enumeration of custom slot values
//   - Snapshot: A stored copy of one export
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
