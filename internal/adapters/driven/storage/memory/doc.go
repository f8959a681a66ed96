// Package memory provides in-memory implementations of driven port
// interfaces. They back unit tests and never persist anything.
package memory
