// Package aggregates defines domain-facing aggregate contracts.
//
// Contracts here carry no persistence or transport details. They describe the
// write boundaries where invariants must hold atomically.
package aggregates
