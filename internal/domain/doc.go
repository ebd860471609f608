// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/checkout, domain/partner).
// This root package holds sentinel errors, validation types, and domain-level
// interfaces (Action, WriteStager) that are shared across all entities.
package domain
