// Package store holds the session-scoped mutable state of the onboarding
// simulation: the per-persona patient records and the append-only audit log.
//
// State is owned by explicit Session and AuditLog values created at session
// start and discarded with the session; nothing is persisted and there is no
// package-level state. Both types are safe for concurrent use by HTTP
// handlers, though the reference workload is effectively sequential.
package store
