// Package service orchestrates the onboarding workflow: it composes the
// catalog, the session record store, the event stub constructors, the audit
// log, and the derived-metrics engine behind one API used by the HTTP
// handlers. Event construction and audit-log appending remain two separate
// steps internally; the service is the one place that performs both.
package service
