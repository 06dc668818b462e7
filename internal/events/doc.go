// Package events provides the simulated outbound-integration event
// constructors.
//
// Each constructor is a pure function: it builds and returns an audit event
// describing what a real integration (survey messaging, record sync,
// telehealth scheduling) would have done, stamping the creation time at call
// time, with no side effect beyond object construction. Appending the event
// to the session's audit log is a separate, explicit step owned by the
// caller, which keeps both halves independently testable.
package events
