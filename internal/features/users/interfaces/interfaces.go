package users_interfaces

// AuditLogWriter decouples user services from the audit feature; the
// audit service satisfies it and is injected at startup.
type AuditLogWriter interface {
	WriteAuditLog(message string, uid *int64, pid *int64)
}
