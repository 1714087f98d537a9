package entity

// AuditLogFilter is a domain-level filter for querying audit logs.
// Used by repository layer to avoid coupling with delivery DTOs.
type AuditLogFilter struct {
	Action   string // Exact action match, e.g. appointment.save
	EntityID string // Draft or appointment identifier
	Page     int
	Limit    int
}

// Offset returns the row offset for the requested page
func (f AuditLogFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
