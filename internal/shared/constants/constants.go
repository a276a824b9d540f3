package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	BearerPrefix        = "Bearer "

	// Context keys set by the auth middleware
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
	ContextKeyUserRole = "user_role"

	// Store names; each is one JSON array
	StoreUsers         = "users"
	StoreTickets       = "tickets"
	StoreClients       = "clients"
	StoreCategories    = "categories"
	StoreGroups        = "groups"
	StoreLoginAttempts = "login_attempts"
	StoreLoginAudit    = "login_audit"

	// Audit listing
	DefaultAuditLimit = 200
	MaxAuditLimit     = 2000

	// Public path prefix of stored attachments
	UploadsPathPrefix = "/uploads/"
)
