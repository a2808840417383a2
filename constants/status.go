package constants

// User roles
const (
	RoleClient = 0
	RoleAdmin  = 1
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Pagination defaults
const (
	DefaultPage  = 0
	DefaultLimit = 10
)
