package domain

// User is an operator of the bookkeeping system. Session handling lives
// outside the core; only the credential store and hash check are kept here.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}
