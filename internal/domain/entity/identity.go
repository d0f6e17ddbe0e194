package entity

// Identity is the authenticated caller as asserted by the identity provider
type Identity struct {
	UserID string
	Email  string
}
