package auth

// UserClaims is the capability attached to every authenticated request.
type UserClaims interface {
	OperatorID() string
	Name() string
	Source() string
}

// SessionClaims back a dashboard bearer token resolved against the
// session store.
type SessionClaims struct {
	OperatorIDValue string
	NameValue       string
	SessionID       string
}

func (c *SessionClaims) OperatorID() string { return c.OperatorIDValue }
func (c *SessionClaims) Name() string       { return c.NameValue }
func (c *SessionClaims) Source() string     { return "SESSION" }

// APIKeyClaims back a machine client identified by a service key.
type APIKeyClaims struct {
	KeyLabel string
}

func (c *APIKeyClaims) OperatorID() string { return c.KeyLabel }
func (c *APIKeyClaims) Name() string       { return c.KeyLabel }
func (c *APIKeyClaims) Source() string     { return "API_KEY" }
