package ports

// IdentityClaims is the caller-supplied identity payload embedded in an
// access credential. The issuer copies it verbatim; truthfulness is
// established upstream.
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// TokenService mints signed, time-limited access credentials.
type TokenService interface {
	Issue(claims IdentityClaims) (string, error)
}
