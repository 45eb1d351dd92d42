package model

// Identity carries the verified caller identity through a request.
// It is populated by the auth middleware after token verification.
type Identity struct {
	// Username is the token subject, confirmed to still exist
	// in the user directory at verification time.
	Username string
	// TokenID is the jti claim of the presented token.
	TokenID string
}
