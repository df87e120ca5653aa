package auth

// PasswordService hashes and verifies account passwords
type PasswordService interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}
