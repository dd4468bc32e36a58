package user

// PasswordHasher turns plaintext passwords into the stored digest form and
// checks candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) bool
}
