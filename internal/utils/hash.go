package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used when the user base was first
// created; changing it only affects newly stored hashes.
const bcryptCost = 10

// HashPassword returns a bcrypt hash of the provided password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext
// equivalent.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
