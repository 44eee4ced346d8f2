package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the hashing work factor used when configuration does
// not supply one. It is the security/performance knob for password storage.
const DefaultBcryptCost = 12

// HashPassword hashes a plaintext password with the given bcrypt cost. A
// non-positive cost falls back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a plaintext password against its stored hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
