package auth

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of a plain password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plain password matches the stored value.
// Accounts migrated from the legacy system may still carry a plain-text
// password, so a non-bcrypt stored value falls back to direct comparison.
func CheckPassword(password, stored string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored != "" && stored == password
}

// Policy holds the password complexity rules kept in system settings.
type Policy struct {
	MinLength        int
	RequireUppercase bool
	RequireNumber    bool
}

// DefaultPolicy matches the settings defaults.
var DefaultPolicy = Policy{MinLength: 8, RequireUppercase: true, RequireNumber: true}

// PolicyFromSettings builds a Policy from the settings key/value map,
// falling back to DefaultPolicy for missing or malformed entries.
func PolicyFromSettings(values map[string]any) Policy {
	p := DefaultPolicy
	if v, ok := values["passwordMinLength"]; ok {
		if n, err := toInt(v); err == nil {
			p.MinLength = n
		}
	}
	if v, ok := values["passwordRequireUppercase"]; ok {
		p.RequireUppercase = toBool(v)
	}
	if v, ok := values["passwordRequireNumber"]; ok {
		p.RequireNumber = toBool(v)
	}
	return p
}

// Validate returns a user-facing error when the password violates the policy.
func (p Policy) Validate(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("Password must be at least %d characters long", p.MinLength)
	}
	if p.RequireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		return fmt.Errorf("Password must contain at least one uppercase letter")
	}
	if p.RequireNumber && !strings.ContainsFunc(password, unicode.IsDigit) {
		return fmt.Errorf("Password must contain at least one number")
	}
	return nil
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	default:
		return false
	}
}
