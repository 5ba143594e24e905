package domain

// Password length limits. The lower bound is a registration requirement;
// the upper bound is bcrypt's 72-byte input limit.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Account represents a registered account of the service.
// The ID is assigned by the store on creation.
type Account struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Password       string `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
}

// NewAccount creates a new Account with the given email and plaintext password.
// The caller is responsible for hashing the password before storing the account.
// Returns an error if validation fails.
func NewAccount(email, password string) (*Account, error) {
	account := &Account{
		Email:    email,
		Password: password,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(a.Email) {
		return ErrInvalidEmail
	}

	if a.Password != "" {
		if len(a.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(a.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if a.HashedPassword == "" {
		// Existing accounts loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs basic validation of email format: a local part,
// an @, and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	dotIndex := -1
	for i, char := range domain {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domain)-1
}
