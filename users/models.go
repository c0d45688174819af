// Package users holds the account domain: models, command validation, the
// authentication token issuer, and the PostgreSQL repository.
package users

import "github.com/meowjesty/tasknest/core/validator"

const (
	// MinUsernameLength is the minimum accepted username length.
	MinUsernameLength = 3
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 4
)

// User is a stored account record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoggedUser is the post-login projection of a User plus its derived token.
// It lives only inside the session envelope and the login response.
type LoggedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Token    uint64 `json:"token"`
}

// ToLogged builds the logged-in projection of the user with the given token.
func (u User) ToLogged(token uint64) LoggedUser {
	return LoggedUser{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Token:    token,
	}
}

// InsertUser is the registration command.
type InsertUser struct {
	ValidUsername string `json:"valid_username"`
	ValidPassword string `json:"valid_password"`
}

// Validate reports the first violated field rule.
func (c InsertUser) Validate() error {
	return validateCredentials(c.ValidUsername, c.ValidPassword)
}

// UpdateUser is the profile update command.
type UpdateUser struct {
	ID            int64  `json:"id"`
	ValidUsername string `json:"valid_username"`
	ValidPassword string `json:"valid_password"`
}

// Validate reports the first violated field rule.
func (c UpdateUser) Validate() error {
	return validateCredentials(c.ValidUsername, c.ValidPassword)
}

// LoginUser is the credentials command for login. It is matched exactly
// against stored accounts and carries no semantic validation of its own.
type LoginUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateCredentials(username, password string) error {
	return validator.Apply(
		validator.NotBlank(username, ErrEmptyUsername),
		validator.MinLen(username, MinUsernameLength, ErrUsernameLength),
		validator.NoWhitespace(username, ErrUsernameInvalidCharacter),
		validator.NotBlank(password, ErrEmptyPassword),
		validator.MinLen(password, MinPasswordLength, ErrPasswordLength),
		validator.NoWhitespace(password, ErrPasswordInvalidCharacter),
	)
}
