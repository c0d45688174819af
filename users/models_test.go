package users_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowjesty/tasknest/users"
)

func TestInsertUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "yusuke", "toguro", nil},
		{"empty username", "", "password", users.ErrEmptyUsername},
		{"blank username", "   \n\t", "password", users.ErrEmptyUsername},
		{"short username", "ab", "password", users.ErrUsernameLength},
		{"username with space", "yu suke", "password", users.ErrUsernameInvalidCharacter},
		{"empty password", "yusuke", "", users.ErrEmptyPassword},
		{"blank password", "yusuke", "   ", users.ErrEmptyPassword},
		{"short password", "yusuke", "abc", users.ErrPasswordLength},
		{"password with space", "yusuke", "to guro", users.ErrPasswordInvalidCharacter},
		{"username checked before password", "", "", users.ErrEmptyUsername},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := users.InsertUser{ValidUsername: tt.username, ValidPassword: tt.password}
			err := cmd.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateUserValidate(t *testing.T) {
	t.Parallel()

	valid := users.UpdateUser{ID: 1, ValidUsername: "yusuke", ValidPassword: "toguro"}
	require.NoError(t, valid.Validate())

	invalid := users.UpdateUser{ID: 1, ValidUsername: "yu suke", ValidPassword: "toguro"}
	require.ErrorIs(t, invalid.Validate(), users.ErrUsernameInvalidCharacter)
}

func TestDomainErrorStatusCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 422, users.ErrEmptyUsername.StatusCode())
	assert.Equal(t, 401, users.ErrLoginFailed.StatusCode())
	assert.Equal(t, 401, users.ErrNotLoggedIn.StatusCode())
	assert.Equal(t, 401, users.ErrInvalidToken.StatusCode())
	assert.Equal(t, 404, users.ErrEmpty.StatusCode())

	notFound := users.ErrNotFound(42)
	assert.Equal(t, 404, notFound.StatusCode())
	assert.Contains(t, notFound.Error(), "42")
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	user := users.User{ID: 7, Username: "yusuke", Password: "toguro"}

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, users.IssueToken(user), users.IssueToken(user))
	})

	t.Run("sensitive to every field", func(t *testing.T) {
		t.Parallel()

		base := users.IssueToken(user)

		changedID := user
		changedID.ID = 8
		assert.NotEqual(t, base, users.IssueToken(changedID))

		changedName := user
		changedName.Username = "kuwabara"
		assert.NotEqual(t, base, users.IssueToken(changedName))

		changedPass := user
		changedPass.Password = "keiko1"
		assert.NotEqual(t, base, users.IssueToken(changedPass))
	})
}

func TestToLogged(t *testing.T) {
	t.Parallel()

	user := users.User{ID: 7, Username: "yusuke", Password: "toguro"}
	token := users.IssueToken(user)
	logged := user.ToLogged(token)

	assert.Equal(t, user.ID, logged.ID)
	assert.Equal(t, user.Username, logged.Username)
	assert.Equal(t, user.Password, logged.Password)
	assert.Equal(t, token, logged.Token)
}
