package user

import (
	"taskserver/dto"
	"taskserver/model"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func updatePaths(updates []firestore.Update) []string {
	paths := []string{}
	for _, u := range updates {
		paths = append(paths, u.Path)
	}
	return paths
}

func TestBuildUserUpdates_EmptyPasswordUnchanged(t *testing.T) {
	updates, err := buildUserUpdates(dto.UpdateUserRequest{
		Email: "a@x.com",
		Role:  []string{model.RoleEmployee},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"email", "role"}, updatePaths(updates))
}

func TestBuildUserUpdates_PasswordIsHashed(t *testing.T) {
	updates, err := buildUserUpdates(dto.UpdateUserRequest{Password: "new-secret"})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	require.Equal(t, "password", updates[0].Path)

	hashed, ok := updates[0].Value.(string)
	require.True(t, ok)
	assert.NotEqual(t, "new-secret", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("new-secret")))
}

func TestBuildUserUpdates_RoleOnly(t *testing.T) {
	updates, err := buildUserUpdates(dto.UpdateUserRequest{Role: []string{model.RoleManager, model.RoleEmployee}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"role"}, updatePaths(updates))
}

// The handler trims the email before validation and uniqueness
// checking; buildUserUpdates must store the value it validated, with no
// further rewriting.
func TestBuildUserUpdates_EmailStoredAsValidated(t *testing.T) {
	updates, err := buildUserUpdates(dto.UpdateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "email", updates[0].Path)
	assert.Equal(t, "a@x.com", updates[0].Value)
}

func TestBuildUserUpdates_EmailFormat(t *testing.T) {
	rejected := []string{"not-an-email", "a@", "@x.com", "foo@bar", "a b@x.com", " a@x.com"}
	for _, email := range rejected {
		_, err := buildUserUpdates(dto.UpdateUserRequest{Email: email})
		assert.Error(t, err, "email %q", email)
	}
}

func TestBuildUserUpdates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateUserRequest
	}{
		{name: "nothing to update", req: dto.UpdateUserRequest{}},
		{name: "bad email", req: dto.UpdateUserRequest{Email: "not-an-email"}},
		{name: "unknown role", req: dto.UpdateUserRequest{Role: []string{"Admin"}}},
		{name: "empty role set", req: dto.UpdateUserRequest{Role: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildUserUpdates(tt.req)
			assert.Error(t, err)
		})
	}
}
