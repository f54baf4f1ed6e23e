package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRoles(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{name: "single employee", roles: []string{RoleEmployee}, want: true},
		{name: "single manager", roles: []string{RoleManager}, want: true},
		{name: "both roles", roles: []string{RoleManager, RoleEmployee}, want: true},
		{name: "empty set rejected", roles: []string{}, want: false},
		{name: "nil rejected", roles: nil, want: false},
		{name: "unknown tag rejected", roles: []string{"Admin"}, want: false},
		{name: "mixed valid and unknown rejected", roles: []string{RoleEmployee, "Intern"}, want: false},
		{name: "case sensitive", roles: []string{"manager"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRoles(tt.roles))
		})
	}
}

func TestHasRole(t *testing.T) {
	roles := []string{RoleManager, RoleEmployee}
	assert.True(t, HasRole(roles, RoleManager))
	assert.True(t, HasRole(roles, RoleEmployee))
	assert.False(t, HasRole([]string{RoleEmployee}, RoleManager))
	assert.False(t, HasRole(nil, RoleManager))
}
