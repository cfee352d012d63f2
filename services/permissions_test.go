package services

import (
	"testing"

	"newshub-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role models.UserRole
		perm string
		want bool
	}{
		{models.RoleReader, PermViewArticle, true},
		{models.RoleReader, PermAddArticle, false},
		{models.RoleReader, PermApproveArticle, false},
		{models.RoleEditor, PermReviewArticles, true},
		{models.RoleEditor, PermApproveArticle, true},
		{models.RoleEditor, PermAddArticle, false},
		{models.RoleJournalist, PermAddArticle, true},
		{models.RoleJournalist, PermApproveArticle, false},
		{models.RoleJournalist, PermAddNewsletter, true},
		{"admin", PermViewArticle, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HasPermission(tc.role, tc.perm),
			"role %q perm %q", tc.role, tc.perm)
	}
}
