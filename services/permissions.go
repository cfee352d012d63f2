package services

import "newshub-cms/models"

// Permission names for the operations a role may perform.
const (
	PermViewArticle      = "view_article"
	PermAddArticle       = "add_article"
	PermChangeArticle    = "change_article"
	PermDeleteArticle    = "delete_article"
	PermReviewArticles   = "review_articles"
	PermApproveArticle   = "approve_article"
	PermViewNewsletter   = "view_newsletter"
	PermAddNewsletter    = "add_newsletter"
	PermChangeNewsletter = "change_newsletter"
	PermDeleteNewsletter = "delete_newsletter"
)

// rolePermissions is the static role to permission-set table. Roles are
// canonically lowercase. Services consult this before every mutation instead
// of relying on router middleware alone.
var rolePermissions = map[models.UserRole]map[string]bool{
	models.RoleReader: toSet(
		PermViewArticle, PermViewNewsletter,
	),
	models.RoleEditor: toSet(
		PermViewArticle, PermViewNewsletter,
		PermChangeArticle, PermChangeNewsletter,
		PermDeleteArticle, PermDeleteNewsletter,
		PermReviewArticles, PermApproveArticle,
	),
	models.RoleJournalist: toSet(
		PermViewArticle, PermViewNewsletter,
		PermAddArticle, PermAddNewsletter,
		PermChangeArticle, PermChangeNewsletter,
		PermDeleteArticle, PermDeleteNewsletter,
	),
}

func toSet(perms ...string) map[string]bool {
	set := make(map[string]bool, len(perms))
	for _, p := range perms {
		set[p] = true
	}
	return set
}

// HasPermission reports whether the role grants the named permission.
func HasPermission(role models.UserRole, perm string) bool {
	return rolePermissions[role][perm]
}
