// Package policy holds the access-control rules applied by the resource
// services. Each rule is a pure predicate over the requester's token claims
// and the target resource's membership; resolution of the resources
// themselves stays in the services.
package policy

// Requester identifies the authenticated caller of a request.
type Requester struct {
	Username string
	IsAdmin  bool
}

// isAnnotator reports whether username appears among annotators.
func isAnnotator(username string, annotators []string) bool {
	for _, a := range annotators {
		if a == username {
			return true
		}
	}
	return false
}

// CanManageProjects gates project creation and deletion, sentence creation,
// project listing, and role management: admins only.
func CanManageProjects(req Requester) bool {
	return req.IsAdmin
}

// CanReadProject gates reading a single project. The requester must be an
// admin and be listed among the project's annotators; admin status alone is
// not enough.
func CanReadProject(req Requester, annotators []string) bool {
	return req.IsAdmin && isAnnotator(req.Username, annotators)
}

// CanAccessSentences gates sentence and translation access under a project:
// admins bypass the membership check, everyone else must be an annotator.
func CanAccessSentences(req Requester, annotators []string) bool {
	return req.IsAdmin || isAnnotator(req.Username, annotators)
}

// CanModifyUser gates updating or deleting a user record: the requester
// must be the target user or an admin.
func CanModifyUser(req Requester, username string) bool {
	return req.IsAdmin || req.Username == username
}
