package constants

// PostDateFormat is the display date stamped onto a post at creation.
const PostDateFormat = "January 02, 2006"

// Comment deletion policies. The historical behavior lets any signed-in user
// delete any comment; the strict policy limits it to the author or the admin.
const (
	CommentDeleteAnyUser      = "any-user"
	CommentDeleteOwnerOrAdmin = "owner-or-admin"
)
