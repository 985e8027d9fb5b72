package contextkeys

// Keys under which middleware stores request-scoped values in the gin context.
// A dedicated type avoids collisions with keys set by other packages.
type contextKey string

func (k contextKey) String() string { return string(k) }

// CurrentUserKey holds the authenticated *models.User attached by the auth
// middleware. The stored user always has the password hash blanked.
const CurrentUserKey = contextKey("currentUser")
