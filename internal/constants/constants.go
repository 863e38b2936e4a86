package constants

// SessionCookieName is the name of the session cookie issued to clients.
const SessionCookieName = "recipe_session"

// ContextKeyUserID is the key under which the authenticated user ID is stored,
// both in the session and in the gin request context.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// MinInstructionsLength is the minimum accepted length for recipe instructions.
// This is mirrored by a database check constraint on the recipes table.
const MinInstructionsLength = 50
