// Package auth implements the signup and login flows.
//
// Signup enforces three preconditions in order: the default BASIC role must
// exist, the payload must pass schema validation, and the email must not
// already belong to a user. The user row and its BASIC role membership are
// created atomically.
//
// Login resolves the user by email, verifies the Argon2id password hash and
// issues a signed bearer token carrying the email claim. Possession of a
// validly-signed token whose email resolves to an existing user is the sole
// authorization proof in the system; the bearer middleware in
// internal/web/middleware/auth performs that resolution per request.
package auth
