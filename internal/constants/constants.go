package constants

import "time"

const (
	// SessionCookieName is the cookie carrying the signed identity token.
	SessionCookieName = "token"

	// ContextKeyIdentity is the gin context key holding the resolved caller identity.
	ContextKeyIdentity = "identity"

	// ContextKeyRequestID is the gin context key holding the request id.
	ContextKeyRequestID = "request_id"

	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 6

	// TokenTTL is how long an issued identity token stays valid.
	TokenTTL = 7 * 24 * time.Hour

	// MaxFileSize is the per-file upload limit (5 MiB).
	MaxFileSize int64 = 5 << 20

	// MaxFilesPerUpload caps the number of files in one upload request.
	MaxFilesPerUpload = 10

	// UploadFormField is the multipart field name carrying the files.
	UploadFormField = "files"

	// PublicBlobPath is the route prefix files are served back under.
	PublicBlobPath = "/uploads/"
)
