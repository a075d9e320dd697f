package repository

import "time"

const (
	// DefaultHTTPTimeout bounds every request made to the GitHub API.
	DefaultHTTPTimeout = 30 * time.Second
	// publicAPIHost is the host of github.com's REST API.
	publicAPIHost = "api.github.com"
	// OutputFilePermissions is used when the Actions output file has to be created.
	OutputFilePermissions = 0644
)
