package domain

import "errors"

var (
	// ErrMissingCredential is returned when no GitHub token could be resolved.
	ErrMissingCredential = errors.New("github token is required")
	// ErrMissingBaseRelease is returned when a tag must be derived but the
	// repository has no release to derive it from.
	ErrMissingBaseRelease = errors.New("need tag_name: repository has no previous release")
	// ErrInvalidTagFormat is returned for tags without any numeric component.
	ErrInvalidTagFormat = errors.New("invalid tag format")
)
