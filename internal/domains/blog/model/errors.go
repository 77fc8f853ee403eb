package model

import "errors"

var (
	// ErrBlogNotFound is returned by update when the target id does not
	// exist. Single-get never returns it; a missing post there is a null
	// payload, not an error.
	ErrBlogNotFound = errors.New("blog not found")
)
