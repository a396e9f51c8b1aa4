package fontmgr

import "github.com/pkg/errors"

var (
	// ErrAccessDenied means the registry refused the operation; the process
	// needs administrator privileges.
	ErrAccessDenied = errors.New("registry access denied, run as administrator")

	// ErrInvalidFontName is returned by Apply for an empty font name or a
	// name absent from the configured known-fonts list.
	ErrInvalidFontName = errors.New("invalid font name")

	// ErrValueNotExist is returned by a Store when the requested value is
	// not present under the key.
	ErrValueNotExist = errors.New("registry value does not exist")

	// ErrUnsupportedPlatform is returned by the real store on non-Windows
	// builds.
	ErrUnsupportedPlatform = errors.New("font substitution requires Windows")

	// ErrBadScript is returned when a .reg script cannot be parsed back
	// into a snapshot.
	ErrBadScript = errors.New("malformed registry script")
)
