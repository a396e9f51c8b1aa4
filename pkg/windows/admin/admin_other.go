//go:build !windows

package admin

// IsAdmin always reports true off Windows; there is no HKLM to protect.
func IsAdmin() bool {
	return true
}

// MustRunWithAdmin is a no-op off Windows.
func MustRunWithAdmin() {}
