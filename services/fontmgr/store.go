package fontmgr

// Registry key paths relative to HKEY_LOCAL_MACHINE.
const (
	FontsKeyPath       = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`
	SubstitutesKeyPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\FontSubstitutes`
)

// Store is the registry capability the manager mutates through. The live
// registry is global mutable state owned by the OS, so it is injected here and
// faked in tests.
//
// Implementations map missing values to ErrValueNotExist and permission
// failures to ErrAccessDenied.
type Store interface {
	// GetString reads a string value under the HKLM subkey path.
	GetString(path, name string) (string, error)
	// SetString writes a string value under the HKLM subkey path.
	SetString(path, name, value string) error
	// Delete removes a value; deleting a missing value returns ErrValueNotExist.
	Delete(path, name string) error
	// CheckWritable verifies the key can be opened for writing without
	// mutating anything. Used as a preflight so a denied Apply leaves the
	// registry untouched.
	CheckWritable(path string) error
}

// NewSystemStore returns the Store backed by the live Windows registry. On
// non-Windows builds every method fails with ErrUnsupportedPlatform.
func NewSystemStore() Store {
	return newSystemStore()
}
