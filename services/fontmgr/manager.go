// Package fontmgr implements the font-substitution registry transaction:
// capture the current state, back it up, then mutate. Every mutating
// operation is recoverable from the backup written immediately before it.
package fontmgr

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// BackupFileName is the fixed backup location under the user's home directory.
const BackupFileName = ".windows_font_changer_backup.reg"

type Manager struct {
	store        Store
	backupPath   string
	logicalNames []string
	knownFonts   map[string]struct{}
}

type Option func(*Manager)

// WithBackupPath overrides the fixed backup file location.
func WithBackupPath(path string) Option {
	return func(m *Manager) {
		m.backupPath = path
	}
}

// WithKnownFonts makes Apply reject font names absent from the list.
func WithKnownFonts(fonts []string) Option {
	return func(m *Manager) {
		m.knownFonts = make(map[string]struct{}, len(fonts))
		for _, f := range fonts {
			m.knownFonts[strings.ToLower(f)] = struct{}{}
		}
	}
}

func New(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:        store,
		logicalNames: []string{DefaultFont},
	}
	for _, fn := range opts {
		fn(m)
	}
	if m.backupPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		m.backupPath = filepath.Join(home, BackupFileName)
	}
	return m
}

// BackupPath returns the fixed path Backup writes to.
func (m *Manager) BackupPath() string {
	return m.backupPath
}

// CurrentSubstitute reads the live substitute for the managed logical name.
// A missing value means no substitution, reported as DefaultFont.
func (m *Manager) CurrentSubstitute() (string, error) {
	v, err := m.store.GetString(SubstitutesKeyPath, DefaultFont)
	if errors.Is(err, ErrValueNotExist) {
		return DefaultFont, nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// CaptureSnapshot reads the substitution table for the managed logical names.
// All-or-nothing: any read failure aborts the capture.
func (m *Manager) CaptureSnapshot() (*FontSnapshot, error) {
	entries := make([]SubstitutionEntry, 0, len(m.logicalNames))
	for _, logical := range m.logicalNames {
		v, err := m.store.GetString(SubstitutesKeyPath, logical)
		if errors.Is(err, ErrValueNotExist) {
			v = DefaultFont
		} else if err != nil {
			return nil, errors.Wrapf(err, "capturing substitution for %q", logical)
		}
		entries = append(entries, SubstitutionEntry{Logical: logical, Substitute: v})
	}
	return NewSnapshot(entries...), nil
}

// Backup serializes a snapshot to the fixed backup path, overwriting any
// prior backup there.
func (m *Manager) Backup(snap *FontSnapshot) (*BackupRecord, error) {
	data, err := EncodeScript(snap)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(m.backupPath, data, 0o644); err != nil {
		return nil, errors.Wrap(err, "writing backup file")
	}
	return &BackupRecord{
		Snapshot:  snap,
		Path:      m.backupPath,
		CreatedAt: time.Now(),
	}, nil
}

// LoadBackup reads the snapshot persisted at the fixed backup path.
func (m *Manager) LoadBackup() (*BackupRecord, error) {
	data, err := os.ReadFile(m.backupPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading backup file")
	}
	snap, err := ParseScript(data)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(m.backupPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading backup file")
	}
	return &BackupRecord{Snapshot: snap, Path: m.backupPath, CreatedAt: info.ModTime()}, nil
}

// Apply sets fontName as the substitute for the managed logical name.
// Ordering is capture -> backup -> preflight -> mutate, so the previous state
// is always recoverable and a denied write leaves the registry untouched.
func (m *Manager) Apply(fontName string) error {
	if err := m.validateFontName(fontName); err != nil {
		return err
	}
	if err := m.backupCurrent(); err != nil {
		return err
	}
	if err := m.preflight(); err != nil {
		return err
	}
	return m.applySubstituteValues(fontName)
}

// RestoreDefault removes the substitution so the managed logical name maps
// back to the OS default, restoring the stock font file table.
func (m *Manager) RestoreDefault() error {
	if err := m.backupCurrent(); err != nil {
		return err
	}
	if err := m.preflight(); err != nil {
		return err
	}
	return m.restoreDefaultValues()
}

// Restore replays a snapshot to the live registry. Default entries remove the
// substitution; others overwrite it.
func (m *Manager) Restore(snap *FontSnapshot) error {
	if err := m.backupCurrent(); err != nil {
		return err
	}
	if err := m.preflight(); err != nil {
		return err
	}
	for _, e := range snap.Entries() {
		if e.Logical != DefaultFont {
			if err := m.store.SetString(SubstitutesKeyPath, e.Logical, e.Substitute); err != nil {
				return errors.Wrapf(err, "restoring substitution for %q", e.Logical)
			}
			continue
		}
		if e.Substitute == DefaultFont {
			if err := m.restoreDefaultValues(); err != nil {
				return err
			}
			continue
		}
		// same writes as Apply, so a replayed snapshot and a regedit
		// import of its script land on identical state
		if err := m.applySubstituteValues(e.Substitute); err != nil {
			return err
		}
	}
	return nil
}

// ExportToScript writes a snapshot to path as a re-importable .reg script.
// Pure serialization, no registry access.
func (m *Manager) ExportToScript(snap *FontSnapshot, path string) error {
	data, err := EncodeScript(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing registry script")
	}
	return nil
}

func (m *Manager) validateFontName(fontName string) error {
	if strings.TrimSpace(fontName) == "" {
		return errors.Wrap(ErrInvalidFontName, "empty font name")
	}
	if m.knownFonts != nil {
		if _, ok := m.knownFonts[strings.ToLower(fontName)]; !ok {
			return errors.Wrapf(ErrInvalidFontName, "%q is not installed", fontName)
		}
	}
	return nil
}

func (m *Manager) backupCurrent() error {
	snap, err := m.CaptureSnapshot()
	if err != nil {
		return err
	}
	if _, err := m.Backup(snap); err != nil {
		return err
	}
	return nil
}

func (m *Manager) preflight() error {
	if err := m.store.CheckWritable(FontsKeyPath); err != nil {
		return err
	}
	return m.store.CheckWritable(SubstitutesKeyPath)
}

// applySubstituteValues blanks the Segoe UI file mappings and writes the
// substitution value, the mutation shared by Apply and Restore.
func (m *Manager) applySubstituteValues(fontName string) error {
	for _, e := range segoeFontEntries {
		if !strings.Contains(e.name, DefaultFont) {
			continue
		}
		if err := m.store.SetString(FontsKeyPath, e.name, ""); err != nil {
			return errors.Wrapf(err, "clearing font mapping %q", e.name)
		}
	}
	if err := m.store.SetString(SubstitutesKeyPath, DefaultFont, fontName); err != nil {
		return errors.Wrapf(err, "setting substitution to %q", fontName)
	}
	return nil
}

func (m *Manager) restoreDefaultValues() error {
	for _, e := range segoeFontEntries {
		if err := m.store.SetString(FontsKeyPath, e.name, e.file); err != nil {
			return errors.Wrapf(err, "restoring font mapping %q", e.name)
		}
	}
	err := m.store.Delete(SubstitutesKeyPath, DefaultFont)
	if err != nil && !errors.Is(err, ErrValueNotExist) {
		return errors.Wrap(err, "removing substitution")
	}
	return nil
}
