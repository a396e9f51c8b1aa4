package fontmgr

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestManager(t *testing.T, store Store, opts ...Option) *Manager {
	t.Helper()
	backup := filepath.Join(t.TempDir(), "backup.reg")
	return New(store, append([]Option{WithBackupPath(backup)}, opts...)...)
}

func TestApplyThenCaptureYieldsApplied(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	if err := m.Apply("Calibri"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	snap, err := m.CaptureSnapshot()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	sub, ok := snap.Substitute("Segoe UI")
	if !ok || sub != "Calibri" {
		t.Fatalf("expected Segoe UI -> Calibri, got %q (present=%v)", sub, ok)
	}
}

func TestApplyBlanksSegoeFontMappings(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	if err := m.Apply("Arial"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v := fake.Values[FontsKeyPath]["Segoe UI (TrueType)"]; v != "" {
		t.Fatalf("expected blanked mapping, got %q", v)
	}
	if _, ok := fake.Values[FontsKeyPath]["Segoe Print (TrueType)"]; ok {
		t.Fatalf("apply must not touch non-Segoe-UI mappings")
	}
	if v := fake.Values[SubstitutesKeyPath]["Segoe UI"]; v != "Arial" {
		t.Fatalf("expected substitution Arial, got %q", v)
	}
}

func TestApplyWritesBackupOfPriorState(t *testing.T) {
	fake := NewFakeStore()
	_ = fake.SetString(SubstitutesKeyPath, "Segoe UI", "Calibri")
	m := newTestManager(t, fake)

	if err := m.Apply("Arial"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	rec, err := m.LoadBackup()
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	sub, _ := rec.Snapshot.Substitute("Segoe UI")
	if sub != "Calibri" {
		t.Fatalf("backup must hold the pre-apply state, got %q", sub)
	}
	if v := fake.Values[SubstitutesKeyPath]["Segoe UI"]; v != "Arial" {
		t.Fatalf("live state should be Arial, got %q", v)
	}
}

func TestApplyEmptyNameFailsValidation(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	err := m.Apply("")
	if !errors.Is(err, ErrInvalidFontName) {
		t.Fatalf("expected ErrInvalidFontName, got %v", err)
	}
	if len(fake.Journal) != 0 {
		t.Fatalf("registry must be untouched, journal: %v", fake.Journal)
	}
	if _, err := os.Stat(m.BackupPath()); !os.IsNotExist(err) {
		t.Fatalf("no backup should be written for an invalid name")
	}
}

func TestApplyUnknownFontFailsValidation(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake, WithKnownFonts([]string{"Arial", "Calibri"}))

	if err := m.Apply("Comic Sans MS"); !errors.Is(err, ErrInvalidFontName) {
		t.Fatalf("expected ErrInvalidFontName, got %v", err)
	}
	if err := m.Apply("calibri"); err != nil {
		t.Fatalf("known-font match should ignore case: %v", err)
	}
}

func TestApplyAccessDeniedNoPartialWrite(t *testing.T) {
	fake := NewFakeStore()
	fake.DenyWrite = true
	m := newTestManager(t, fake)

	err := m.Apply("Arial")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if len(fake.Journal) != 0 {
		t.Fatalf("denied apply must not write anything, journal: %v", fake.Journal)
	}
}

func TestCaptureSnapshotAccessDenied(t *testing.T) {
	fake := NewFakeStore()
	fake.DenyRead = true
	m := newTestManager(t, fake)

	if _, err := m.CaptureSnapshot(); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestCaptureSnapshotNormalizesMissingValue(t *testing.T) {
	m := newTestManager(t, NewFakeStore())

	snap, err := m.CaptureSnapshot()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	sub, ok := snap.Substitute("Segoe UI")
	if !ok || sub != "Segoe UI" {
		t.Fatalf("missing value must normalize to the default, got %q", sub)
	}
}

func TestRestoreDefault(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	if err := m.Apply("Arial"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := m.RestoreDefault(); err != nil {
		t.Fatalf("restore default: %v", err)
	}
	if _, ok := fake.Values[SubstitutesKeyPath]["Segoe UI"]; ok {
		t.Fatalf("substitution value should be removed")
	}
	if v := fake.Values[FontsKeyPath]["Segoe UI (TrueType)"]; v != "segoeui.ttf" {
		t.Fatalf("font file mapping should be restored, got %q", v)
	}
	snap, err := m.CaptureSnapshot()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if sub, _ := snap.Substitute("Segoe UI"); sub != "Segoe UI" {
		t.Fatalf("expected default substitute, got %q", sub)
	}
}

func TestRestoreDefaultWithoutPriorSubstitution(t *testing.T) {
	m := newTestManager(t, NewFakeStore())

	// missing substitution value is tolerated
	if err := m.RestoreDefault(); err != nil {
		t.Fatalf("restore default on clean state: %v", err)
	}
}

func TestRestoreSnapshotReplays(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	snap := NewSnapshot(SubstitutionEntry{Logical: "Segoe UI", Substitute: "Tahoma"})
	if err := m.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if v := fake.Values[SubstitutesKeyPath]["Segoe UI"]; v != "Tahoma" {
		t.Fatalf("expected Tahoma, got %q", v)
	}

	if err := m.Restore(NewSnapshot(SubstitutionEntry{Logical: "Segoe UI", Substitute: "Segoe UI"})); err != nil {
		t.Fatalf("restore default snapshot: %v", err)
	}
	if _, ok := fake.Values[SubstitutesKeyPath]["Segoe UI"]; ok {
		t.Fatalf("default snapshot should remove the substitution")
	}
}

func TestRestoreSnapshotMatchesApplyState(t *testing.T) {
	fake := NewFakeStore()
	// stock font table, as present on a real system
	for _, e := range segoeFontEntries {
		_ = fake.SetString(FontsKeyPath, e.name, e.file)
	}
	m := newTestManager(t, fake)

	if err := m.Apply("Arial"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	snap, err := m.CaptureSnapshot()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	applied := cloneValues(fake.Values)

	if err := m.RestoreDefault(); err != nil {
		t.Fatalf("restore default: %v", err)
	}
	if err := m.Restore(snap); err != nil {
		t.Fatalf("restore snapshot: %v", err)
	}

	// replaying the snapshot must land on the same registry state a fresh
	// Apply (and a regedit import of the exported script) produces
	if v := fake.Values[FontsKeyPath]["Segoe UI (TrueType)"]; v != "" {
		t.Fatalf("restore must blank the Segoe UI mapping, got %q", v)
	}
	for _, path := range []string{FontsKeyPath, SubstitutesKeyPath} {
		if !reflect.DeepEqual(fake.Values[path], applied[path]) {
			t.Fatalf("state under %s diverged:\n got %v\nwant %v", path, fake.Values[path], applied[path])
		}
	}
}

func cloneValues(values map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(values))
	for path, kv := range values {
		inner := make(map[string]string, len(kv))
		for k, v := range kv {
			inner[k] = v
		}
		out[path] = inner
	}
	return out
}

func TestBackupExportRoundTrip(t *testing.T) {
	fake := NewFakeStore()
	_ = fake.SetString(SubstitutesKeyPath, "Segoe UI", "Calibri")
	m := newTestManager(t, fake)

	snap, err := m.CaptureSnapshot()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	rec, err := m.Backup(snap)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	exportPath := filepath.Join(t.TempDir(), "export.reg")
	if err := m.ExportToScript(rec.Snapshot, exportPath); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	parsed, err := ParseScript(data)
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if !parsed.Equal(snap) {
		t.Fatalf("round trip mismatch: %v vs %v", parsed.Entries(), snap.Entries())
	}
}

func TestScenarioApplyThenRestore(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	if err := m.Apply("Calibri"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	snap, _ := m.CaptureSnapshot()
	if sub, _ := snap.Substitute("Segoe UI"); sub != "Calibri" {
		t.Fatalf("expected Calibri, got %q", sub)
	}

	if err := m.RestoreDefault(); err != nil {
		t.Fatalf("restore default: %v", err)
	}
	snap, _ = m.CaptureSnapshot()
	if sub, _ := snap.Substitute("Segoe UI"); sub != "Segoe UI" {
		t.Fatalf("expected default, got %q", sub)
	}
}

func TestCurrentSubstitute(t *testing.T) {
	fake := NewFakeStore()
	m := newTestManager(t, fake)

	cur, err := m.CurrentSubstitute()
	if err != nil || cur != "Segoe UI" {
		t.Fatalf("expected default on clean state, got %q, %v", cur, err)
	}
	_ = fake.SetString(SubstitutesKeyPath, "Segoe UI", "Verdana")
	cur, err = m.CurrentSubstitute()
	if err != nil || cur != "Verdana" {
		t.Fatalf("expected Verdana, got %q, %v", cur, err)
	}
}
