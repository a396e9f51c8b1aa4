package fontmgr

import "time"

// DefaultFont is the stock Windows UI font. A missing substitution value is
// normalized to it on capture, and applying it is equivalent to removing the
// substitution.
const DefaultFont = "Segoe UI"

// SubstitutionEntry maps a logical font name to the font actually rendered.
type SubstitutionEntry struct {
	Logical    string
	Substitute string
}

// FontSnapshot is the substitution table at a point in time: ordered, one
// substitute per logical name, immutable once captured.
type FontSnapshot struct {
	entries []SubstitutionEntry
}

// NewSnapshot builds a snapshot from entries. A repeated logical name keeps
// the last substitute seen.
func NewSnapshot(entries ...SubstitutionEntry) *FontSnapshot {
	s := &FontSnapshot{}
	for _, e := range entries {
		s.put(e)
	}
	return s
}

func (s *FontSnapshot) put(e SubstitutionEntry) {
	for i, have := range s.entries {
		if have.Logical == e.Logical {
			s.entries[i].Substitute = e.Substitute
			return
		}
	}
	s.entries = append(s.entries, e)
}

// Substitute returns the substitute recorded for a logical name.
func (s *FontSnapshot) Substitute(logical string) (string, bool) {
	for _, e := range s.entries {
		if e.Logical == logical {
			return e.Substitute, true
		}
	}
	return "", false
}

// Entries returns a copy of the snapshot in capture order.
func (s *FontSnapshot) Entries() []SubstitutionEntry {
	out := make([]SubstitutionEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Equal reports whether two snapshots carry the same mapping in the same order.
func (s *FontSnapshot) Equal(o *FontSnapshot) bool {
	if len(s.entries) != len(o.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// BackupRecord is a persisted snapshot. Records are written before every
// mutation and never auto-deleted.
type BackupRecord struct {
	Snapshot  *FontSnapshot
	Path      string
	CreatedAt time.Time
}

// fontFileEntry is one value of the Fonts registry key.
type fontFileEntry struct {
	name string
	file string
}

// segoeFontEntries are the stock Segoe file mappings. Applying a substitute
// blanks the "Segoe UI" ones so the substitution takes effect everywhere;
// restoring the default writes them all back.
var segoeFontEntries = []fontFileEntry{
	{"Segoe UI (TrueType)", "segoeui.ttf"},
	{"Segoe UI Bold (TrueType)", "segoeuib.ttf"},
	{"Segoe UI Bold Italic (TrueType)", "segoeuiz.ttf"},
	{"Segoe UI Italic (TrueType)", "segoeuii.ttf"},
	{"Segoe UI Light (TrueType)", "segoeuil.ttf"},
	{"Segoe UI Semibold (TrueType)", "seguisb.ttf"},
	{"Segoe UI Symbol (TrueType)", "seguisym.ttf"},
	{"Segoe UI Black (TrueType)", "seguibl.ttf"},
	{"Segoe UI Black Italic (TrueType)", "seguibli.ttf"},
	{"Segoe UI Emoji (TrueType)", "seguiemj.ttf"},
	{"Segoe UI Historic (TrueType)", "seguihis.ttf"},
	{"Segoe UI Light Italic (TrueType)", "seguili.ttf"},
	{"Segoe UI Semibold Italic (TrueType)", "seguisbi.ttf"},
	{"Segoe UI Semilight (TrueType)", "segoeuisl.ttf"},
	{"Segoe UI Semilight Italic (TrueType)", "seguisli.ttf"},
	{"Segoe MDL2 Assets (TrueType)", "segmdl2.ttf"},
	{"Segoe Print (TrueType)", "segoepr.ttf"},
	{"Segoe Print Bold (TrueType)", "segoeprb.ttf"},
	{"Segoe Script (TrueType)", "segoesc.ttf"},
	{"Segoe Script Bold (TrueType)", "segoescb.ttf"},
}
