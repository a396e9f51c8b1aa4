package fontmgr

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// .reg scripts are what regedit.exe expects: the version-5 header, CRLF line
// endings and UTF-16LE with a byte order mark. "name"=- deletes a value, which
// is how the default (no substitution) state is expressed.
const regHeader = "Windows Registry Editor Version 5.00"

const hklmPrefix = `HKEY_LOCAL_MACHINE\`

// EncodeScript serializes a snapshot to .reg script bytes. Pure function, no
// system access.
func EncodeScript(snap *FontSnapshot) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.Bytes([]byte(ScriptText(snap)))
	if err != nil {
		return nil, errors.Wrap(err, "encoding registry script")
	}
	return out, nil
}

// ScriptText renders the script as plain text, for previews and the
// clipboard.
func ScriptText(snap *FontSnapshot) string {
	var b strings.Builder
	b.WriteString(regHeader)
	b.WriteString("\r\n\r\n")

	b.WriteString("[" + hklmPrefix + FontsKeyPath + "]\r\n")
	segoeSub, ok := snap.Substitute(DefaultFont)
	substituted := ok && segoeSub != DefaultFont
	for _, e := range segoeFontEntries {
		if substituted && strings.Contains(e.name, DefaultFont) {
			// blanked so the substitution wins at render time
			writeValueLine(&b, e.name, "")
			continue
		}
		writeValueLine(&b, e.name, e.file)
	}
	b.WriteString("\r\n")

	b.WriteString("[" + hklmPrefix + SubstitutesKeyPath + "]\r\n")
	for _, e := range snap.Entries() {
		if e.Substitute == DefaultFont {
			b.WriteString(quoteName(e.Logical) + "=-\r\n")
			continue
		}
		writeValueLine(&b, e.Logical, e.Substitute)
	}
	return b.String()
}

// ParseScript reads a .reg script (UTF-16LE with BOM, or plain UTF-8) back
// into the snapshot recorded in its FontSubstitutes section.
func ParseScript(data []byte) (*FontSnapshot, error) {
	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		decoded, err := dec.Bytes(data)
		if err != nil {
			return nil, errors.Wrap(ErrBadScript, err.Error())
		}
		data = decoded
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "Windows Registry Editor") {
		return nil, errors.Wrap(ErrBadScript, "missing header")
	}

	var entries []SubstitutionEntry
	inSubstitutes := false
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
		case strings.HasPrefix(line, "["):
			inSubstitutes = strings.HasSuffix(line, `\FontSubstitutes]`)
		case inSubstitutes:
			name, value, deleted, err := parseValueLine(line)
			if err != nil {
				return nil, err
			}
			if deleted {
				value = DefaultFont
			}
			entries = append(entries, SubstitutionEntry{Logical: name, Substitute: value})
		}
	}
	return NewSnapshot(entries...), nil
}

func writeValueLine(b *strings.Builder, name, value string) {
	b.WriteString(quoteName(name) + "=" + quoteName(value) + "\r\n")
}

func quoteName(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func parseValueLine(line string) (name, value string, deleted bool, err error) {
	if !strings.HasPrefix(line, `"`) {
		return "", "", false, errors.Wrap(ErrBadScript, line)
	}
	name, rest, err := readQuoted(line)
	if err != nil {
		return "", "", false, err
	}
	if !strings.HasPrefix(rest, "=") {
		return "", "", false, errors.Wrap(ErrBadScript, line)
	}
	rest = rest[1:]
	if rest == "-" {
		return name, "", true, nil
	}
	value, rest, err = readQuoted(rest)
	if err != nil || rest != "" {
		return "", "", false, errors.Wrap(ErrBadScript, line)
	}
	return name, value, false, nil
}

// readQuoted consumes a leading quoted string, handling \" and \\ escapes.
func readQuoted(s string) (string, string, error) {
	if len(s) < 2 || s[0] != '"' {
		return "", "", errors.Wrap(ErrBadScript, s)
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", errors.Wrap(ErrBadScript, s)
			}
			i++
			b.WriteByte(s[i])
		case '"':
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", "", errors.Wrap(ErrBadScript, s)
}
