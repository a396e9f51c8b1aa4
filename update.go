package font_changer

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/khiladisngh/Windows-Font-Changer/pkg/tool"
)

const (
	releaseInfoUrl = "https://api.github.com/repos/khiladisngh/Windows-Font-Changer/releases/latest"
	releaseUrl     = "https://github.com/khiladisngh/Windows-Font-Changer/releases"
)

type releaseInfo struct {
	HtmlUrl     string    `json:"html_url"`
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
}

func (r releaseInfo) hasNewVersion(currVersion string) (ok bool, url, info string) {
	latest := strings.TrimPrefix(r.TagName, "v")
	if latest == "" {
		return false, "", ""
	}
	if versionLess(currVersion, latest) {
		url = r.HtmlUrl
		if url == "" {
			url = releaseUrl
		}
		return true, url, r.Body
	}
	return false, "", ""
}

// versionLess compares dotted numeric versions; non-numeric segments fall
// back to string comparison.
func versionLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, bn := atoiSafe(as[i]), atoiSafe(bs[i])
		if an >= 0 && bn >= 0 {
			if an != bn {
				return an < bn
			}
			continue
		}
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

func atoiSafe(s string) int {
	n := 0
	if s == "" {
		return -1
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// CheckUpdate queries the latest GitHub release and reports whether a newer
// build is published.
func CheckUpdate() (ok bool, url, info string) {
	body := tool.HttpGet(releaseInfoUrl)
	if body == nil {
		return false, "", ""
	}
	var release releaseInfo
	if err := json.Unmarshal(body, &release); err != nil {
		return false, "", ""
	}
	return release.hasNewVersion(APPVersion)
}
