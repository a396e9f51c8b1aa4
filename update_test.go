package font_changer

import "testing"

func TestHasNewVersion(t *testing.T) {
	r := releaseInfo{TagName: "v1.2.0", HtmlUrl: "https://example.com/r"}
	ok, url, _ := r.hasNewVersion("1.0.0")
	if !ok || url != "https://example.com/r" {
		t.Fatalf("expected new version, got ok=%v url=%q", ok, url)
	}
	if ok, _, _ := r.hasNewVersion("1.2.0"); ok {
		t.Fatalf("same version must not report an update")
	}
	if ok, _, _ := r.hasNewVersion("2.0.0"); ok {
		t.Fatalf("older release must not report an update")
	}
}

func TestVersionLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.9.0", "1.10.0", true},
		{"2.0.0", "1.9.9", false},
		{"1.0", "1.0.1", true},
		{"1.0.0", "1.0.0", false},
	}
	for _, c := range cases {
		if got := versionLess(c.a, c.b); got != c.want {
			t.Fatalf("versionLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
