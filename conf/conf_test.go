package conf

import "testing"

func TestValidClientConf(t *testing.T) {
	ok := &Client{ExportDir: "."}
	if err := ValidClientConf(ok); err != nil {
		t.Fatalf("valid conf rejected: %v", err)
	}
	bad := &Client{}
	if err := ValidClientConf(bad); err == nil {
		t.Fatalf("conf without export dir should be rejected")
	}
}
