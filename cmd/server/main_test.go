package main

import "testing"

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--addr", "127.0.0.1:9999", "--web-dir", "/tmp/web", "-v", "2"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if got, _ := cmd.Flags().GetString("addr"); got != "127.0.0.1:9999" {
		t.Errorf("addr = %q, want %q", got, "127.0.0.1:9999")
	}
	if got, _ := cmd.Flags().GetString("web-dir"); got != "/tmp/web" {
		t.Errorf("web-dir = %q, want %q", got, "/tmp/web")
	}
}
