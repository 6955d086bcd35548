package misc

import "testing"

func TestVersionInfo(t *testing.T) {
	if GetAppName() != "mapsheet" {
		t.Errorf("GetAppName() = %q", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("GetVersion() is empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() is empty")
	}
}
