package parallels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cocoonstack/prlctl/config"
	"github.com/cocoonstack/prlctl/executor/recorder"
)

const (
	listCmd = "prlctl list --json --full --all"
	infoCmd = "prlctl list --json --full --all --info"

	runner1UUID  = "{11111111-1111-4111-8111-111111111111}"
	templateUUID = "{22222222-2222-4222-8222-222222222222}"
	packagedUUID = "{bd70007c-83b8-4642-b1d0-fa8ddfa0a4cf}"
	suspendUUID  = "{33333333-3333-4333-8333-333333333333}"
	runner2UUID  = "{44444444-4444-4444-8444-444444444444}"
	orphanUUID   = "{55555555-5555-4555-8555-555555555555}"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(data)
}

// withListings registers the standard list and info fixtures.
func withListings(t *testing.T, rec *recorder.Recorder) *recorder.Recorder {
	t.Helper()
	return rec.On(listCmd, fixture(t, "vm-list.json")).On(infoCmd, fixture(t, "vm-info.json"))
}

func newTestClient(t *testing.T, rec *recorder.Recorder) *Parallels {
	t.Helper()
	p, err := New(config.DefaultConfig(), rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func expectCommands(t *testing.T, rec *recorder.Recorder, want ...string) {
	t.Helper()
	got := rec.Commands()
	if len(got) != len(want) {
		t.Fatalf("expected %d commands %q, got %d %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
