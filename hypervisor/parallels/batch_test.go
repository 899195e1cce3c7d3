package parallels

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/cocoonstack/prlctl/executor/recorder"
	"github.com/cocoonstack/prlctl/hypervisor"
)

func TestParallels_StartOnlyStopped(t *testing.T) {
	rec := withListings(t, recorder.New()).On("prlctl start "+templateUUID+" --wait", "")
	started, err := newTestClient(t, rec).Start(context.Background(), []string{"template", "runner-1"}, true)
	if !errors.Is(err, hypervisor.ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase for the running VM, got %v", err)
	}
	if len(started) != 1 || started[0] != templateUUID {
		t.Errorf("expected only template started, got %q", started)
	}
}

func TestParallels_StopOnlyRunning(t *testing.T) {
	rec := withListings(t, recorder.New()).
		On("prlctl stop "+runner1UUID, "").
		On("prlctl stop "+runner2UUID, "")
	stopped, err := newTestClient(t, rec).Stop(context.Background(), []string{"runner-1", "runner-2"}, false)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	slices.Sort(stopped)
	if !slices.Equal(stopped, []string{runner1UUID, runner2UUID}) {
		t.Errorf("unexpected stopped set %q", stopped)
	}
}

func TestParallels_BatchUnknownRef(t *testing.T) {
	rec := withListings(t, recorder.New())
	_, err := newTestClient(t, rec).Delete(context.Background(), []string{"template", "ghost"})
	if !errors.Is(err, hypervisor.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectCommands(t, rec, listCmd, infoCmd)
}

func TestParallels_BatchDeduplicates(t *testing.T) {
	rec := withListings(t, recorder.New()).On("prlctl unregister "+templateUUID, "")
	done, err := newTestClient(t, rec).Unregister(context.Background(), []string{"template", templateUUID})
	if err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if len(done) != 1 {
		t.Errorf("expected one unregister, got %q", done)
	}
}

func TestParallels_BatchDeleteBestEffort(t *testing.T) {
	rec := withListings(t, recorder.New()).
		On("prlctl stop "+templateUUID+" --fast", "").
		On("prlctl delete "+templateUUID, "").
		On("prlctl stop "+suspendUUID+" --fast", "").
		Fail("prlctl delete "+suspendUUID, errors.New("locked"))
	deleted, err := newTestClient(t, rec).Delete(context.Background(), []string{"template", "suspended-vm"})
	if err == nil {
		t.Fatal("expected the failed delete to be reported")
	}
	if len(deleted) != 1 || deleted[0] != templateUUID {
		t.Errorf("expected template deleted despite the other failure, got %q", deleted)
	}
}
