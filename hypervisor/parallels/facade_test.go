package parallels

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cocoonstack/prlctl/config"
	"github.com/cocoonstack/prlctl/executor/recorder"
	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/types"
)

func TestParallels_HandleCommands(t *testing.T) {
	ctx := context.Background()
	rec := recorder.WithDefault("out")
	p := newTestClient(t, rec)

	steps := []struct {
		run  func() error
		want string
	}{
		{func() error { return p.StartVM(ctx, "vm", true) }, "prlctl start vm --wait"},
		{func() error { return p.ShutdownVM(ctx, "vm", true) }, "prlctl stop vm --fast"},
		{func() error { return p.CloneVM(ctx, "vm", "copy", true) }, "prlctl clone vm --name copy --linked"},
		{func() error { return p.RenameVM(ctx, "vm", "other") }, "prlctl set vm --name other"},
		{func() error { return p.UnpackVM(ctx, "vm") }, "prlctl unpack vm"},
		{func() error { return p.SetVMOption(ctx, "vm", types.CPUCount(2)) }, "prlctl set vm --cpus 2"},
		{func() error { return p.UnregisterVM(ctx, "vm") }, "prlctl unregister vm"},
		{func() error { return p.RegisterVM(ctx, "/vms/a.pvm") }, "prlctl register /vms/a.pvm --preserve-uuid=no"},
		{func() error {
			return p.DeleteSnapshot(ctx, types.VMSnapshot{UUID: "s1", Owner: types.VMRef{UUID: "owner"}})
		}, "prlctl snapshot-delete owner -i s1"},
		{func() error {
			_, err := p.RunCommand(ctx, "vm", "whoami", types.NewUser("builder"))
			return err
		}, "prlctl exec vm su - 'builder' -c 'whoami'"},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			t.Errorf("%s: %v", s.want, err)
			continue
		}
		if got := rec.Last(); got != s.want {
			t.Errorf("expected %q, got %q", s.want, got)
		}
	}
}

func TestParallels_DeleteVM(t *testing.T) {
	rec := recorder.New().
		Fail("prlctl stop vm --fast", errors.New("not running")).
		On("prlctl delete vm", "")
	if err := newTestClient(t, rec).DeleteVM(context.Background(), "vm"); err != nil {
		t.Fatalf("DeleteVM: %v", err)
	}
	expectCommands(t, rec, "prlctl stop vm --fast", "prlctl delete vm")
}

func TestParallels_ImportVM(t *testing.T) {
	before := `[{"uuid":"u1","name":"a","status":"stopped","ip_configured":"-"}]`
	after := `[{"uuid":"u1","name":"a","status":"stopped","ip_configured":"-"},{"uuid":"u2","name":"b","status":"stopped","ip_configured":"-"}]`
	info := `[{"ID":"u1","Home":"/vms/a.pvm"},{"ID":"u2","Home":"/vms/b.pvm"}]`
	rec := recorder.New().
		On(listCmd, before).
		On(listCmd, after).
		On(infoCmd, info).
		On("prlctl register /vms/b.pvm --preserve-uuid=no", "")

	vm, err := newTestClient(t, rec).ImportVM(context.Background(), "/vms/b.pvm")
	if err != nil {
		t.Fatalf("ImportVM: %v", err)
	}
	if vm == nil || vm.UUID != "u2" {
		t.Fatalf("expected the new VM u2, got %+v", vm)
	}
	expectCommands(t, rec, listCmd, infoCmd, "prlctl register /vms/b.pvm --preserve-uuid=no", listCmd, infoCmd)
}

func TestParallels_ImportVMNothingNew(t *testing.T) {
	rec := withListings(t, recorder.New()).On("prlctl register /vms/a.pvm --preserve-uuid=no", "")
	vm, err := newTestClient(t, rec).ImportVM(context.Background(), "/vms/a.pvm")
	if err != nil {
		t.Fatalf("ImportVM: %v", err)
	}
	if vm != nil {
		t.Fatalf("expected nil when no new VM appears, got %+v", vm)
	}
}

func TestParallels_ImportVMRegisterFailure(t *testing.T) {
	rec := withListings(t, recorder.New()).Fail("prlctl register /vms/a.pvm --preserve-uuid=no", errors.New("bad bundle"))
	if _, err := newTestClient(t, rec).ImportVM(context.Background(), "/vms/a.pvm"); err == nil {
		t.Fatal("expected error")
	}
	if n := len(rec.Commands()); n != 3 {
		t.Errorf("expected no listing after a failed register, got %d commands", n)
	}
}

func TestParallels_SnapshotsForVMEmptyShortCircuits(t *testing.T) {
	rec := recorder.New().On("prlctl snapshot-list template --json", "{}")
	snaps, err := newTestClient(t, rec).SnapshotsForVM(context.Background(), "template")
	if err != nil {
		t.Fatalf("SnapshotsForVM: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected none, got %d", len(snaps))
	}
	expectCommands(t, rec, "prlctl snapshot-list template --json")
}

func TestParallels_SnapshotsForVMResolvesOwner(t *testing.T) {
	rec := withListings(t, recorder.New()).On("prlctl snapshot-list template --json", fixture(t, "vm-snapshot-list.json"))
	snaps, err := newTestClient(t, rec).SnapshotsForVM(context.Background(), "template")
	if err != nil {
		t.Fatalf("SnapshotsForVM: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	for _, s := range snaps {
		if s.Owner.UUID != templateUUID {
			t.Errorf("expected owner %s, got %s", templateUUID, s.Owner.UUID)
		}
	}
}

func TestParallels_SnapshotsForVMUnknownOwner(t *testing.T) {
	rec := withListings(t, recorder.New()).On("prlctl snapshot-list ghost --json", fixture(t, "vm-snapshot-list.json"))
	snaps, err := newTestClient(t, rec).SnapshotsForVM(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("SnapshotsForVM: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected none for an unknown owner, got %d", len(snaps))
	}
}

func TestParallels_CleanVM(t *testing.T) {
	rec := withListings(t, recorder.New()).
		On("prlctl snapshot-list template --json", fixture(t, "vm-snapshot-list.json")).
		On("prlctl snapshot-delete "+templateUUID+" -i {0a6c3c1e-5b0f-4f3e-9a53-0d2f6f0b8c11}", "").
		On("prlctl snapshot-delete "+templateUUID+" -i {64d481bb-ce04-45b1-8328-49e4e4c43ddf}", "")
	if err := newTestClient(t, rec).CleanVM(context.Background(), "template"); err != nil {
		t.Fatalf("CleanVM: %v", err)
	}
	if got, want := rec.Last(), "prlctl snapshot-delete "+templateUUID+" -i {64d481bb-ce04-45b1-8328-49e4e4c43ddf}"; got != want {
		t.Errorf("expected last command %q, got %q", want, got)
	}
}

func TestParallels_InstallLicense(t *testing.T) {
	rec := recorder.New()
	if err := newTestClient(t, rec).InstallLicense(context.Background(), "ABC-123", "Acme"); err != nil {
		t.Fatalf("InstallLicense: %v", err)
	}
	expectCommands(t, rec, "prlsrvctl install-license -k ABC-123 --company Acme --activate-online-immediately")
}

func TestParallels_InstallLicenseEmptyKey(t *testing.T) {
	rec := recorder.New()
	if err := newTestClient(t, rec).InstallLicense(context.Background(), "", "Acme"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if len(rec.Commands()) != 0 {
		t.Error("no command should run")
	}
}

func TestParallels_CustomBinaries(t *testing.T) {
	conf := config.DefaultConfig()
	conf.PrlctlBinary = "/usr/local/bin/prlctl"
	conf.PrlsrvctlBinary = "/usr/local/bin/prlsrvctl"
	rec := recorder.New()
	p, err := New(conf, rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	_ = p.StartVM(ctx, "vm", false)
	_ = p.InstallLicense(ctx, "k", "c")
	expectCommands(t, rec,
		"/usr/local/bin/prlctl start vm",
		"/usr/local/bin/prlsrvctl install-license -k k --company c --activate-online-immediately",
	)
}

func TestParallels_LockFile(t *testing.T) {
	conf := config.DefaultConfig()
	conf.LockFile = filepath.Join(t.TempDir(), "prlctl.lock")
	rec := recorder.New()
	p, err := New(conf, rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.StartVM(context.Background(), "vm", false); err != nil {
		t.Fatalf("StartVM: %v", err)
	}
	if err := p.StartVM(context.Background(), "vm", false); err != nil {
		t.Fatalf("second StartVM should reacquire the lock: %v", err)
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil, recorder.New()); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestParallels_Inspect(t *testing.T) {
	p := newTestClient(t, withListings(t, recorder.New()))
	vm, err := p.Inspect(context.Background(), "runner-1")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if vm.UUID != runner1UUID {
		t.Errorf("expected %s, got %s", runner1UUID, vm.UUID)
	}
	if _, err := p.Inspect(context.Background(), "ghost"); !errors.Is(err, hypervisor.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
