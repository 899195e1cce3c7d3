package vm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	cmdcore "github.com/cocoonstack/prlctl/cmd/core"
	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/types"
)

const ipPollInterval = 2 * time.Second

type Handler struct {
	cmdcore.BaseHandler
}

func (h Handler) List(cmd *cobra.Command, _ []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	status, _ := cmd.Flags().GetString("status")
	if status != "" && !types.VMStatus(status).Valid() {
		return fmt.Errorf("unknown status %q", status)
	}

	vms, err := p.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0) //nolint:mnd
	_, _ = fmt.Fprintln(w, "UUID\tNAME\tSTATUS\tIP")
	shown := 0
	for _, vm := range vms {
		if status != "" && string(vm.Status) != status {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", vm.UUID, vm.Name, vm.Status, vm.IPAddress)
		shown++
	}
	if shown == 0 {
		fmt.Println("No VMs found.")
		return nil
	}
	w.Flush() //nolint:errcheck,gosec
	return nil
}

func (h Handler) Inspect(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	vm, err := p.Inspect(ctx, args[0])
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(vm)
}

func (h Handler) Start(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	wait, _ := cmd.Flags().GetBool("wait")
	waitIP, _ := cmd.Flags().GetDuration("wait-ip")

	started, err := p.Start(ctx, args, wait)
	if batchErr := reportBatch(ctx, "start", "started", started, err); batchErr != nil || waitIP <= 0 {
		return batchErr
	}
	for _, id := range started {
		running, err := p.WaitForIP(ctx, id, waitIP, ipPollInterval)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", id, running.IPAddress())
	}
	return nil
}

func (h Handler) Stop(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	fast, _ := cmd.Flags().GetBool("fast")
	stopped, err := p.Stop(ctx, args, fast)
	return reportBatch(ctx, "stop", "stopped", stopped, err)
}

func (h Handler) Clone(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	full, _ := cmd.Flags().GetBool("full")
	if err := p.CloneVM(ctx, args[0], args[1], !full); err != nil {
		return err
	}
	log.WithFunc("cmd.clone").Infof(ctx, "cloned %s as %s", args[0], args[1])
	return nil
}

func (h Handler) Clean(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	if err := p.CleanVM(ctx, args[0]); err != nil {
		return err
	}
	log.WithFunc("cmd.clean").Infof(ctx, "removed all snapshots of %s", args[0])
	return nil
}

func (h Handler) Rename(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	return p.RenameVM(ctx, args[0], args[1])
}

func (h Handler) Set(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return fmt.Errorf("nothing to set")
	}
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	logger := log.WithFunc("cmd.set")
	for _, opt := range opts {
		if err := p.SetVMOption(ctx, args[0], opt); err != nil {
			return err
		}
		logger.Infof(ctx, "%s: %s", args[0], describeOption(opt))
	}
	return nil
}

func (h Handler) Exec(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	user, _ := cmd.Flags().GetString("user")
	out, err := p.RunCommand(ctx, args[0], strings.Join(args[1:], " "), types.NewUser(user))
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Println(out)
	}
	return nil
}

// RM deletes VMs. Delete is best-effort, so partial results are reported
// before the error is checked.
func (h Handler) RM(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		ok, err := confirm(fmt.Sprintf("Delete %s and all their files?", strings.Join(args, ", ")))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	deleted, err := p.Delete(ctx, args)
	return reportBatch(ctx, "rm", "deleted", deleted, err)
}

func (h Handler) Unregister(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	done, err := p.Unregister(ctx, args)
	return reportBatch(ctx, "unregister", "unregistered", done, err)
}

func (h Handler) Register(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	return p.RegisterVM(ctx, args[0])
}

func (h Handler) Import(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	vm, err := p.ImportVM(ctx, args[0])
	if err != nil {
		return err
	}
	if vm == nil {
		return fmt.Errorf("import %s: registered, but no new VM appeared", args[0])
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(&vm.VM)
}

func (h Handler) Unpack(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	vm, err := p.Lookup(ctx, args[0])
	if err != nil {
		return err
	}
	if vm == nil {
		return fmt.Errorf("%q: %w", args[0], hypervisor.ErrNotFound)
	}
	packaged, ok := vm.AsPackagedVM()
	if !ok {
		return fmt.Errorf("%s is %s: %w", args[0], vm.Status, hypervisor.ErrWrongPhase)
	}
	stopped, err := packaged.Unpack(ctx)
	if err != nil {
		return err
	}
	log.WithFunc("cmd.unpack").Infof(ctx, "unpacked %s (%s)", stopped.Name(), stopped.UUID())
	return nil
}

// confirm asks on the terminal. Without a terminal it refuses, so scripts
// must pass --force.
func confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec
		return false, fmt.Errorf("stdin is not a terminal, use --force")
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func reportBatch(ctx context.Context, name, pastTense string, done []string, err error) error {
	logger := log.WithFunc("cmd." + name)
	for _, id := range done {
		logger.Infof(ctx, "%s: %s", pastTense, id)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(done) == 0 {
		logger.Infof(ctx, "no VMs %s", pastTense)
	}
	return nil
}
