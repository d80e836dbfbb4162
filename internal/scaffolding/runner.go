package scaffolding

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/forgelabs/tsforge/internal/errors"
	"github.com/forgelabs/tsforge/internal/logging"
)

// Runner executes external commands during scaffolding.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands through the operating system, streaming their
// output to the user.
type ExecRunner struct {
	logger logging.Logger
}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner(logger logging.Logger) *ExecRunner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ExecRunner{logger: logger.WithComponent("runner")}
}

// Run executes a command in the given working directory
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.logger.Debug(ctx, "running command", "command", name, "args", strings.Join(args, " "), "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.WrapCommand(err, "COMMAND_FAILED",
			fmt.Sprintf("command failed: %s %s", name, strings.Join(args, " ")))
	}

	return nil
}

// NopRunner records invocations without executing anything. It backs
// --skip-install and the scaffolding tests.
type NopRunner struct {
	Calls []RecordedCall
}

// RecordedCall is one command a NopRunner was asked to run
type RecordedCall struct {
	Dir  string
	Name string
	Args []string
}

// NewNopRunner creates a runner that records and discards commands
func NewNopRunner() *NopRunner {
	return &NopRunner{}
}

// Run records the command and succeeds
func (r *NopRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.Calls = append(r.Calls, RecordedCall{Dir: dir, Name: name, Args: args})
	return nil
}
