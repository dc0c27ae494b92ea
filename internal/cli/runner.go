package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/ui"
)

// ErrUsage marks errors caused by how the command was invoked rather than
// by the data; they exit with config.ExitUsage.
var ErrUsage = errors.New("usage")

func usagef(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, a...)...)
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return config.ExitOK
	}
	ui.Fail(stderr, err.Error())
	if !errors.Is(err, ErrUsage) {
		return config.ExitError
	}
	fmt.Fprintln(stderr)
	fmt.Fprint(stderr, cmd.UsageString())
	return config.ExitUsage
}
