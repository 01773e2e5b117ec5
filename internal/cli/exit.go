package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/xcupdate/pkg/ui/styles"
)

// ExitError ends the process with Code. Reported errors were already shown
// as part of the command's output.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, NewRootCmd(), os.Stderr)
}

func execute(ctx context.Context, rootCmd interface {
	ExecuteContext(context.Context) error
}, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		if !exitErr.Reported {
			printError(stderr, exitErr)
		}
		return exitErr.Code
	}

	printError(stderr, err)
	return 1
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
}
