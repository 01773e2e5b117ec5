package xcodes

import (
	"context"
	"time"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/rs/zerolog"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "xcodes"

// Options configures a Client.
type Options struct {
	Binary string
	// Timeout bounds a single install. Zero means no limit.
	Timeout time.Duration
	// Directory is passed to install and uninstall as --directory.
	Directory         string
	ExperimentalUnxip bool
}

// Client wraps the xcodes commands used by an update run.
type Client struct {
	runner Runner
	opts   Options
	logger zerolog.Logger
}

// New creates a client. A nil runner runs real processes.
func New(runner Runner, opts Options) *Client {
	if runner == nil {
		runner = NewExecRunner()
	}
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	return &Client{
		runner: runner,
		opts:   opts,
		logger: logging.GetLogger("xcodes"),
	}
}

// Binary returns the executable the client invokes.
func (c *Client) Binary() string {
	return c.opts.Binary
}

// ListAvailable returns the identifiers of every version xcodes can
// install, as printed by `xcodes list`.
func (c *Client) ListAvailable(ctx context.Context) ([]string, error) {
	done := logging.LogOperationStart(c.logger, "list available")
	defer done()

	out, err := c.runner.Output(ctx, c.opts.Binary, "list")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrList, "failed to list available Xcode versions")
	}
	return parseAvailable(out), nil
}

// ListInstalled returns the installed versions and their bundle paths.
func (c *Client) ListInstalled(ctx context.Context) ([]Installation, error) {
	done := logging.LogOperationStart(c.logger, "list installed")
	defer done()

	args := append([]string{"installed"}, c.directoryArgs()...)
	out, err := c.runner.Output(ctx, c.opts.Binary, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrList, "failed to list installed Xcode versions")
	}
	return parseInstalled(out), nil
}

// Install downloads and installs v. Progress is streamed to the user.
func (c *Client) Install(ctx context.Context, v versions.Version) error {
	done := logging.LogOperationStart(c.logger, "install "+v.Identifier())
	defer done()

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	args := []string{"install", v.Identifier()}
	args = append(args, c.directoryArgs()...)
	if c.opts.ExperimentalUnxip {
		args = append(args, "--experimental-unxip")
	}

	if err := c.runner.Run(ctx, c.opts.Binary, args...); err != nil {
		return errors.Wrapf(err, errors.ErrInstall, "failed to install Xcode %s", v.Identifier()).
			WithDetail("version", v.String())
	}
	return nil
}

// Uninstall removes v.
func (c *Client) Uninstall(ctx context.Context, v versions.Version) error {
	done := logging.LogOperationStart(c.logger, "uninstall "+v.Identifier())
	defer done()

	args := append([]string{"uninstall", v.Identifier()}, c.directoryArgs()...)
	if err := c.runner.Run(ctx, c.opts.Binary, args...); err != nil {
		return errors.Wrapf(err, errors.ErrUninstall, "failed to uninstall Xcode %s", v.Identifier()).
			WithDetail("version", v.String())
	}
	return nil
}

func (c *Client) directoryArgs() []string {
	if c.opts.Directory == "" {
		return nil
	}
	return []string{"--directory", c.opts.Directory}
}
