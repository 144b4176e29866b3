package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	FieldRemoteURL     = "remote_url"
	FieldCurrentBranch = "current_branch"
	FieldLatestTag     = "latest_tag"
	FieldContributors  = "contributors"
)

// fields is the order of git_info in the report.
var fields = []string{FieldRemoteURL, FieldCurrentBranch, FieldLatestTag, FieldContributors}

// DetachedHead is what rev-parse --abbrev-ref prints when no branch is checked out.
const DetachedHead = "HEAD"

// Runner executes git with args inside path and returns its stdout.
type Runner func(ctx context.Context, path string, args ...string) ([]byte, error)

// Error is a git invocation that exited non-zero.
type Error struct {
	ExitCode int
	Stderr   string

	err error
}

func (e *Error) Error() string {
	if e.Stderr == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err, e.Stderr)
}

func (e *Error) Unwrap() error {
	return e.err
}

// ExecGit is the Runner backed by the git binary on PATH.
func ExecGit(ctx context.Context, path string, cmd ...string) ([]byte, error) {
	args := []string{}
	args = append(args, "-C", path)
	args = append(args, cmd...)
	gitCmd := exec.CommandContext(ctx, "git", args...)
	out, err := gitCmd.Output()
	if err != nil {
		return out, describeError(err)
	}
	return out, nil
}

// describeError folds git's stderr into the error so warnings say why.
func describeError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Error{
			ExitCode: exitErr.ExitCode(),
			Stderr:   string(bytes.TrimSpace(exitErr.Stderr)),
			err:      err,
		}
	}
	return err
}

// IsRepo returns nil when path is inside a git work tree. Otherwise the error
// is git's reason: the binary is missing or path is not a repository.
func IsRepo(ctx context.Context, run Runner, path string) error {
	_, err := run(ctx, path, "rev-parse", "--git-dir")
	return err
}

// RemoteURL is "" when the repository has no origin remote.
func RemoteURL(ctx context.Context, run Runner, path string) Result {
	out, err := run(ctx, path, "config", "--get", "remote.origin.url")
	// git config exits 1 when the key is unset
	return result(out, err, func(e *Error) bool { return e.ExitCode == 1 })
}

// CurrentBranch returns DetachedHead when HEAD is not on a branch.
func CurrentBranch(ctx context.Context, run Runner, path string) Result {
	out, err := run(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	return result(out, err, nil)
}

// LatestTag is "" when no tag is reachable from HEAD.
func LatestTag(ctx context.Context, run Runner, path string) Result {
	out, err := run(ctx, path, "describe", "--tags", "--abbrev=0")
	return result(out, err, func(e *Error) bool {
		return strings.Contains(e.Stderr, "No names found") ||
			strings.Contains(e.Stderr, "No tags can describe")
	})
}

// Contributors is the shortlog roster: one "<count>\t<name>" line per author,
// busiest first, across all refs.
func Contributors(ctx context.Context, run Runner, path string) Result {
	out, err := run(ctx, path, "shortlog", "-sn", "--all")
	return result(out, err, nil)
}

// result turns a query outcome into a Result. none recognises the failures
// that only mean git found nothing to print.
func result(out []byte, err error, none func(*Error) bool) Result {
	if err == nil {
		return Result{Value: trimOutput(out)}
	}
	var gitErr *Error
	if none != nil && errors.As(err, &gitErr) && none(gitErr) {
		return Result{}
	}
	return Result{Err: err}
}

// GetAllMetadata runs every query. A failing query never stops the ones after
// it; check Metadata.Unavailable for what could not be read. Outside a
// repository, or without git, every field is unavailable for the same reason.
func GetAllMetadata(ctx context.Context, run Runner, path string) Metadata {
	if run == nil {
		run = ExecGit
	}

	var md Metadata
	if err := IsRepo(ctx, run, path); err != nil {
		for _, field := range fields {
			md.set(field, Result{Err: err})
		}
		return md
	}

	md.set(FieldRemoteURL, RemoteURL(ctx, run, path))
	md.set(FieldCurrentBranch, CurrentBranch(ctx, run, path))
	md.set(FieldLatestTag, LatestTag(ctx, run, path))
	md.set(FieldContributors, Contributors(ctx, run, path))
	return md
}
