package renderer

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"os/exec"
	"strings"

	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
	"git.home.luguber.info/inful/docfence/internal/logfields"
)

// runBinary performs one invocation of an external rendering binary with the
// block source on stdin and both output streams captured. Classification of
// failures follows the adapter contract: a missing binary or any failure to
// start the process is a spawn error, a non-zero exit is a process error
// whose detail is the program's own output (stderr, with stdout folded in
// when stderr is empty — renderers differ in which stream they complain on).
func runBinary(ctx context.Context, binary string, args []string, stdin string) ([]byte, error) {
	if _, err := exec.LookPath(binary); err != nil {
		return nil, errors.SpawnError("renderer binary not found on PATH").
			WithCause(err).
			WithContext("binary", binary).
			Build()
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Invoking renderer", logfields.Binary(binary))
	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if !stderrors.As(err, &exitErr) {
		// The process never ran to completion: start failure, pipe
		// breakage, or context cancellation.
		return nil, errors.SpawnError("failed to run renderer").
			WithCause(err).
			WithContext("binary", binary).
			Build()
	}

	output := strings.TrimSpace(stderr.String())
	if output == "" {
		output = strings.TrimSpace(stdout.String())
	}
	if output == "" {
		output = err.Error()
	}
	return nil, errors.ProcessError(output).
		WithCause(err).
		WithContext("binary", binary).
		Build()
}
