package walletcli

import (
	"bytes"
	"context"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/ocvcoin/getcoins/internal/core/domain"
	"github.com/ocvcoin/getcoins/internal/core/ports"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type service struct {
	command string
}

func NewService(command string) ports.WalletService {
	return &service{command}
}

func (s *service) GetNewAddress(
	ctx context.Context, args ...string,
) (string, error) {
	return s.runCommand(ctx, args...)
}

func (s *service) runCommand(ctx context.Context, args ...string) (string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	cmd := exec.CommandContext(ctx, s.command, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Debugf("running %s %s", s.command, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if isNotFound(err) {
			return "", errors.Wrapf(domain.ErrBinaryNotFound, "%s", s.command)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if errMsg := strings.TrimSpace(stderr.String()); len(errMsg) > 0 {
				return "", errors.Errorf(
					"%s exited with code %d: %s",
					s.command, exitErr.ExitCode(), errMsg,
				)
			}
		}

		return "", errors.Wrapf(err, "failed to run %s", s.command)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// isNotFound covers both a bare name missing from PATH and an explicit path
// that does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
