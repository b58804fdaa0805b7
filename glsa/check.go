package glsa

import (
	"context"
	"os/exec"
	"strings"

	"golang.org/x/xerrors"
)

const DefaultCheckBin = "glsa-check"

// Checker wraps the system advisory checker.
type Checker struct {
	Bin string
}

func NewChecker() Checker {
	return Checker{Bin: DefaultCheckBin}
}

func (c Checker) bin() string {
	if c.Bin == "" {
		return DefaultCheckBin
	}
	return c.Bin
}

// Affected returns the ids of advisories that apply to the running
// system.
//
// Wraps: glsa-check -tqn all
func (c Checker) Affected(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, c.bin(), "-tqn", "all").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !xerrors.As(err, &exitErr) {
			return nil, xerrors.Errorf("failed to run glsa-check: %w", err)
		}
		// glsa-check exits non-zero when advisories apply; the id list
		// is on stdout.
		return strings.Fields(string(out)), nil
	}
	return nil, nil
}

// FixArgs builds the glsa-check argument list that applies the given
// advisories. Privilege escalation is the caller's concern.
func FixArgs(ids []string) []string {
	return append([]string{"-f"}, ids...)
}
