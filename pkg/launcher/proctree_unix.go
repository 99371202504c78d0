//go:build !windows

package launcher

import (
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

type unixProcessTree struct{}

func newProcessTree() ProcessTree {
	return unixProcessTree{}
}

func (unixProcessTree) Children(pid int) ([]int, error) {
	out, err := exec.Command("pgrep", "-P", strconv.Itoa(pid)).Output()
	if err != nil {
		// pgrep exits 1 when there are no matches.
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
			return nil, nil
		}
		return nil, err
	}

	var pids []int
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		child, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		pids = append(pids, child)
	}
	return pids, nil
}

func (unixProcessTree) Kill(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}

func hideConsoleWindow(cmd *exec.Cmd) {
	// Nothing to hide on unix-like systems.
}
