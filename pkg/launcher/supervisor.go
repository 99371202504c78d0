package launcher

import (
	"os"
	"os/exec"
	"sync"
)

type SupervisorState int

const (
	StateIdle SupervisorState = iota
	StateStarting
	StateRunning
)

// ProcessTree enumerates and terminates OS processes. It is an interface so
// the depth-first termination order can be tested without spawning anything.
type ProcessTree interface {
	Children(pid int) ([]int, error)
	Kill(pid int) error
}

// Supervisor owns the single running game process. All state transitions are
// guarded by one mutex, so the already-running check is atomic with the
// transition that claims the slot.
type Supervisor struct {
	mu    sync.Mutex
	state SupervisorState
	cmd   *exec.Cmd

	Tree ProcessTree
	// OnExit is invoked asynchronously after the process exits by any means
	// (UI collaborators restore their window state here).
	OnExit func()
}

func NewSupervisor() *Supervisor {
	return &Supervisor{Tree: newProcessTree()}
}

func (s *Supervisor) State() SupervisorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Launch spawns the script and registers the exit watcher. Rejected with
// ErrAlreadyRunning while a previous process is alive.
func (s *Supervisor) Launch(scriptPath string, workingDir string) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.state = StateStarting
	s.mu.Unlock()

	cmd := exec.Command(scriptPath)
	cmd.Dir = workingDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	hideConsoleWindow(cmd)

	if err := cmd.Start(); err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return &SpawnError{Err: err}
	}

	s.mu.Lock()
	s.cmd = cmd
	s.state = StateRunning
	s.mu.Unlock()

	go func() {
		_ = cmd.Wait()

		s.mu.Lock()
		s.cmd = nil
		s.state = StateIdle
		onExit := s.OnExit
		s.mu.Unlock()

		if onExit != nil {
			onExit()
		}
	}()

	return nil
}

// Terminate force-kills the supervised process and its whole descendant
// tree, leaves first so no descendant is orphaned before its own children
// are handled. It never blocks waiting for exit.
func (s *Supervisor) Terminate() {
	s.mu.Lock()
	cmd := s.cmd
	s.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}
	s.killTree(cmd.Process.Pid)
}

func (s *Supervisor) killTree(pid int) {
	children, err := s.Tree.Children(pid)
	if err == nil {
		for _, child := range children {
			s.killTree(child)
		}
	}
	_ = s.Tree.Kill(pid)
}
