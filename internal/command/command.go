package command

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
)

// Run runs the given command using the given working directory. If the command succeeds,
// the value of stdout is returned with trailing whitespace removed. If the command fails,
// the combined stdout/stderr text will also be returned.
func Run(dir, command string, args ...string) (string, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// Supervised is a spawned command whose pid is observable while it runs and whose
// combined stdout/stderr is buffered for retrieval after it exits.
type Supervised struct {
	cmd *exec.Cmd
	buf bytes.Buffer
}

// Start spawns the given command in the given working directory with the current
// process's environment. The returned Supervised exposes the child's pid immediately.
func Start(dir, command string, args ...string) (*Supervised, error) {
	s := &Supervised{cmd: exec.Command(command, args...)}
	s.cmd.Dir = dir
	s.cmd.Env = os.Environ()
	s.cmd.Stdout = &s.buf
	s.cmd.Stderr = &s.buf

	if err := s.cmd.Start(); err != nil {
		return nil, err
	}

	return s, nil
}

// Pid returns the pid of the running command.
func (s *Supervised) Pid() int {
	return s.cmd.Process.Pid
}

// Wait blocks until the command exits and returns its combined output. A non-zero
// exit status is returned as the error, with whatever output was produced.
func (s *Supervised) Wait() (string, error) {
	err := s.cmd.Wait()
	return s.buf.String(), err
}
