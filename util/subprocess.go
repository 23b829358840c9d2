package util

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pterm/pterm"
)

// SubprocessError reports an external process that exited non-zero or could
// not be started at all (missing binary included).
type SubprocessError struct {
	Name     string
	ExitCode int
	Err      error
}

func (e *SubprocessError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %s", e.Name, e.Err.Error())
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// RunCommand runs name with args in dir, streaming stdout and stderr line by
// line as they arrive. The call blocks until the child exits.
func RunCommand(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &SubprocessError{Name: name, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &SubprocessError{Name: name, Err: err}
	}

	pterm.Debug.Printfln("$ %s %s", name, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return &SubprocessError{Name: name, Err: err}
	}

	outDone := make(chan struct{})
	go func() {
		defer close(outDone)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			pterm.Debug.Printfln("%s: %s", name, scanner.Text())
		}
	}()
	errScanner := bufio.NewScanner(stderr)
	for errScanner.Scan() {
		pterm.Warning.Printfln("%s: %s", name, errScanner.Text())
	}
	<-outDone

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &SubprocessError{Name: name, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &SubprocessError{Name: name, Err: err}
	}
	return nil
}

// CommandExists reports whether name resolves on PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RunJar invokes the system java on a jar with the given arguments.
func RunJar(dir string, jar string, args ...string) error {
	javaArgs := append([]string{"-jar", jar}, args...)
	return RunCommand(dir, "java", javaArgs...)
}
