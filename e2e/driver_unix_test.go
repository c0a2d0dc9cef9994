//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// maxOutput bounds the captured terminal output; older bytes are dropped.
const maxOutput = 1 << 20

var binPath = "headersearch_e2e"

const (
	keyEnter  = "\r"
	keyCtrlC  = "\x03"
	keyEsc    = "\x1b"
	keyDown   = "\x1b[B"
	keySearch = "/"
	keyQuit   = "q"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns.
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|(?:\x1b\][^\x07]*\x07)|(?:\x1b[\(\)][A-Za-z])|(?:\x1b=|\x1b>)|\r`,
)

// TUITestFramework drives the headersearch binary through a pseudo terminal.
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu  sync.Mutex
	out []byte
}

func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// StartApp runs the binary on a 120x40 terminal with $HOME inside the workspace.
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+tf.workspace,
		"HEADERSEARCH_E2E_TEST=1",
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start under pty: %w", err)
	}
	tf.pty = f

	go tf.capture(f)
	return nil
}

func (tf *TUITestFramework) capture(f *os.File) {
	chunk := make([]byte, 8192)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			tf.out = append(tf.out, chunk[:n]...)
			if len(tf.out) > maxOutput {
				tf.out = tf.out[len(tf.out)-maxOutput:]
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKeys writes raw bytes to the terminal.
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

func (tf *TUITestFramework) SendCtrlC() error { return tf.SendKeys(keyCtrlC) }

func (tf *TUITestFramework) Search() error { return tf.SendKeys(keySearch) }

func (tf *TUITestFramework) Type(s string) error { return tf.SendKeys(s) }

func (tf *TUITestFramework) Escape() error { return tf.SendKeys(keyEsc) }

func (tf *TUITestFramework) Enter() error { return tf.SendKeys(keyEnter) }

func (tf *TUITestFramework) Down() error { return tf.SendKeys(keyDown) }

func (tf *TUITestFramework) Quit() error { return tf.SendKeys(keyQuit) }

// ClickAt sends an SGR mouse press and release at the zero-based cell x, y.
func (tf *TUITestFramework) ClickAt(x, y int) error {
	cell := fmt.Sprintf("%d;%d", x+1, y+1)
	return tf.SendKeys("\x1b[<0;" + cell + "M" + "\x1b[<0;" + cell + "m")
}

// Ready waits for the marker the binary prints before the UI starts.
func (tf *TUITestFramework) Ready() bool {
	return tf.waitFor(func(raw string) bool { return strings.Contains(raw, "__READY__") }, 5*time.Second)
}

// SeePlain waits up to three seconds for text in the ANSI-stripped output.
func (tf *TUITestFramework) SeePlain(text string) bool {
	return tf.waitFor(func(raw string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(raw, ""), text)
	}, 3*time.Second)
}

// WaitForE is waitFor that reports the tail of the screen on timeout.
func (tf *TUITestFramework) WaitForE(pred func(string) bool, timeout time.Duration, failMsg string) error {
	if tf.waitFor(pred, timeout) {
		return nil
	}
	return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail(tf.SnapshotPlain(), 4096))
}

func (tf *TUITestFramework) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return string(tf.out)
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail keeps the last n bytes of plain output next to the test's temp files.
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(tail(tf.SnapshotPlain(), n)), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup hangs up the terminal and reaps the process.
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
