// Package browser opens URLs in the user's default browser.
//
// The login flow itself never opens anything; the host application decides
// how to present the authorize URL. This package is the convenience used by
// the bundled CLI and by hosts without their own mechanism.
package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrEmptyURL is returned when Open is called with a blank URL.
var ErrEmptyURL = errors.New("browser: empty URL")

// Open launches the default browser for the given URL. The command is
// started, not waited on; browser exit status is meaningless here.
func Open(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyURL
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("browser: open %q: %w", target, err)
	}
	return nil
}
