// Package banner captures the two-line native-tree volume header. It is an
// out-of-scope collaborator at the core's interface: the core only ever
// sees an opaque []string, never the capture mechanism.
package banner

import (
	"bytes"
	"os"
	"os/exec"
	"runtime"
)

// placeholderLines is used when the native tree binary cannot be invoked
// (not installed, non-Windows host, or execution failure), so the header
// still has two locale-agnostic lines rather than none.
var placeholderLines = []string{
	"Folder PATH listing",
	"Volume serial number is 0000-0000",
}

// Capture invokes the platform's native tree against a synthetic empty
// directory and returns its first two lines. On a non-Windows host, and
// on any failure, it returns placeholderLines rather than an error, since
// the banner is cosmetic and never fatal.
func Capture() []string {
	if runtime.GOOS != "windows" {
		return placeholderLines
	}
	tempDir, err := os.MkdirTemp("", "treepp-banner-*")
	if err != nil {
		return placeholderLines
	}
	defer os.RemoveAll(tempDir)

	// #nosec G204 -- tempDir is created by this process, not user input.
	cmd := exec.Command("tree", tempDir)
	output, err := cmd.Output()
	if err != nil {
		return placeholderLines
	}
	return firstTwoLines(output)
}

func firstTwoLines(output []byte) []string {
	lines := bytes.SplitN(output, []byte("\n"), 3)
	result := make([]string, 0, 2)
	for i := 0; i < 2 && i < len(lines); i++ {
		result = append(result, string(bytes.TrimRight(lines[i], "\r")))
	}
	for len(result) < 2 {
		result = append(result, "")
	}
	return result
}
