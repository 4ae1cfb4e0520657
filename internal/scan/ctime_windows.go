//go:build windows

package scan

import (
	"os"
	"syscall"
	"time"
)

// creationTime extracts the Windows file-system creation time from
// FileInfo.Sys(), falling back to mtime when the underlying stat data
// isn't the expected Win32FileAttributeData shape.
func creationTime(info os.FileInfo) time.Time {
	attributes, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, attributes.CreationTime.Nanoseconds())
}
