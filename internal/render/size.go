package render

import "fmt"

// FormatSizeBytes renders size as a plain integer byte count.
func FormatSizeBytes(size int64) string {
	return fmt.Sprintf("%d", size)
}

var humanUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSizeHuman renders size using binary (1024) prefixes with one
// decimal place for every unit above B. Zero is always "0 B".
func FormatSizeHuman(size int64) string {
	if size == 0 {
		return "0 B"
	}
	value := float64(size)
	unitIndex := 0
	for value >= 1024 && unitIndex < len(humanUnits)-1 {
		value /= 1024
		unitIndex++
	}
	if unitIndex == 0 {
		return fmt.Sprintf("%d %s", size, humanUnits[0])
	}
	return fmt.Sprintf("%.1f %s", value, humanUnits[unitIndex])
}
