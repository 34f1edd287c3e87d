package markdown

import (
	"fmt"
	"math"

	readingtime "github.com/begmaroman/reading-time"
)

// ReadingTime estimates how long the body takes to read at the library's
// fixed words-per-minute rate. It returns the display string ("7 min read")
// and the minute count rounded up, never below one minute.
func ReadingTime(body []byte) (string, int) {
	estimation := readingtime.Estimate(string(body))
	minutes := int(math.Ceil(estimation.Duration.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes), minutes
}
