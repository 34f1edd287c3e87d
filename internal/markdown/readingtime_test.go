package markdown

import (
	"strings"
	"testing"
)

func TestReadingTimeShortBody(t *testing.T) {
	text, minutes := ReadingTime([]byte("A few words only."))
	if minutes != 1 {
		t.Fatalf("expected 1 minute floor, got %d", minutes)
	}
	if !strings.Contains(text, "min read") {
		t.Fatalf("expected display string, got %q", text)
	}
}

func TestReadingTimeGrowsWithLength(t *testing.T) {
	short := []byte(strings.Repeat("word ", 100))
	long := []byte(strings.Repeat("word ", 2000))

	_, shortMinutes := ReadingTime(short)
	_, longMinutes := ReadingTime(long)

	if longMinutes <= shortMinutes {
		t.Fatalf("expected longer body to read longer: short=%d long=%d", shortMinutes, longMinutes)
	}
}

func TestReadingTimeEmptyBody(t *testing.T) {
	_, minutes := ReadingTime(nil)
	if minutes < 1 {
		t.Fatalf("expected minimum of 1 minute, got %d", minutes)
	}
}
