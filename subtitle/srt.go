package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// markupTags matches HTML-style tags (<i>, </font>) and ASS override blocks
// ({\an8}) that some subtitle tracks carry. They are stripped from the plain
// text lines.
var markupTags = regexp.MustCompile(`<[^>]*>|\{\\[^}]*\}`)

// ParseSRTFile reads and parses an SRT file into a Track.
func ParseSRTFile(path string) (Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open srt: %w", err)
	}
	defer f.Close()
	return ParseSRT(f)
}

// ParseSRT parses SRT content into a Track. The parser is a small state
// machine over lines: index, timing, then text lines until a blank line.
// It tolerates CRLF, a UTF-8 BOM, '.' as the millisecond separator, and a
// final cue without a trailing blank line.
func ParseSRT(r io.Reader) (Track, error) {
	var (
		track   Track
		current Subtitle
		step    int
		first   = true
	)

	flush := func() error {
		if len(current.Lines) == 0 {
			current = Subtitle{}
			return nil
		}
		if err := current.Validate(); err != nil {
			return err
		}
		track = append(track, current)
		current = Subtitle{}
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		switch step {
		case 0:
			if strings.TrimSpace(line) == "" {
				continue
			}
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err != nil {
				return nil, fmt.Errorf("expected cue index, got %q", line)
			}
			step = 1
		case 1:
			start, end, err := parseTimingLine(line)
			if err != nil {
				return nil, err
			}
			current.Start = start
			current.End = end
			step = 2
		case 2:
			if strings.TrimSpace(line) == "" {
				if err := flush(); err != nil {
					return nil, err
				}
				step = 0
				continue
			}
			text := strings.TrimSpace(markupTags.ReplaceAllString(line, ""))
			if text != "" {
				current.Lines = append(current.Lines, text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	// Trailing cue without a final blank line.
	if step == 2 {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return track, nil
}

// parseTimingLine parses "HH:MM:SS,mmm --> HH:MM:SS,mmm" into millisecond
// offsets.
func parseTimingLine(line string) (int, int, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := ParseSRTTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseSRTTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseSRTTimestamp parses an SRT timestamp (HH:MM:SS,mmm) into milliseconds.
// A '.' millisecond separator is normalized to the standard ','.
func ParseSRTTimestamp(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return hours*3600_000 + minutes*60_000 + seconds*1000 + millis, nil
}
