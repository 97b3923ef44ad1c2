package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DecodeJSON reads a JSON array of raw chunks.
func DecodeJSON(r io.Reader) ([]RawChunk, error) {
	var raw []RawChunk
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return raw, nil
}

// SRTTolerance is the merge tolerance, in seconds, for chunks read from SRT.
// Cue times are whole milliseconds, so back-to-back cues can miss exact
// float adjacency by a rounding step.
const SRTTolerance = 0.0005

var reSrtTime = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})`)

// ParseSRT reads SubRip cues as chunks. Cue text lines are joined with a space.
func ParseSRT(r io.Reader) ([]Chunk, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		chunks []Chunk
		cur    *Chunk
		lines  []string
	)

	flush := func() {
		if cur != nil {
			cur.Text = strings.Join(lines, " ")
			chunks = append(chunks, *cur)
		}
		cur = nil
		lines = lines[:0]
	}

	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		if line == "" {
			flush()
			continue
		}

		if m := reSrtTime.FindStringSubmatch(line); m != nil {
			flush()
			start := srtMillis(m[1:5])
			end := srtMillis(m[5:9])
			cur = &Chunk{
				Offset:   float64(start) / 1000,
				Duration: float64(end-start) / 1000,
			}
			continue
		}

		if cur == nil {
			// sequence number or stray text before the first timing line
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	flush()

	return chunks, nil
}

func srtMillis(parts []string) int64 {
	h, _ := strconv.ParseInt(parts[0], 10, 64)
	m, _ := strconv.ParseInt(parts[1], 10, 64)
	s, _ := strconv.ParseInt(parts[2], 10, 64)
	ms, _ := strconv.ParseInt((parts[3] + "00")[:3], 10, 64)
	return ((h*60+m)*60+s)*1000 + ms
}
