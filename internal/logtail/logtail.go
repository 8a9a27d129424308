package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines, since the application may simply not have logged
// anything yet.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one structured log line, broken apart for display.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []string
}

// Parse decodes a JSON log line into an Entry. Anything that is not a JSON
// object comes back with the raw text as the message, so foreign lines in
// the file still display.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: line}
	}

	var e Entry
	if v, ok := raw["time"].(string); ok {
		e.Time = clockTime(v)
		delete(raw, "time")
	}
	if v, ok := raw["level"].(string); ok {
		e.Level = levelTag(v)
		delete(raw, "level")
	}
	if v, ok := raw["message"].(string); ok {
		e.Message = v
		delete(raw, "message")
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Fields = append(e.Fields, fmt.Sprintf("%s=%v", k, raw[k]))
	}
	return e
}

// String renders the entry console-writer style: clock time, level tag,
// message, then the remaining fields as sorted key=value pairs.
func (e Entry) String() string {
	parts := make([]string, 0, 3+len(e.Fields))
	if e.Time != "" {
		parts = append(parts, e.Time)
	}
	if e.Level != "" {
		parts = append(parts, e.Level)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	parts = append(parts, e.Fields...)
	return strings.Join(parts, " ")
}

// Render reads the last maxLines of the log at path and formats each line
// for display.
func Render(path string, maxLines int) ([]string, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Parse(line).String()
	}
	return out, nil
}

func clockTime(v string) string {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return v
	}
	return t.Format("15:04:05")
}

func levelTag(level string) string {
	switch level {
	case "trace":
		return "TRC"
	case "debug":
		return "DBG"
	case "info":
		return "INF"
	case "warn":
		return "WRN"
	case "error":
		return "ERR"
	case "fatal":
		return "FTL"
	case "panic":
		return "PNC"
	default:
		return strings.ToUpper(level)
	}
}
