package curriculum

import (
	"bytes"
	"strings"
)

const progressHeader = "DON'T EDIT THIS FILE!"

// Record is the persisted projection of a Curriculum.
type Record struct {
	Current string
	// Done lists done exercise names in curriculum order.
	Done []string
}

// EncodeRecord renders a Record in the progress file layout:
//
//	<header>
//
//	<current>
//
//	<done 1>
//	<done 2>
func EncodeRecord(r Record) []byte {
	var b bytes.Buffer
	b.WriteString(progressHeader)
	b.WriteString("\n\n")
	b.WriteString(r.Current)
	b.WriteString("\n\n")
	for _, name := range r.Done {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// DecodeRecord parses the progress file content. It reports false for
// anything that is not a complete record; a partial record is never
// returned.
func DecodeRecord(data []byte) (Record, bool) {
	lines := strings.Split(string(data), "\n")
	if len(lines) < 4 {
		return Record{}, false
	}

	current := strings.TrimSuffix(lines[2], "\r")
	if isBlank(current) {
		return Record{}, false
	}

	var done []string
	for _, line := range lines[4:] {
		line = strings.TrimSuffix(line, "\r")
		if isBlank(line) {
			break
		}
		done = append(done, line)
	}

	return Record{Current: current, Done: done}, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
