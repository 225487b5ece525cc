package diffnav

import (
	"regexp"
	"strconv"
	"strings"
)

// hunkHeaderRE matches "@@ -oldStart[,oldCount] +newStart[,newCount] @@".
var hunkHeaderRE = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Locate maps a cursor position in raw unified diff text to the file path
// and line number it refers to on the given side. cursorLine is 0-based;
// the returned Location.Line is 1-based. The second return value is false
// when the cursor has no mapping on that side: it sits on a header or hunk
// marker, on a removal line when side is SideNew, on an addition line when
// side is SideOld, or before the first hunk. Absence is not an error.
//
// The scan is a single forward pass: the most recent file header pair and
// hunk header win, and two running counters track the old and new line
// numbers inside the current hunk. Hunk extent is bounded by the header
// counts so content lines that happen to start with "---" are not mistaken
// for file headers.
func Locate(text string, cursorLine int, side Side) (Location, bool) {
	lines := strings.Split(text, "\n")
	if cursorLine < 0 || cursorLine >= len(lines) {
		return Location{}, false
	}

	var (
		oldPath, newPath string
		oldLine, newLine int
		oldLeft, newLeft int
	)

	for i := 0; i <= cursorLine; i++ {
		line := lines[i]
		inHunk := oldLeft > 0 || newLeft > 0

		if !inHunk {
			if p1, p2, ok := parseFileHeader(line); ok {
				oldPath, newPath = p1, p2
				continue
			}
			// "--- a/..." and "+++ b/..." refine the header pair; /dev/null
			// marks a side that has no file.
			if p, ok := cutPathPrefix(line, "--- ", "a/"); ok {
				oldPath = p
				continue
			}
			if p, ok := cutPathPrefix(line, "+++ ", "b/"); ok {
				newPath = p
				continue
			}
		}

		if m := hunkHeaderRE.FindStringSubmatch(line); m != nil && oldPath+newPath != "" {
			oldLine = atoiDefault(m[1], 1)
			oldLeft = atoiDefault(m[2], 1)
			newLine = atoiDefault(m[3], 1)
			newLeft = atoiDefault(m[4], 1)
			continue
		}

		if !inHunk {
			if i == cursorLine {
				return Location{}, false
			}
			continue
		}

		// Content line inside a hunk.
		var kind LineType
		switch {
		case line == "" || strings.HasPrefix(line, " "):
			// Some hosts strip the trailing space off empty context lines.
			kind = LineContext
		case strings.HasPrefix(line, "-"):
			kind = LineDeleted
		case strings.HasPrefix(line, "+"):
			kind = LineAdded
		default:
			// "\ No newline at end of file" and the like: no mapping,
			// no counter movement.
			if i == cursorLine {
				return Location{}, false
			}
			continue
		}

		if i == cursorLine {
			switch {
			case side == SideOld && kind != LineAdded && oldPath != "":
				return Location{Path: oldPath, Line: oldLine}, true
			case side == SideNew && kind != LineDeleted && newPath != "":
				return Location{Path: newPath, Line: newLine}, true
			}
			return Location{}, false
		}

		switch kind {
		case LineContext:
			oldLine++
			newLine++
			oldLeft--
			newLeft--
		case LineDeleted:
			oldLine++
			oldLeft--
		case LineAdded:
			newLine++
			newLeft--
		}
	}
	return Location{}, false
}

// parseFileHeader extracts the stripped a/ and b/ paths from a
// "diff --git a/old b/new" line.
func parseFileHeader(line string) (oldPath, newPath string, ok bool) {
	rest, found := strings.CutPrefix(line, "diff --git ")
	if !found {
		return "", "", false
	}
	idx := strings.Index(rest, " b/")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimPrefix(rest[:idx], "a/"), rest[idx+len(" b/"):], true
}

// cutPathPrefix extracts a path from a file-header line such as "--- a/x",
// stripping the marker and the fixed a/ or b/ prefix. A /dev/null path
// yields the empty string, marking that side as absent.
func cutPathPrefix(line, marker, prefix string) (string, bool) {
	rest, found := strings.CutPrefix(line, marker)
	if !found {
		return "", false
	}
	if rest == "/dev/null" {
		return "", true
	}
	p, found := strings.CutPrefix(rest, prefix)
	if !found {
		return "", false
	}
	return p, true
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
