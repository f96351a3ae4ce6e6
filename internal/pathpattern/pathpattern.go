// Where: internal/pathpattern/pathpattern.go
// What: Eventarc path pattern parsing.
// Why: Whether a pattern carries wildcards decides if it becomes an
//      exact event filter or a path-pattern filter.
package pathpattern

import (
	"regexp"
	"strings"
)

var captureRegex = regexp.MustCompile(`\{[^/{}]+\}`)

// SegmentKind classifies one path segment.
type SegmentKind int

const (
	// KindSegment is a literal segment, possibly with * wildcards.
	KindSegment SegmentKind = iota
	// KindSingleCapture captures exactly one segment, e.g. {userId}.
	KindSingleCapture
	// KindMultiCapture captures zero or more segments, e.g. {path=**}.
	KindMultiCapture
)

// Segment is one part of a parsed pattern.
type Segment struct {
	Kind  SegmentKind
	Value string
	// Trimmed is the capture name without braces and matcher suffix.
	Trimmed string
}

// IsSingleWildcard reports whether the segment matches exactly one
// path segment non-literally.
func (s Segment) IsSingleWildcard() bool {
	if s.Kind == KindSingleCapture {
		return true
	}
	return s.Kind == KindSegment && strings.Contains(s.Value, "*") && !strings.Contains(s.Value, "**")
}

// IsMultiWildcard reports whether the segment can span multiple path
// segments.
func (s Segment) IsMultiWildcard() bool {
	if s.Kind == KindMultiCapture {
		return true
	}
	return s.Kind == KindSegment && strings.Contains(s.Value, "**")
}

// Pattern is a parsed Eventarc path pattern such as
// "users/{userId}/posts/{postId=**}".
type Pattern struct {
	raw      string
	segments []Segment
}

// Parts splits a path into segments, dropping surrounding slashes.
func Parts(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Parse normalizes and segments a raw pattern.
func Parse(raw string) *Pattern {
	normalized := strings.Trim(raw, "/")
	p := &Pattern{raw: normalized}
	for _, part := range strings.Split(normalized, "/") {
		p.segments = append(p.segments, parseSegment(part))
	}
	return p
}

func parseSegment(part string) Segment {
	captures := captureRegex.FindAllString(part, -1)
	if len(captures) == 1 {
		trimmed := trimParam(captures[0])
		if strings.Contains(part, "**") {
			return Segment{Kind: KindMultiCapture, Value: part, Trimmed: trimmed}
		}
		return Segment{Kind: KindSingleCapture, Value: part, Trimmed: trimmed}
	}
	return Segment{Kind: KindSegment, Value: part, Trimmed: part}
}

func trimParam(param string) string {
	inner := param[1 : len(param)-1]
	if idx := strings.Index(inner, "="); idx >= 0 {
		return inner[:idx]
	}
	return inner
}

// Value returns the normalized pattern string.
func (p *Pattern) Value() string {
	return p.raw
}

// Segments returns the parsed segments in order.
func (p *Pattern) Segments() []Segment {
	return p.segments
}

// HasWildcards reports whether any segment matches non-literally.
func (p *Pattern) HasWildcards() bool {
	for _, segment := range p.segments {
		if segment.IsSingleWildcard() || segment.IsMultiWildcard() {
			return true
		}
	}
	return false
}

// HasCaptures reports whether any segment binds a name.
func (p *Pattern) HasCaptures() bool {
	for _, segment := range p.segments {
		if segment.Kind == KindSingleCapture || segment.Kind == KindMultiCapture {
			return true
		}
	}
	return false
}

// ExtractMatches binds capture names to the matching parts of a
// concrete path. Multi captures consume as many segments as the
// surrounding literals allow.
func (p *Pattern) ExtractMatches(path string) map[string]string {
	matches := map[string]string{}
	if !p.HasCaptures() {
		return matches
	}
	pathSegments := Parts(path)
	pathNdx := 0
	for segmentNdx, segment := range p.segments {
		remaining := len(p.segments) - 1 - segmentNdx
		nextPathNdx := len(pathSegments) - remaining
		switch segment.Kind {
		case KindSingleCapture:
			if pathNdx < len(pathSegments) {
				matches[segment.Trimmed] = pathSegments[pathNdx]
			}
		case KindMultiCapture:
			if pathNdx <= nextPathNdx && nextPathNdx <= len(pathSegments) {
				matches[segment.Trimmed] = strings.Join(pathSegments[pathNdx:nextPathNdx], "/")
			}
		}
		if segment.IsMultiWildcard() {
			pathNdx = nextPathNdx
		} else {
			pathNdx++
		}
	}
	return matches
}
