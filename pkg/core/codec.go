package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// StateSeparator divides the type token from the parameter text. The format
// performs no escaping: a parameter containing a newline corrupts the state
// on restore. Preserved as a known limitation.
const StateSeparator = "|"

// StateEntry is the raw, unresolved form of one serialized entry.
type StateEntry struct {
	SourceType string `json:"source_type"`
	Parameter  string `json:"parameter"`
}

// StateDocument is the structural form of serialized navigation state:
// current entry (if any), back stack oldest-first, forward stack most
// recent first.
type StateDocument struct {
	Current *StateEntry  `json:"current,omitempty"`
	Back    []StateEntry `json:"back"`
	Forward []StateEntry `json:"forward"`
}

// EncodeState renders the navigation history in the line-oriented text
// format:
//
//	<CurrentTypeName>|<Parameter>    (just "|" when no current entry)
//	<N>
//	<TypeName>|<Parameter>  × N      (back stack, index 0 first)
//	<M>
//	<TypeName>|<Parameter>  × M      (forward stack, index 0 first)
//
// Only text, character, number and unique-identifier parameters can be
// rendered; any other kind is an encoding error.
func EncodeState(h *History) (string, error) {
	doc := StateDocument{}
	if cur := h.Current(); cur != nil {
		raw, err := rawEntry(cur)
		if err != nil {
			return "", err
		}
		doc.Current = &raw
	}
	for _, e := range h.BackEntries() {
		raw, err := rawEntry(e)
		if err != nil {
			return "", err
		}
		doc.Back = append(doc.Back, raw)
	}
	for _, e := range h.ForwardEntries() {
		raw, err := rawEntry(e)
		if err != nil {
			return "", err
		}
		doc.Forward = append(doc.Forward, raw)
	}
	return doc.Encode(), nil
}

func rawEntry(e *Entry) (StateEntry, error) {
	text, err := ParameterText(e.Parameter)
	if err != nil {
		return StateEntry{}, fmt.Errorf("entry %s: %w", e.sourceType, err)
	}
	return StateEntry{SourceType: e.sourceType, Parameter: text}, nil
}

// Encode renders the document back to the text format. The inverse of
// ParseState.
func (d *StateDocument) Encode() string {
	var b strings.Builder
	if d.Current != nil {
		writeStateLine(&b, *d.Current)
	} else {
		b.WriteString(StateSeparator)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d\n", len(d.Back))
	for _, e := range d.Back {
		writeStateLine(&b, e)
	}
	fmt.Fprintf(&b, "%d\n", len(d.Forward))
	for _, e := range d.Forward {
		writeStateLine(&b, e)
	}
	return b.String()
}

func writeStateLine(b *strings.Builder, e StateEntry) {
	b.WriteString(e.SourceType)
	b.WriteString(StateSeparator)
	b.WriteString(e.Parameter)
	b.WriteString("\n")
}

// ParameterText renders a navigation parameter for persistence. Nil renders
// as the empty string. A rune is treated as the character kind and rendered
// literally; the remaining integer and float kinds render in decimal form,
// and uuid.UUID renders canonically.
func ParameterText(p any) (string, error) {
	switch v := p.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case rune:
		return string(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case uuid.UUID:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedParameter, p)
	}
}

// ParameterUUID parses a restored parameter text as a unique identifier.
func ParameterUUID(text string) (uuid.UUID, error) {
	return uuid.Parse(text)
}

// ParseState splits text into its structural parts without resolving any
// type token. Structural damage (missing separator, missing or non-numeric
// count lines, truncated entry lists) is fatal; tolerance for unresolvable
// types is the caller's concern.
func ParseState(text string) (*StateDocument, error) {
	lines := strings.Split(text, "\n")
	// The format is newline-terminated, so drop one trailing empty line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedState)
	}

	doc := &StateDocument{}
	if !strings.HasPrefix(lines[0], StateSeparator) {
		entry, err := splitStateLine(lines[0])
		if err != nil {
			return nil, err
		}
		doc.Current = &entry
	}

	rest := lines[1:]
	var err error
	doc.Back, rest, err = readStateList(rest, "back")
	if err != nil {
		return nil, err
	}
	doc.Forward, rest, err = readStateList(rest, "forward")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing lines", ErrMalformedState, len(rest))
	}
	return doc, nil
}

func splitStateLine(line string) (StateEntry, error) {
	idx := strings.Index(line, StateSeparator)
	if idx < 0 {
		return StateEntry{}, fmt.Errorf("%w: missing separator in %q", ErrMalformedState, line)
	}
	return StateEntry{SourceType: line[:idx], Parameter: line[idx+1:]}, nil
}

func readStateList(lines []string, name string) ([]StateEntry, []string, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: missing %s-stack count", ErrMalformedState, name)
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || count < 0 {
		return nil, nil, fmt.Errorf("%w: invalid %s-stack count %q", ErrMalformedState, name, lines[0])
	}
	lines = lines[1:]
	if len(lines) < count {
		return nil, nil, fmt.Errorf("%w: %s stack truncated", ErrMalformedState, name)
	}
	out := make([]StateEntry, 0, count)
	for i := 0; i < count; i++ {
		entry, err := splitStateLine(lines[i])
		if err != nil {
			return nil, nil, err
		}
		out = append(out, entry)
	}
	return out, lines[count:], nil
}
