package parser

import (
	"fmt"
	"sort"
	"strings"
)

// Parser implements the MessageParser interface
type Parser struct{}

// NewParser creates a new IRC message parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a single IRC line. Carriage returns are stripped before
// parsing; the remaining text must be one non-empty line.
func (p *Parser) Parse(line string) (*Message, error) {
	return p.parseLine(strings.ReplaceAll(line, "\r", ""))
}

// ParseLines parses newline-separated IRC lines, returning one message
// per line in input order. Every line must be non-empty, including a
// trailing one produced by a final newline; callers feeding whole
// buffers should trim that newline first. The batch aborts on the first
// malformed line and no partial results are returned.
func (p *Parser) ParseLines(text string) ([]*Message, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	messages := make([]*Message, 0, len(lines))
	for i, line := range lines {
		msg, err := p.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// parseLine runs the single-pass cursor scan over one line:
// [@tags ][:source ]COMMAND[ params][ :trailing]
func (p *Parser) parseLine(line string) (*Message, error) {
	if len(line) == 0 {
		return nil, ErrEmptyLine
	}

	idx := 0
	tags := make(map[string]string)
	source := ""

	// Tags segment
	if line[0] == '@' {
		end := strings.IndexByte(line, ' ')
		if end < 0 {
			return nil, ErrMissingTagsTerminator
		}
		for _, entry := range strings.Split(line[1:end], ";") {
			kv := strings.SplitN(entry, "=", 2)
			if len(kv) < 2 || kv[0] == "" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedTag, entry)
			}
			// Duplicate keys keep the last value seen.
			tags[kv[0]] = kv[1]
		}
		idx = end + 1
	}

	// Source segment, kept verbatim including the leading ':'
	if idx < len(line) && line[idx] == ':' {
		sp := strings.IndexByte(line[idx+1:], ' ')
		if sp < 0 {
			return nil, ErrMissingSourceTerminator
		}
		end := idx + 1 + sp
		source = line[idx:end]
		idx = end + 1
	}

	// Command segment
	if idx >= len(line) {
		return nil, ErrMissingCommandTerminator
	}
	sp := strings.IndexByte(line[idx+1:], ' ')
	if sp < 0 {
		return nil, ErrMissingCommandTerminator
	}
	end := idx + 1 + sp
	command := line[idx:end]
	idx = end + 1

	// Params segment. The first ':' at or past the cursor introduces
	// the trailing parameter; everything between the cursor and the
	// space before it splits on single spaces, empty strings included.
	params := []string{}
	if c := strings.IndexByte(line[idx:], ':'); c < 0 {
		if middle := line[idx:]; middle != "" {
			params = strings.Split(middle, " ")
		}
	} else {
		colon := idx + c
		if colon > idx {
			if middle := line[idx : colon-1]; middle != "" {
				params = strings.Split(middle, " ")
			}
		}
		params = append(params, line[colon+1:])
	}

	return &Message{
		Tags:    tags,
		Source:  source,
		Command: command,
		Params:  params,
	}, nil
}

// Serialize converts a message back to wire format. Tags are emitted in
// sorted key order so output is deterministic; the final parameter gets
// the ':' sigil whenever it is empty, contains a space, or itself
// begins with ':'.
func (p *Parser) Serialize(msg *Message) (string, error) {
	if err := p.Validate(msg); err != nil {
		return "", err
	}

	var b strings.Builder

	if len(msg.Tags) > 0 {
		keys := make([]string, 0, len(msg.Tags))
		for key := range msg.Tags {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteByte('@')
		for i, key := range keys {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(msg.Tags[key])
		}
		b.WriteByte(' ')
	}

	if msg.Source != "" {
		b.WriteString(msg.Source)
		b.WriteByte(' ')
	}

	b.WriteString(msg.Command)

	for i, param := range msg.Params {
		b.WriteByte(' ')
		if i == len(msg.Params)-1 && needsTrailingSigil(param) {
			b.WriteByte(':')
		}
		b.WriteString(param)
	}

	return b.String(), nil
}

// needsTrailingSigil reports whether a final parameter must be written
// as a trailing parameter to survive a round trip
func needsTrailingSigil(param string) bool {
	return param == "" || strings.HasPrefix(param, ":") || strings.ContainsRune(param, ' ')
}

// Validate checks that a message is structurally sound and can be
// serialized to a parseable wire line
func (p *Parser) Validate(msg *Message) error {
	if msg == nil {
		return fmt.Errorf("message is nil")
	}

	if msg.Command == "" {
		return fmt.Errorf("command cannot be empty")
	}
	if strings.ContainsRune(msg.Command, ' ') {
		return fmt.Errorf("command cannot contain spaces: %q", msg.Command)
	}

	for key, value := range msg.Tags {
		if key == "" {
			return fmt.Errorf("tag key cannot be empty")
		}
		if strings.ContainsAny(key, "=; ") {
			return fmt.Errorf("invalid tag key: %q", key)
		}
		if strings.ContainsAny(value, "; ") {
			return fmt.Errorf("invalid value for tag %q: %q", key, value)
		}
	}

	if msg.Source != "" {
		if !strings.HasPrefix(msg.Source, ":") {
			return fmt.Errorf("source must begin with ':': %q", msg.Source)
		}
		if strings.ContainsRune(msg.Source, ' ') {
			return fmt.Errorf("source cannot contain spaces: %q", msg.Source)
		}
	}

	// Only the final parameter may hold free text.
	for i, param := range msg.Params {
		if i == len(msg.Params)-1 {
			break
		}
		if strings.ContainsRune(param, ' ') {
			return fmt.Errorf("non-final parameter %d cannot contain spaces: %q", i, param)
		}
		if strings.HasPrefix(param, ":") {
			return fmt.Errorf("non-final parameter %d cannot begin with ':': %q", i, param)
		}
	}

	return nil
}
