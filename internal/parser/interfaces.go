package parser

// MessageParser defines the interface for parsing and serializing IRC messages
type MessageParser interface {
	Parse(line string) (*Message, error)
	ParseLines(text string) ([]*Message, error)
	Serialize(msg *Message) (string, error)
	Validate(msg *Message) error
}
