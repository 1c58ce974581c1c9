package parser

// Common IRC commands
const (
	CommandPASS    = "PASS"
	CommandNICK    = "NICK"
	CommandUSER    = "USER"
	CommandPING    = "PING"
	CommandPONG    = "PONG"
	CommandJOIN    = "JOIN"
	CommandPART    = "PART"
	CommandPRIVMSG = "PRIVMSG"
	CommandNOTICE  = "NOTICE"
	CommandMODE    = "MODE"
	CommandTOPIC   = "TOPIC"
	CommandKICK    = "KICK"
	CommandQUIT    = "QUIT"
	CommandCAP     = "CAP"
	CommandERROR   = "ERROR"
)

// Common numeric replies
const (
	ReplyWelcome       = "001"
	ReplyYourHost      = "002"
	ReplyCreated       = "003"
	ReplyMyInfo        = "004"
	ReplyMOTD          = "372"
	ReplyMOTDStart     = "375"
	ReplyEndOfMOTD     = "376"
	ReplyNicknameInUse = "433"
)

// Message represents a single parsed IRC line
type Message struct {
	// Tags holds the key/value pairs of the leading @-segment. This
	// will be an empty map if the line carried no tags.
	Tags map[string]string `json:"tags"`
	// Source is the origin prefix including its leading ':', or the
	// empty string if the line carried no source segment.
	Source string `json:"source,omitempty"`
	// Command is the verb or three-digit numeric code, case preserved.
	// It is never empty after a successful parse.
	Command string `json:"command"`
	// Params holds the command parameters in wire order. When the line
	// carried a trailing parameter it is the final element, embedded
	// spaces intact.
	Params []string `json:"params"`
}

// NewMessage creates a new message for the given command
func NewMessage(command string, params ...string) *Message {
	return &Message{
		Tags:    make(map[string]string),
		Command: command,
		Params:  params,
	}
}

// HasSource reports whether the message carried a source segment
func (m *Message) HasSource() bool {
	return m.Source != ""
}

// GetTag returns the value of a tag, or the empty string if absent
func (m *Message) GetTag(key string) string {
	return m.Tags[key]
}

// HasTag checks if a tag exists
func (m *Message) HasTag(key string) bool {
	_, exists := m.Tags[key]
	return exists
}

// SetTag sets a tag value, replacing any existing value
func (m *Message) SetTag(key, value string) {
	if m.Tags == nil {
		m.Tags = make(map[string]string)
	}
	m.Tags[key] = value
}

// RemoveTag removes a tag from the message
func (m *Message) RemoveTag(key string) {
	delete(m.Tags, key)
}

// Trailing returns the final parameter, which held the trailing text
// when the wire line carried one, or the empty string if the message
// has no parameters
func (m *Message) Trailing() string {
	if len(m.Params) == 0 {
		return ""
	}
	return m.Params[len(m.Params)-1]
}

// IsNumeric reports whether the command is a three-digit reply code
func (m *Message) IsNumeric() bool {
	if len(m.Command) != 3 {
		return false
	}
	for _, c := range m.Command {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the message
func (m *Message) Clone() *Message {
	clone := &Message{
		Tags:    make(map[string]string, len(m.Tags)),
		Source:  m.Source,
		Command: m.Command,
		Params:  make([]string, len(m.Params)),
	}

	for key, value := range m.Tags {
		clone.Tags[key] = value
	}
	copy(clone.Params, m.Params)

	return clone
}
