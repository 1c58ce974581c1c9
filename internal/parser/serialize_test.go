package parser

import (
	"reflect"
	"testing"
)

func TestSerializeBasic(t *testing.T) {
	parser := NewParser()
	line, err := parser.Serialize(NewMessage(CommandPRIVMSG, "#chan", "hello"))
	if err != nil {
		t.Fatalf("Failed to serialize message: %v", err)
	}

	if line != "PRIVMSG #chan hello" {
		t.Errorf("Expected PRIVMSG #chan hello, got %q", line)
	}
}

func TestSerializeTrailingWithSpaces(t *testing.T) {
	parser := NewParser()
	line, err := parser.Serialize(NewMessage(CommandPRIVMSG, "#chan", "hello there"))
	if err != nil {
		t.Fatalf("Failed to serialize message: %v", err)
	}

	if line != "PRIVMSG #chan :hello there" {
		t.Errorf("Expected PRIVMSG #chan :hello there, got %q", line)
	}
}

func TestSerializeEmptyTrailing(t *testing.T) {
	parser := NewParser()
	line, err := parser.Serialize(NewMessage(CommandPING, ""))
	if err != nil {
		t.Fatalf("Failed to serialize message: %v", err)
	}

	if line != "PING :" {
		t.Errorf("Expected PING :, got %q", line)
	}
}

func TestSerializeTagsSortedWithSource(t *testing.T) {
	msg := NewMessage(CommandPRIVMSG, "#chan", "hi there")
	msg.SetTag("name", "rick")
	msg.SetTag("id", "123")
	msg.Source = ":nick!user@host"

	parser := NewParser()
	line, err := parser.Serialize(msg)
	if err != nil {
		t.Fatalf("Failed to serialize message: %v", err)
	}

	expected := "@id=123;name=rick :nick!user@host PRIVMSG #chan :hi there"
	if line != expected {
		t.Errorf("Expected %q, got %q", expected, line)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	line := "@id=123;name=rick :nick!user@host.tmi.twitch.tv PRIVMSG #rickastley :Never gonna give you up!"

	parser := NewParser()
	msg, err := parser.Parse(line)
	if err != nil {
		t.Fatalf("Failed to parse message: %v", err)
	}

	serialized, err := parser.Serialize(msg)
	if err != nil {
		t.Fatalf("Failed to serialize message: %v", err)
	}
	if serialized != line {
		t.Errorf("Round trip changed the line:\n  in:  %q\n  out: %q", line, serialized)
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	msg := NewMessage(CommandNOTICE, "#chan", "one two three")
	msg.SetTag("time", "2022-01-01T00:00:00Z")
	msg.Source = ":server.example.com"

	parser := NewParser()
	line, err := parser.Serialize(msg)
	if err != nil {
		t.Fatalf("Failed to serialize message: %v", err)
	}

	reparsed, err := parser.Parse(line)
	if err != nil {
		t.Fatalf("Failed to reparse serialized line %q: %v", line, err)
	}
	if !reflect.DeepEqual(msg, reparsed) {
		t.Errorf("Round trip changed the message:\n  in:  %+v\n  out: %+v", msg, reparsed)
	}
}

func TestValidateRejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{"nil message", nil},
		{"empty command", NewMessage("")},
		{"command with space", NewMessage("PRIV MSG")},
		{"empty tag key", &Message{Tags: map[string]string{"": "v"}, Command: "PING"}},
		{"tag key with equals", &Message{Tags: map[string]string{"a=b": "v"}, Command: "PING"}},
		{"tag value with semicolon", &Message{Tags: map[string]string{"a": "b;c"}, Command: "PING"}},
		{"source without colon", &Message{Source: "nick!user@host", Command: "PING"}},
		{"source with space", &Message{Source: ":nick user", Command: "PING"}},
		{"non-final param with space", NewMessage(CommandPRIVMSG, "a b", "c")},
		{"non-final param with colon", NewMessage(CommandPRIVMSG, ":a", "c")},
	}

	parser := NewParser()
	for _, tt := range tests {
		if err := parser.Validate(tt.msg); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}

func TestValidateAcceptsParsedMessage(t *testing.T) {
	parser := NewParser()
	msg, err := parser.Parse("@id=1 :src PRIVMSG #chan :hello world")
	if err != nil {
		t.Fatalf("Failed to parse message: %v", err)
	}

	if err := parser.Validate(msg); err != nil {
		t.Errorf("Expected parsed message to validate, got %v", err)
	}
}
