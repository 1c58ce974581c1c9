package archive

import "github.com/zurustar/sorbitol/internal/parser"

// MessageRecorder defines the interface for archiving parsed messages
type MessageRecorder interface {
	Save(runID, raw string, msg *parser.Message) error
	Count() (int, error)
	Close() error
}
