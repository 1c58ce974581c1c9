package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/zurustar/sorbitol/internal/archive"
	"github.com/zurustar/sorbitol/internal/config"
	"github.com/zurustar/sorbitol/internal/logging"
	"github.com/zurustar/sorbitol/internal/parser"
)

func main() {
	var configFile = flag.String("config", "", "Configuration file path (built-in defaults when empty)")
	var format = flag.String("format", "", "Output format override (text or json)")
	flag.Parse()

	manager := config.NewManager()
	cfg := config.GetDefaultConfig()
	if *configFile != "" {
		loaded, err := manager.Load(*configFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if *format != "" {
		cfg.Output.Format = *format
		if err := manager.Validate(cfg); err != nil {
			log.Fatalf("Invalid flags: %v", err)
		}
	}

	logger, err := logging.NewLoggerFromConfig(logging.LoggerConfig{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	runID := uuid.NewString()

	text, err := readInput(flag.Args())
	if err != nil {
		logger.Error("failed to read input", logging.RunField(runID), logging.ErrorField(err))
		os.Exit(1)
	}
	if cfg.Input.TrimTrailingNewline {
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	}

	p := parser.NewParser()
	messages, err := p.ParseLines(text)
	if err != nil {
		logger.Error("parse failed", logging.RunField(runID), logging.ErrorField(err))
		fmt.Fprintf(os.Stderr, "ircparse: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("input parsed", logging.RunField(runID), logging.CountField(len(messages)))

	var store *archive.Store
	if cfg.Database.Path != "" {
		store, err = archive.Open(cfg.Database.Path)
		if err != nil {
			logger.Error("failed to open archive", logging.RunField(runID), logging.ErrorField(err))
			os.Exit(1)
		}
		defer store.Close()
	}

	// Raw lines are kept alongside the parsed messages for the archive.
	rawLines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	for i, msg := range messages {
		if err := emit(p, msg, cfg.Output.Format); err != nil {
			logger.Error("failed to emit message",
				logging.RunField(runID), logging.LineField(i+1), logging.ErrorField(err))
			os.Exit(1)
		}
		if store != nil {
			if err := store.Save(runID, rawLines[i], msg); err != nil {
				logger.Error("failed to archive message",
					logging.RunField(runID), logging.LineField(i+1), logging.ErrorField(err))
				os.Exit(1)
			}
		}
	}

	logger.Info("parse complete", logging.RunField(runID), logging.CountField(len(messages)))
}

// readInput concatenates the named files, or reads stdin when no files
// are given
func readInput(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	var b strings.Builder
	for i, filename := range files {
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %s: %w", filename, err)
		}
		b.Write(data)
		// Keep lines of adjacent files from running together.
		if i < len(files)-1 && len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// emit prints one message to stdout in the configured format: the
// canonical wire form for text, one object per line for json
func emit(p *parser.Parser, msg *parser.Message, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		line, err := p.Serialize(msg)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}
