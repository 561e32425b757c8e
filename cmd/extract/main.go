package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/kyo-hirano/receipt-fields/internal/extract"
	"github.com/kyo-hirano/receipt-fields/internal/ingest"
)

// extract <blocks.json> reads one OCR export, validates it, runs the
// engine, and prints the four FieldResults as JSON on stdout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extract <blocks.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	if err := ingest.ValidateJSON(data); err != nil {
		logger.Error("invalid OCR payload", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	blocks, err := ingest.DecodeBlocks(data)
	if err != nil {
		logger.Error("decode blocks", "error", err)
		os.Exit(1)
	}

	extractor := extract.NewExtractor(logger, extract.Config{})
	result, err := extractor.ExtractFields(blocks)
	if err != nil {
		logger.Error("extract fields", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
