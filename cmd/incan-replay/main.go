package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/Matthew-w56/incan-gold-cli/replay"
)

// Reads a game spec (JSON) and writes the full event tape of the
// deterministic game it describes. With no flags it filters stdin to
// stdout, which makes it easy to pipe into jq.
func main() {
	var (
		inPath  = flag.String("in", "", "game spec JSON file (default stdin)")
		outPath = flag.String("out", "", "tape output file (default stdout)")
	)
	flag.Parse()

	raw, err := readInput(*inPath)
	if err != nil {
		log.Fatalf("[Replay] Failed to read spec: %v", err)
	}

	var spec replay.GameSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		log.Fatalf("[Replay] Malformed spec: %v", err)
	}

	tape, err := replay.Generate(spec)
	if err != nil {
		log.Fatalf("[Replay] Failed to generate tape: %v", err)
	}

	encoded, err := json.MarshalIndent(tape, "", "  ")
	if err != nil {
		log.Fatalf("[Replay] Failed to encode tape: %v", err)
	}
	encoded = append(encoded, '\n')

	if err := writeOutput(*outPath, encoded); err != nil {
		log.Fatalf("[Replay] Failed to write tape: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
