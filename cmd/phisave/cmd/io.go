package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// readInput reads the named file, or r if path is "-".
func readInput(r io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// writeOutput writes data to the named file, or w if path is "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := w.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func decodeBase64(text []byte) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(text)))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 record: %w", err)
	}
	return data, nil
}

func encodeBase64(data []byte) []byte {
	return []byte(base64.StdEncoding.EncodeToString(data) + "\n")
}
