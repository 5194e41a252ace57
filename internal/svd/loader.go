package svd

import (
	"encoding/xml"
	"fmt"
	"os"
)

// LoadFile loads and parses an SVD file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SVD file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses XML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := xml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVD XML: %w", err)
	}

	return &doc, nil
}
