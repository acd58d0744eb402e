package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Export is the legacy CMS dump: a JSON object with a data array of
// records. The whole document is loaded into memory before any filtering.
type Export struct {
	Data []RawRecord `json:"data"`
}

// LoadExport reads the export from a local path, or over HTTP when the
// source starts with http:// or https://. A document that is not a JSON
// object with a data array is a schema violation.
func LoadExport(source string) (*Export, error) {
	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetchExport(source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = &FileSystemError{Op: "reading export", Path: source, Err: err}
		}
	}
	if err != nil {
		return nil, err
	}

	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, &SchemaViolationError{Field: "document", Reason: fmt.Sprintf("is not a valid export: %v", err)}
	}
	if export.Data == nil {
		return nil, &SchemaViolationError{Field: "data", Reason: "missing from export document"}
	}

	return &export, nil
}

func fetchExport(url string) ([]byte, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching export from URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading export response: %w", err)
	}

	return data, nil
}
