package document

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/agatho/bottree/pkg/errors"
)

// Marshal encodes the full document as indented JSON, refreshing
// ModifiedAt to the current time first. All fields, nodes, and nested
// parameter bags are written losslessly.
func Marshal(d *Document) ([]byte, error) {
	d.ModifiedAt = time.Now().UTC()
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes a document from JSON, enforcing the format
// contract. It fails with a coded error when the data is not valid
// JSON, the version field is missing, the version is newer than
// CurrentVersion, or nodes is present but not an array. Every other
// field passes through untouched, so documents written by older
// versions decode without migration.
func Unmarshal(data []byte) (Document, error) {
	var probe struct {
		Version *int            `json:"version"`
		Nodes   json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeParse, err, "document is not valid JSON")
	}

	if probe.Version == nil {
		return Document{}, errors.New(errors.ErrCodeMissingVersion, "document is missing version field")
	}
	if *probe.Version > CurrentVersion {
		return Document{}, errors.New(errors.ErrCodeVersionTooNew,
			"document version %d is newer than supported version %d", *probe.Version, CurrentVersion)
	}
	if len(probe.Nodes) > 0 && !isJSONArray(probe.Nodes) {
		return Document{}, errors.New(errors.ErrCodeMalformedNodes, "nodes must be an array")
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeParse, err, "decode document fields")
	}
	return d, nil
}

// isJSONArray reports whether raw holds a JSON array or null.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	return trimmed[0] == '['
}
