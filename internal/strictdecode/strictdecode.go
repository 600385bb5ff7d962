// Package strictdecode decodes single YAML or JSON documents and rejects
// unknown fields.
package strictdecode

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrMultipleDocuments is returned when input holds more than one document.
var ErrMultipleDocuments = errors.New("multiple documents are not supported")

type decoder interface {
	Decode(v any) error
}

// YAML decodes exactly one YAML document into out.
func YAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return single(dec, out)
}

// JSON decodes exactly one JSON document into out.
func JSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return single(dec, out)
}

func single(dec decoder, out any) error {
	if err := dec.Decode(out); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return ErrMultipleDocuments
		}
		return err
	}
	return nil
}
