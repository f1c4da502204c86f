package service

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfind/solve"
)

//go:embed schema/*.json
var schemas embed.FS

// Format names a request document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DecodeSolve parses and schema-checks a solve request document.
func (s *Service) DecodeSolve(data []byte, format Format) (solve.Request, error) {
	var req solve.Request
	err := s.decode(data, format, s.solveSchema, &req)
	return req, err
}

// DecodeEvaluate parses and schema-checks an evaluate request document.
func (s *Service) DecodeEvaluate(data []byte, format Format) (solve.EvaluateRequest, error) {
	var req solve.EvaluateRequest
	err := s.decode(data, format, s.evaluateSchema, &req)
	return req, err
}

// decode normalises data to JSON, validates it against schema and decodes
// it into dst.
func (s *Service) decode(data []byte, format Format, schema *jsonschema.Schema, dst any) error {
	if limit := s.cfg.Service.MaxPayloadBytes; limit > 0 && len(data) > limit {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrPayloadTooLarge, len(data), limit)
	}
	raw, err := toJSON(data, format)
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err = schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	raw, err := schemas.ReadFile("schema/" + name)
	if err != nil {
		return nil, fmt.Errorf("service: read schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("service: unmarshal schema %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	if err = c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("service: add schema resource %s: %w", name, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("service: compile schema %s: %w", name, err)
	}
	return schema, nil
}
