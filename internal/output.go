package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/Al2Klimov/FUeL.go"
	"gopkg.in/yaml.v2"
	"io"
)

type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

func (of OutputFormat) Validate() fuel.ErrorWithStack {
	switch of {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fuel.AttachStackToError(fmt.Errorf("unknown output format %q", string(of)), 0)
	}
}

// Print writes v to w. YAML output keeps the JSON member names and order.
func (of OutputFormat) Print(w io.Writer, v interface{}) fuel.ErrorWithStack {
	if of == OutputYAML {
		return printYAML(w, v)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return fuel.AttachStackToError(enc.Encode(v), 0)
}

func printYAML(w io.Writer, v interface{}) fuel.ErrorWithStack {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	buf.WriteString(`{"v":`)
	if err := enc.Encode(v); err != nil {
		return fuel.AttachStackToError(err, 0)
	}
	buf.WriteString(`}`)

	// JSON is YAML, and decoding into a MapSlice keeps the member order.
	var wrapper yaml.MapSlice
	if err := yaml.Unmarshal(buf.Bytes(), &wrapper); err != nil {
		return fuel.AttachStackToError(err, 0)
	}

	out, err := yaml.Marshal(wrapper[0].Value)
	if err != nil {
		return fuel.AttachStackToError(err, 0)
	}

	_, err = w.Write(out)
	return fuel.AttachStackToError(err, 0)
}
