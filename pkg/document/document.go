// Package document loads records from YAML or JSON documents and renders them back.
package document

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	v1 "github.com/harvester/mediaconvert/pkg/apis/mediaconvert.io/v1"
	"github.com/harvester/mediaconvert/pkg/record"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrQueryNoMatch  = errors.New("query matched nothing")
	ErrUnknownFormat = errors.New("unknown output format")
)

type Options struct {
	// Query is a gjson path selecting the part of the document to load,
	// e.g. "settings.outputGroups.0".
	Query string
	// StrictEnums rejects enum values the model does not declare.
	StrictEnums bool
}

// Load builds a record of the given kind, e.g. "CreateJobRequest", from a YAML or JSON document.
func Load(kind string, data []byte, opts Options) (record.Record, error) {
	r, err := v1.NewRecord(kind)
	if err != nil {
		return nil, err
	}
	if err := Into(r, data, opts); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", kind)
	}
	return r, nil
}

// Into decodes a YAML or JSON document into out, which must be a pointer to a record.
func Into(out any, data []byte, opts Options) error {
	logrus.Debugf("decoding %T from %d bytes", out, len(data))
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return errors.Wrap(err, "failed to read document")
	}
	if opts.Query != "" {
		result := gjson.GetBytes(raw, opts.Query)
		if !result.Exists() {
			return errors.Wrapf(ErrQueryNoMatch, "%q", opts.Query)
		}
		logrus.Debugf("query %q selected %s", opts.Query, result.Type)
		raw = []byte(result.Raw)
	}

	var payload any
	if err := yaml.Unmarshal(raw, &payload, useNumber); err != nil {
		return errors.Wrap(err, "failed to parse document")
	}

	var decodeOpts []record.DecodeOption
	if opts.StrictEnums {
		decodeOpts = append(decodeOpts, record.StrictEnums())
	}
	return record.Decode(payload, out, decodeOpts...)
}

// useNumber keeps integers exact instead of rounding them through float64.
func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}

// Render prints r in the given format. Text is the debug form; JSON and YAML carry the
// present fields under their wire names.
func Render(r record.Record, format string) ([]byte, error) {
	switch format {
	case "", FormatText:
		return []byte(r.String() + "\n"), nil
	case FormatJSON:
		out, err := json.MarshalIndent(record.ToMap(r), "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to render JSON")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(record.ToMap(r))
		return out, errors.Wrap(err, "failed to render YAML")
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}
