package define

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"
)

// file is the layout of definition files:
//
//	curves:
//	  - tag: ElasticMild.OUT
//	    family: elastic
//	    params: {intensity: 7, scale: 0.9}
type file struct {
	Curves []Definition `yaml:"curves"`
}

// LoadYAML reads definitions from a YAML document. Unknown keys are
// rejected. An empty document holds no definitions.
func LoadYAML(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, WrapError(err, EFORMAT, "cannot parse YAML definitions")
	}
	return normalizeAll(f.Curves)
}

// LoadJSON reads definitions from a JSON document of the same layout as the
// YAML one, {"curves": [...]}.
func LoadJSON(data []byte) ([]Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var defs []Definition
	var perr error
	fail := func(err error) {
		if perr == nil {
			perr = err
		}
	}
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if err != nil {
			fail(WrapError(err, EFORMAT, "malformed curve at offset %d", offset))
			return
		}
		if dataType != jsonparser.Object {
			fail(Error(EFORMAT, "curve at offset %d is not an object", offset))
			return
		}
		d, err := parseJSONDefinition(value)
		if err != nil {
			fail(err)
			return
		}
		defs = append(defs, d)
	}, "curves")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return nil, Error(EMISSING, "JSON definitions have no curves array")
	case err != nil:
		return nil, WrapError(err, EFORMAT, "cannot parse JSON definitions")
	case perr != nil:
		return nil, perr
	}
	return normalizeAll(defs)
}

func parseJSONDefinition(obj []byte) (Definition, error) {
	var d Definition
	err := jsonparser.ObjectEach(obj, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		var err error
		switch k := string(key); k {
		case "tag":
			d.Tag, err = jsonString(k, value, dataType)
		case "family":
			d.Family, err = jsonString(k, value, dataType)
		case "variant":
			var v string
			v, err = jsonString(k, value, dataType)
			d.Variant = Variant(v)
		case "params":
			d.Params, err = jsonParams(value, dataType)
		case "pairs":
			d.Pairs, err = jsonNumbers(value, dataType)
		default:
			err = Error(EFORMAT, "unknown key %q", k)
		}
		return err
	})
	if err != nil && Code(err) == EINTERNAL {
		err = WrapError(err, EFORMAT, "malformed curve definition")
	}
	return d, err
}

func jsonString(key string, value []byte, dataType jsonparser.ValueType) (string, error) {
	if dataType != jsonparser.String {
		return "", Error(EFORMAT, "%s must be a string", key)
	}
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return "", WrapError(err, EFORMAT, "malformed %s", key)
	}
	return s, nil
}

func jsonParams(value []byte, dataType jsonparser.ValueType) (map[string]float64, error) {
	if dataType != jsonparser.Object {
		return nil, Error(EFORMAT, "params must be an object")
	}
	params := make(map[string]float64)
	err := jsonparser.ObjectEach(value, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		if dataType != jsonparser.Number {
			return Error(EFORMAT, "parameter %s must be a number", key)
		}
		v, err := jsonparser.ParseFloat(value)
		if err != nil {
			return WrapError(err, EFORMAT, "malformed parameter %s", key)
		}
		params[string(key)] = v
		return nil
	})
	return params, err
}

func jsonNumbers(value []byte, dataType jsonparser.ValueType) ([]float64, error) {
	if dataType != jsonparser.Array {
		return nil, Error(EFORMAT, "pairs must be an array")
	}
	var out []float64
	var perr error
	_, err := jsonparser.ArrayEach(value, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if perr != nil {
			return
		}
		if err != nil || dataType != jsonparser.Number {
			perr = Error(EFORMAT, "pairs must hold numbers")
			return
		}
		v, err := jsonparser.ParseFloat(value)
		if err != nil {
			perr = WrapError(err, EFORMAT, "malformed pair value")
			return
		}
		out = append(out, v)
	})
	if err != nil {
		return nil, WrapError(err, EFORMAT, "malformed pairs")
	}
	return out, perr
}

// LoadFile reads definitions from a file, choosing the format by the file's
// extension: .yaml, .yml or .json.
func LoadFile(name string) ([]Definition, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, WrapError(err, EMISSING, "cannot read definitions")
	}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	case ".json":
		return LoadJSON(data)
	default:
		return nil, Error(EFORMAT, "%s: unsupported format %q", name, ext)
	}
}

func normalizeAll(defs []Definition) ([]Definition, error) {
	for i := range defs {
		if err := defs[i].normalize(); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("loaded %d curve definitions", len(defs))
	return defs, nil
}
