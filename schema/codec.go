package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileSchema is the on-disk shape of a schema, shared by every format.
type fileSchema struct {
	Selector []string               `json:"selector" yaml:"selector,flow" toml:"selector"`
	Children map[string]*fileSchema `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Load reads and validates a schema file. The format is taken from the file
// extension, falling back to content sniffing.
func Load(filename string) (*Schema, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening schema file: %w", err)
	}

	f := DetectFormat(filename)
	if f == Unknown {
		f = DetectFromContent(data)
	}

	s, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	return s, nil
}

// Decode parses a schema document in the given format and validates it.
// Unknown fields are rejected.
func Decode(data []byte, f Format) (*Schema, error) {
	var fs fileSchema
	var err error

	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&fs)
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fs)
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&fs)
	default:
		return nil, fmt.Errorf("unsupported schema format %s", f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s schema: %w", f, err)
	}

	s, err := fs.toSchema(rootPath)
	if err != nil {
		return nil, err
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (fs *fileSchema) toSchema(path string) (*Schema, error) {
	if fs == nil {
		return nil, &MalformedError{Path: path, Reason: "schema is empty"}
	}
	if len(fs.Selector) != 2 {
		return nil, &MalformedError{
			Path:   path,
			Reason: fmt.Sprintf("selector must be [mode, pattern], got %d element(s)", len(fs.Selector)),
		}
	}
	mode, err := ParseMode(fs.Selector[0])
	if err != nil {
		return nil, &MalformedError{Path: path, Reason: err.Error()}
	}

	var children Children
	if len(fs.Children) > 0 {
		children = make(Children, len(fs.Children))
		for name, child := range fs.Children {
			cs, err := child.toSchema(path + "." + name)
			if err != nil {
				return nil, err
			}
			children[name] = cs
		}
	}

	return &Schema{
		sel:      Selector{Mode: mode, Pattern: fs.Selector[1]},
		children: children,
	}, nil
}

func toFile(s *Schema) *fileSchema {
	fs := &fileSchema{Selector: []string{s.sel.Mode.String(), s.sel.Pattern}}
	if len(s.children) > 0 {
		fs.Children = make(map[string]*fileSchema, len(s.children))
		for name, child := range s.children {
			fs.Children[name] = toFile(child)
		}
	}
	return fs
}

// Encode renders a valid schema in the given format.
func Encode(s *Schema, f Format) ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	fs := toFile(s)

	switch f {
	case YAML:
		return yaml.Marshal(fs)
	case JSON:
		out, err := json.MarshalIndent(fs, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case TOML:
		return toml.Marshal(fs)
	default:
		return nil, fmt.Errorf("unsupported schema format %s", f)
	}
}
