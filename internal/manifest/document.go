package manifest

import (
	"bytes"
	"fmt"

	"github.com/indaco/jsrgen/internal/exports"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// prettyOptions renders like JSON.stringify(v, null, 2): two-space indent,
// keys in document order and every non-empty array expanded.
var prettyOptions = &pretty.Options{Indent: "  "}

// Document is a configuration file held as raw JSON.
type Document struct {
	// Path is the file the document was read from and will be written to.
	Path string

	data     []byte
	fromDisk bool
}

// NewDocument wraps a JSON object. Empty data starts an empty object.
func NewDocument(path string, data []byte) *Document {
	if len(data) == 0 {
		data = []byte("{}")
	}
	return &Document{Path: path, data: data}
}

// Existing reports whether the document was loaded from an existing file.
func (d *Document) Existing() bool {
	return d.fromDisk
}

// Get returns the current value of a top-level key.
func (d *Document) Get(key string) gjson.Result {
	return gjson.GetBytes(d.data, gjson.Escape(key))
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	var keys []string
	gjson.ParseBytes(d.data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Merge overwrites name, version and exports with the fragment's values.
// Existing keys keep their position, missing ones are appended.
func (d *Document) Merge(f *Fragment) error {
	if f == nil {
		return fmt.Errorf("nothing to merge into %s", d.Path)
	}

	exportMap := f.Exports
	if exportMap == nil {
		exportMap = exports.NewMap()
	}
	rawExports, err := exportMap.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode exports: %w", err)
	}

	data := d.data
	if data, err = sjson.SetBytes(data, KeyName, f.Name); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", KeyName, d.Path, err)
	}
	if data, err = sjson.SetBytes(data, KeyVersion, f.Version); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", KeyVersion, d.Path, err)
	}
	if data, err = sjson.SetRawBytes(data, KeyExports, rawExports); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", KeyExports, d.Path, err)
	}

	d.data = data
	return nil
}

// Bytes returns the document as indented JSON. Like JSON.stringify there is
// no trailing newline.
func (d *Document) Bytes() []byte {
	return bytes.TrimSuffix(pretty.PrettyOptions(d.data, prettyOptions), []byte("\n"))
}
