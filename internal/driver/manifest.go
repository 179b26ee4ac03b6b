package driver

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"uniformgen/internal/emit"
	"uniformgen/internal/layout"
)

// Current schema version - increment when the Manifest format changes.
const manifestSchemaVersion uint16 = 1

// ManifestFormat selects the manifest encoding.
type ManifestFormat uint8

const (
	ManifestJSON ManifestFormat = iota + 1
	ManifestMsgpack
)

// ParseManifestFormat converts a flag value to a ManifestFormat.
func ParseManifestFormat(s string) (ManifestFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return ManifestJSON, nil
	case "msgpack", "mp":
		return ManifestMsgpack, nil
	default:
		return 0, fmt.Errorf("unsupported manifest format %q (must be json or msgpack)", s)
	}
}

// Manifest describes computed layouts for tools that upload uniform data
// without parsing the generated header.
type Manifest struct {
	Schema  uint16           `msgpack:"schema" json:"schema"`
	Backend string           `msgpack:"backend" json:"backend"`
	Cursor  string           `msgpack:"cursor" json:"cursor"`
	Structs []ManifestStruct `msgpack:"structs" json:"structs"`
}

// ManifestStruct is one generated struct.
type ManifestStruct struct {
	Name      string          `msgpack:"name" json:"name"`
	File      string          `msgpack:"file" json:"file"`
	Line      int             `msgpack:"line" json:"line"`
	Signature string          `msgpack:"signature" json:"signature"`
	Size      int             `msgpack:"size" json:"size"`
	Fields    []ManifestField `msgpack:"fields" json:"fields"`
}

// ManifestField is one field with its placement.
type ManifestField struct {
	Name          string `msgpack:"name" json:"name"`
	Type          string `msgpack:"type" json:"type"`
	Decl          string `msgpack:"decl" json:"decl"`
	Offset        int    `msgpack:"offset" json:"offset"`
	Size          int    `msgpack:"size" json:"size"`
	SizeAligned   int    `msgpack:"size_aligned" json:"size_aligned"`
	Alignment     int    `msgpack:"alignment" json:"alignment"`
	PaddingBefore int    `msgpack:"padding_before,omitempty" json:"padding_before,omitempty"`
}

// BuildManifest converts layouts into a Manifest.
func BuildManifest(layouts []layout.Layout, opts Options) *Manifest {
	m := &Manifest{
		Schema:  manifestSchemaVersion,
		Backend: opts.Backend.String(),
		Cursor:  opts.Cursor.String(),
		Structs: make([]ManifestStruct, 0, len(layouts)),
	}
	for _, l := range layouts {
		st := ManifestStruct{
			Name:      l.Signature.Name,
			File:      l.Signature.File,
			Line:      l.Signature.Line,
			Signature: emit.SignatureLiteral(l.Signature),
			Size:      l.Size,
			Fields:    make([]ManifestField, 0, len(l.Entries)),
		}
		for _, e := range l.Entries {
			ty := e.Field.Type
			st.Fields = append(st.Fields, ManifestField{
				Name:          e.Field.Name,
				Type:          ty.String(),
				Decl:          ty.Declare(e.Field.Name),
				Offset:        e.Offset,
				Size:          ty.Size(),
				SizeAligned:   ty.SizeAligned(),
				Alignment:     ty.Alignment(),
				PaddingBefore: e.Padding,
			})
		}
		m.Structs = append(m.Structs, st)
	}
	return m
}

// EncodeManifest writes m in the given format.
func EncodeManifest(w io.Writer, m *Manifest, format ManifestFormat) error {
	switch format {
	case ManifestJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case ManifestMsgpack:
		return msgpack.NewEncoder(w).Encode(m)
	default:
		return fmt.Errorf("unknown manifest format %d", format)
	}
}

// DecodeManifest reads a manifest and rejects unknown schema versions.
func DecodeManifest(r io.Reader, format ManifestFormat) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case ManifestJSON:
		err = json.NewDecoder(r).Decode(&m)
	case ManifestMsgpack:
		err = msgpack.NewDecoder(r).Decode(&m)
	default:
		return nil, fmt.Errorf("unknown manifest format %d", format)
	}
	if err != nil {
		return nil, err
	}
	if m.Schema != manifestSchemaVersion {
		return nil, fmt.Errorf("manifest schema %d is not supported (want %d)", m.Schema, manifestSchemaVersion)
	}
	return &m, nil
}
