// Package dataset: interchange codecs.
// A Dataset flattens to a plain document (DatasetDoc) that marshals with
// encoding/json and gopkg.in/yaml.v3 unchanged. FromDoc re-validates every
// variable on the way back in, so a hand-edited document cannot smuggle a
// broken coordinate past the construction invariants.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/izar/ndarray"
)

// VariableDoc is the serializable form of one labeled variable. Data is
// the flat row-major sample buffer.
type VariableDoc struct {
	Name   string           `json:"name" yaml:"name"`
	Shape  []int            `json:"shape" yaml:"shape"`
	Dims   []string         `json:"dims" yaml:"dims"`
	Coords map[string][]any `json:"coords" yaml:"coords"`
	Data   []float64        `json:"data" yaml:"data"`
}

// DatasetDoc is the serializable form of a Dataset. Variables keeps the
// insertion order that a Go map would lose.
type DatasetDoc struct {
	Variables []VariableDoc `json:"variables" yaml:"variables"`
	Attrs     Attrs         `json:"attrs" yaml:"attrs"`
}

// Doc flattens the Dataset into its serializable form. All slices are
// copied; mutating the document never touches the Dataset.
// Complexity: O(total elements + labels).
func (ds *Dataset) Doc() *DatasetDoc {
	doc := &DatasetDoc{
		Variables: make([]VariableDoc, 0, len(ds.order)),
		Attrs:     make(Attrs, len(ds.attrs)),
	}
	for key, value := range ds.attrs {
		doc.Attrs[key] = value
	}
	for _, name := range ds.order {
		da := ds.vars[name]
		data := make([]float64, da.Values.Len())
		copy(data, da.Values.Data())
		dims := make([]string, len(da.Dims))
		copy(dims, da.Dims)
		doc.Variables = append(doc.Variables, VariableDoc{
			Name:   name,
			Shape:  da.Values.Shape(),
			Dims:   dims,
			Coords: da.Coords.Clone(),
			Data:   data,
		})
	}

	return doc
}

// FromDoc rebuilds a Dataset from its serializable form, re-validating
// the labeling invariants per variable (ErrDimCount, ErrMissingCoord,
// ErrCoordLength, plus ndarray shape errors).
// Complexity: O(total elements + labels).
func FromDoc(doc *DatasetDoc) (*Dataset, error) {
	ds := &Dataset{
		order: make([]string, 0, len(doc.Variables)),
		vars:  make(map[string]*DataArray, len(doc.Variables)),
		attrs: make(Attrs, len(doc.Attrs)),
	}
	for key, value := range doc.Attrs {
		ds.attrs[key] = value
	}
	for _, vd := range doc.Variables {
		values, err := ndarray.FromSlice(vd.Data, vd.Shape...)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", vd.Name, err)
		}
		if len(vd.Dims) != values.Rank() {
			return nil, fmt.Errorf("variable %q: %d dims for rank %d: %w",
				vd.Name, len(vd.Dims), values.Rank(), ErrDimCount)
		}
		coords := make(Coords, len(vd.Dims))
		shape := values.Shape()
		for k, dim := range vd.Dims {
			labels, ok := vd.Coords[dim]
			if !ok {
				return nil, fmt.Errorf("variable %q, dim %s: %w", vd.Name, dim, ErrMissingCoord)
			}
			if len(labels) != shape[k] {
				return nil, fmt.Errorf("variable %q, dim %s: %d labels for axis length %d: %w",
					vd.Name, dim, len(labels), shape[k], ErrCoordLength)
			}
			cp := make([]any, len(labels))
			copy(cp, labels)
			coords[dim] = cp
		}
		dims := make([]string, len(vd.Dims))
		copy(dims, vd.Dims)
		if _, seen := ds.vars[vd.Name]; !seen {
			ds.order = append(ds.order, vd.Name)
		}
		ds.vars[vd.Name] = &DataArray{Name: vd.Name, Values: values, Dims: dims, Coords: coords}
	}

	return ds, nil
}

// EncodeJSON writes the Dataset as a JSON document. Note that JSON has a
// single number type: integer coordinate labels come back as float64 from
// DecodeJSON. Use YAML when label types must survive exactly.
func (ds *Dataset) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)

	return enc.Encode(ds.Doc())
}

// DecodeJSON reads a Dataset from a JSON document, re-validating the
// labeling invariants.
func DecodeJSON(r io.Reader) (*Dataset, error) {
	var doc DatasetDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decoding JSON: %w", err)
	}

	return FromDoc(&doc)
}

// EncodeYAML writes the Dataset as a YAML document.
func (ds *Dataset) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(ds.Doc())
}

// DecodeYAML reads a Dataset from a YAML document, re-validating the
// labeling invariants.
func DecodeYAML(r io.Reader) (*Dataset, error) {
	var doc DatasetDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decoding YAML: %w", err)
	}

	return FromDoc(&doc)
}
