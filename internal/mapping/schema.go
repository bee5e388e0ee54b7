package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"smpe-admin/internal/common"
	"smpe-admin/internal/enrich"
)

// File represents the root of a declaration file.
type File struct {
	// Version of the declaration schema.
	Version string `yaml:"version,omitempty"`

	// Queries lists the enriched query methods.
	Queries []Query `yaml:"queries"`
}

// Query attaches descriptors to one query method.
type Query struct {
	// Method is the query method name, e.g. "JobMapper.findByUserId".
	Method string `yaml:"method"`

	// Entity optionally names the result entity type ("Job"). When set,
	// columns and properties are checked against its accessors.
	Entity string `yaml:"entity,omitempty"`

	// Enrich is one descriptor or a list of them, applied in order.
	Enrich DescriptorList `yaml:"enrich"`
}

// DescriptorList unmarshals from a single descriptor mapping or a sequence.
type DescriptorList []enrich.Descriptor

// UnmarshalYAML implements custom YAML unmarshaling for DescriptorList.
func (l *DescriptorList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var d enrich.Descriptor
		if err := node.Decode(&d); err != nil {
			return err
		}

		*l = DescriptorList{d}

		return nil

	case yaml.SequenceNode:
		var ds []enrich.Descriptor
		if err := node.Decode(&ds); err != nil {
			return err
		}

		*l = ds

		return nil

	default:
		return fmt.Errorf("line %d: expected descriptor or list of descriptors", node.Line)
	}
}

// MarshalYAML writes a single descriptor without the surrounding list.
func (l DescriptorList) MarshalYAML() (any, error) {
	if common.IsSingle(l) {
		d, _ := common.First(l)
		return d, nil
	}

	return []enrich.Descriptor(l), nil
}

// Declarations converts the file into per-method declarations. When a method
// is listed twice the later entry wins; Validate reports the duplicate.
func (f *File) Declarations() enrich.Declarations {
	out := make(enrich.Declarations, len(f.Queries))
	for _, q := range f.Queries {
		out[q.Method] = enrich.Declaration(q.Enrich)
	}

	return out
}
