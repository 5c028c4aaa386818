package taginput

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Registry config file format:
//
//	tags:
//	  - email                  # bare name, parser default mode
//	  - name: title
//	    mode: array
//	  - name: label
//	    mode: join
//	    separator: " | "

type registryFile struct {
	Tags []descriptorNode `yaml:"tags"`
}

// descriptorNode accepts either a scalar (bare tag name) or a mapping
// (full descriptor).
type descriptorNode struct {
	desc Descriptor
}

func (n *descriptorNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		n.desc = Descriptor{Name: node.Value}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Name      string `yaml:"name"`
			Mode      string `yaml:"mode"`
			Separator string `yaml:"separator"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		mode, err := ParseMode(raw.Mode)
		if err != nil {
			return NewConfigError(raw.Name, "mode", fmt.Sprintf("unrecognized mode %q", raw.Mode))
		}
		n.desc = Descriptor{Name: raw.Name, Mode: mode, Separator: raw.Separator}
		return nil
	}
	return fmt.Errorf("tag entry must be a name or a mapping, got %v node at line %d", node.Kind, node.Line)
}

// ParseRegistryYAML builds a registry from YAML config bytes. Invalid
// descriptors are rejected here, before any parsing can happen.
func ParseRegistryYAML(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, n := range file.Tags {
		if err := reg.Register(n.desc); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadRegistry reads a YAML registry config from path.
func LoadRegistry(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegistryYAML(b)
}
