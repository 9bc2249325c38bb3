package styles

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a stylesheet from YAML. Mapping keys are selectors,
// scalar values are declarations, and nested mappings are nested rules.
// Key order is preserved. A flow sequence key groups selectors:
//
//	p.message:
//	  color: black
//	  a:
//	    color: red
//	? [h1, h2]
//	:
//	  margin: 0
func LoadYAML(r io.Reader) (Styles, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrInvalidSheet, root.Line)
	}

	decls, nested, err := loadBody(root)
	if err != nil {
		return nil, err
	}
	if len(decls) > 0 {
		return nil, fmt.Errorf("%w: line %d: declaration %q outside of a rule", ErrInvalidSheet, root.Line, decls[0].Property)
	}
	return nested, nil
}

func loadBody(node *yaml.Node) (Decls, Styles, error) {
	var decls Decls
	var nested Styles

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		selectors, err := loadSelectors(key)
		if err != nil {
			return nil, nil, err
		}

		switch value.Kind {
		case yaml.ScalarNode:
			if len(selectors) != 1 {
				return nil, nil, fmt.Errorf("%w: line %d: grouped key needs a mapping value", ErrInvalidSheet, key.Line)
			}
			decls = append(decls, Decl{Property: selectors[0], Value: value.Value})
		case yaml.MappingNode:
			d, n, err := loadBody(value)
			if err != nil {
				return nil, nil, err
			}
			nested = append(nested, Rule{Selector: selectors[0], Group: selectors[1:], Decls: d, Nested: n})
		default:
			return nil, nil, fmt.Errorf("%w: line %d: unsupported value for %q", ErrInvalidSheet, value.Line, selectors[0])
		}
	}
	return decls, nested, nil
}

func loadSelectors(key *yaml.Node) ([]string, error) {
	switch key.Kind {
	case yaml.ScalarNode:
		return []string{key.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(key.Content))
		for _, item := range key.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: selector must be a string", ErrInvalidSheet, item.Line)
			}
			out = append(out, item.Value)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%w: line %d: empty selector group", ErrInvalidSheet, key.Line)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: line %d: unsupported selector", ErrInvalidSheet, key.Line)
}
