package document

import (
	"encoding/json"
	"fmt"
)

const (
	typeComponentBlock = "component-block"
	typeInlineProp     = "component-inline-prop"
)

// MarshalJSON writes the component block in the document-field format.
func (c *ComponentBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string     `json:"type"`
		Component string     `json:"component"`
		Props     ImageProps `json:"props"`
		Children  []Node     `json:"children"`
	}{typeComponentBlock, c.Component, c.Props, c.Children})
}

// MarshalJSON writes the inline prop placeholder. Image blocks carry no
// editable child prop, so propPath is always null.
func (p *InlineProp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string        `json:"type"`
		PropPath []interface{} `json:"propPath"`
		Children []Node        `json:"children"`
	}{typeInlineProp, nil, p.Children})
}

// MarshalJSON writes a fragment as its children.
func (f *Fragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Children)
}

// Parse decodes a stored document value.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UnmarshalJSON reads a document written by MarshalJSON or by the CMS.
func (d *Document) UnmarshalJSON(data []byte) error {
	nodes, err := decodeNodes(data)
	if err != nil {
		return err
	}
	*d = nodes
	return nil
}

func decodeNodes(data []byte) ([]Node, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode nodes: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	nodes := make([]Node, 0, len(raw))
	for i, r := range raw {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(data []byte) (Node, error) {
	var head struct {
		Type      string          `json:"type"`
		Text      *string         `json:"text"`
		Component string          `json:"component"`
		Level     int             `json:"level"`
		Href      string          `json:"href"`
		Props     json.RawMessage `json:"props"`
		Children  json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	if head.Text != nil && head.Type == "" {
		var t Text
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return &t, nil
	}

	var children []Node
	if len(head.Children) > 0 {
		var err error
		if children, err = decodeNodes(head.Children); err != nil {
			return nil, err
		}
	}

	switch head.Type {
	case typeComponentBlock:
		c := &ComponentBlock{Component: head.Component, Children: children}
		if len(head.Props) > 0 {
			if err := json.Unmarshal(head.Props, &c.Props); err != nil {
				return nil, fmt.Errorf("component props: %w", err)
			}
		}
		return c, nil
	case typeInlineProp:
		return &InlineProp{Children: children}, nil
	case "":
		return nil, fmt.Errorf("node has neither type nor text")
	}

	if children == nil {
		children = []Node{}
	}
	return &Element{Type: BlockKind(head.Type), Level: head.Level, Href: head.Href, Children: children}, nil
}
