package nav

import (
	"encoding/json"
)

// The Marshal methods emit manifest shape, so encoded trees load back
// into equal trees.

type categoryWire struct {
	Type        string `json:"type" yaml:"type"`
	Label       string `json:"label" yaml:"label"`
	Collapsible *bool  `json:"collapsible,omitempty" yaml:"collapsible,omitempty"`
	Collapsed   *bool  `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items       []Node `json:"items" yaml:"items"`
}

type linkWire struct {
	Type  string `json:"type" yaml:"type"`
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

func (d *DocRef) MarshalJSON() ([]byte, error) { return json.Marshal(d.ID) }
func (d *DocRef) MarshalYAML() (any, error)    { return d.ID, nil }

func (c *Category) wire() categoryWire {
	items := c.Items
	if items == nil {
		items = []Node{}
	}
	return categoryWire{
		Type:        typeCategory,
		Label:       c.Label,
		Collapsible: c.Collapsible,
		Collapsed:   c.Collapsed,
		Items:       items,
	}
}

func (c *Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }
func (c *Category) MarshalYAML() (any, error)    { return c.wire(), nil }

func (l *Link) wire() linkWire {
	return linkWire{Type: typeLink, Label: l.Label, Href: l.Href}
}

func (l *Link) MarshalJSON() ([]byte, error) { return json.Marshal(l.wire()) }
func (l *Link) MarshalYAML() (any, error)    { return l.wire(), nil }
