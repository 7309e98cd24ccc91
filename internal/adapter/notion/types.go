package notion

import "encoding/json"

// The Notion API returns deeply dynamic JSON; only the fields this client
// reads are modeled.

type richText struct {
	PlainText string `json:"plain_text"`
}

type selectOption struct {
	Name string `json:"name"`
}

type property struct {
	Title       []richText     `json:"title"`
	MultiSelect []selectOption `json:"multi_select"`
}

type page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

// title returns the page's Name property, defaulting to "Untitled".
func (p page) title() string {
	if prop, ok := p.Properties["Name"]; ok && len(prop.Title) > 0 {
		if t := prop.Title[0].PlainText; t != "" {
			return t
		}
	}
	return "Untitled"
}

// tags returns the page's Tags multi-select names, defaulting to empty.
func (p page) tags() []string {
	tags := []string{}
	if prop, ok := p.Properties["Tags"]; ok {
		for _, opt := range prop.MultiSelect {
			tags = append(tags, opt.Name)
		}
	}
	return tags
}

// block is one child block. The payload carrying rich_text lives under a key
// named after the block type, so the raw fields are kept for a second
// decoding pass.
type block struct {
	Type string `json:"type"`

	raw map[string]json.RawMessage
}

func (b *block) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	b.Type = head.Type
	return json.Unmarshal(data, &b.raw)
}

// plainText joins the block's rich_text fragments.
func (b *block) plainText() string {
	payload, ok := b.raw[b.Type]
	if !ok {
		return ""
	}
	var body struct {
		RichText []richText `json:"rich_text"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	text := ""
	for _, rt := range body.RichText {
		text += rt.PlainText
	}
	return text
}
