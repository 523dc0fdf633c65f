package models

import "encoding/json"

// Amenity decodes the heterogeneous amenity shapes the vendor emits:
// a bare string, an object with a name/label and an optional kind/category/type
// key, or a pre-grouped object carrying an items array.
type Amenity struct {
	Name        string
	CategoryKey string
	Items       []string
}

type amenityObject struct {
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Kind     string            `json:"kind"`
	Category string            `json:"category"`
	Type     string            `json:"type"`
	Items    []json.RawMessage `json:"items"`
}

func (a *Amenity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		return nil
	}

	var obj amenityObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	a.Name = firstNonEmpty(obj.Name, obj.Label)
	a.CategoryKey = firstNonEmpty(obj.Kind, obj.Category, obj.Type)

	// Pre-grouped form: items are strings or objects with a text field.
	// An items key with an empty array still marks the entry as a group, so
	// the category label never doubles as a flat amenity.
	if obj.Items != nil {
		a.Items = []string{}
	}
	for _, raw := range obj.Items {
		var item string
		if err := json.Unmarshal(raw, &item); err == nil {
			a.Items = append(a.Items, item)
			continue
		}
		var nested amenityObject
		if err := json.Unmarshal(raw, &nested); err != nil {
			continue
		}
		if text := firstNonEmpty(nested.Name, nested.Label); text != "" {
			a.Items = append(a.Items, text)
		}
	}
	return nil
}

// Grouped reports whether this entry is a pre-grouped category rather than a
// single amenity item.
func (a *Amenity) Grouped() bool {
	return a.Items != nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
