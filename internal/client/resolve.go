package client

import "time"

type collectionPayload struct {
	Items    []rawItem `json:"items"`
	Includes struct {
		Entry []rawItem `json:"Entry"`
		Asset []rawItem `json:"Asset"`
	} `json:"includes"`
}

type rawItem struct {
	Sys    rawSys         `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type rawSys struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	LinkType    string    `json:"linkType"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ContentType *struct {
		Sys rawSys `json:"sys"`
	} `json:"contentType"`
}

func (s rawSys) contentTypeID() string {
	if s.ContentType == nil {
		return ""
	}
	return s.ContentType.Sys.ID
}

// resolver materializes raw items into Entry/Asset graphs. Entries are cached
// by id before their fields resolve, so circular references terminate.
type resolver struct {
	entries map[string]rawItem
	assets  map[string]rawItem
	cache   map[string]*Entry
}

func resolveCollection(payload *collectionPayload) []*Entry {
	r := &resolver{
		entries: make(map[string]rawItem, len(payload.Items)+len(payload.Includes.Entry)),
		assets:  make(map[string]rawItem, len(payload.Includes.Asset)),
		cache:   make(map[string]*Entry),
	}

	for _, item := range payload.Items {
		r.entries[item.Sys.ID] = item
	}
	for _, item := range payload.Includes.Entry {
		r.entries[item.Sys.ID] = item
	}
	for _, item := range payload.Includes.Asset {
		r.assets[item.Sys.ID] = item
	}

	resolved := make([]*Entry, 0, len(payload.Items))
	for _, item := range payload.Items {
		if entry := r.entry(item.Sys.ID); entry != nil {
			resolved = append(resolved, entry)
		}
	}
	return resolved
}

func (r *resolver) entry(id string) *Entry {
	if entry, ok := r.cache[id]; ok {
		return entry
	}
	raw, ok := r.entries[id]
	if !ok {
		return nil
	}

	entry := &Entry{
		ID:          raw.Sys.ID,
		ContentType: raw.Sys.contentTypeID(),
		UpdatedAt:   raw.Sys.UpdatedAt,
	}
	r.cache[id] = entry

	entry.Fields = make(map[string]any, len(raw.Fields))
	for key, value := range raw.Fields {
		if resolved, ok := r.value(value); ok {
			entry.Fields[key] = resolved
		}
	}
	return entry
}

func (r *resolver) asset(id string) *Asset {
	raw, ok := r.assets[id]
	if !ok {
		return nil
	}

	asset := &Asset{ID: raw.Sys.ID}
	asset.Title, _ = raw.Fields["title"].(string)

	file, _ := raw.Fields["file"].(map[string]any)
	if file == nil {
		return asset
	}
	asset.URL, _ = file["url"].(string)
	asset.ContentType, _ = file["contentType"].(string)

	if details, ok := file["details"].(map[string]any); ok {
		if image, ok := details["image"].(map[string]any); ok {
			if w, ok := image["width"].(float64); ok {
				asset.Width = int(w)
			}
			if h, ok := image["height"].(float64); ok {
				asset.Height = int(h)
			}
		}
	}
	return asset
}

// value resolves one field value. Links to entries or assets missing from
// the include payload report !ok and are dropped from the decoded fields,
// matching how the official SDKs surface unresolved references.
func (r *resolver) value(v any) (any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		if id, linkType, ok := linkTarget(typed); ok {
			switch linkType {
			case "Entry":
				if entry := r.entry(id); entry != nil {
					return entry, true
				}
			case "Asset":
				if asset := r.asset(id); asset != nil {
					return asset, true
				}
			}
			return nil, false
		}
		resolved := make(map[string]any, len(typed))
		for key, nested := range typed {
			if value, ok := r.value(nested); ok {
				resolved[key] = value
			}
		}
		return resolved, true
	case []any:
		resolved := make([]any, 0, len(typed))
		for _, item := range typed {
			if value, ok := r.value(item); ok {
				resolved = append(resolved, value)
			}
		}
		return resolved, true
	default:
		return v, true
	}
}

func linkTarget(m map[string]any) (id, linkType string, ok bool) {
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return "", "", false
	}
	if kind, _ := sys["type"].(string); kind != "Link" {
		return "", "", false
	}
	id, _ = sys["id"].(string)
	linkType, _ = sys["linkType"].(string)
	return id, linkType, id != ""
}
