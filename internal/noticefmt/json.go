// Package noticefmt renders notice registries into formats other than the
// grid markup: JSON, msgpack and a terminal listing.
package noticefmt

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"

	"gridmsg/internal/notice"
)

// NoticeJSON is the wire form of one notice.
type NoticeJSON struct {
	Index    *uint32 `json:"index,omitempty" msgpack:"index,omitempty"`
	Text     string  `json:"text" msgpack:"text"`
	Critical bool    `json:"critical" msgpack:"critical"`
	Style    string  `json:"style" msgpack:"style"`
	Location string  `json:"location,omitempty" msgpack:"location,omitempty"`
}

// Output is the wire form of a registry.
type Output struct {
	Count         int          `json:"count" msgpack:"count"`
	CriticalCount int          `json:"critical_count" msgpack:"critical_count"`
	Notices       []NoticeJSON `json:"notices" msgpack:"notices"`
}

// Build converts a registry into its wire form. max > 0 limits the number
// of listed notices; the counts always describe the whole registry.
func Build(reg *notice.Registry, includePositions bool, max int) (Output, error) {
	items := reg.Items()
	out := Output{
		Count:         len(items),
		CriticalCount: reg.CriticalCount(),
		Notices:       make([]NoticeJSON, 0, len(items)),
	}
	for i, n := range items {
		if max > 0 && i >= max {
			break
		}
		nj := NoticeJSON{
			Text:     n.Text(),
			Critical: n.Critical(),
			Style:    n.Style().String(),
			Location: n.Location(),
		}
		if includePositions {
			idx, err := safecast.Conv[uint32](i)
			if err != nil {
				return Output{}, fmt.Errorf("notice index %d: %w", i, err)
			}
			nj.Index = &idx
		}
		out.Notices = append(out.Notices, nj)
	}
	return out, nil
}

// JSON writes the registry as a JSON document.
func JSON(w io.Writer, reg *notice.Registry, opts JSONOpts) error {
	out, err := Build(reg, opts.IncludePositions, opts.Max)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
