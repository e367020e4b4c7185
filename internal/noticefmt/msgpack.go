package noticefmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"gridmsg/internal/notice"
)

// MsgPack writes the registry as a msgpack-encoded Output, with positions.
func MsgPack(w io.Writer, reg *notice.Registry) error {
	out, err := Build(reg, true, 0)
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("msgpack encode: %w", err)
	}
	return nil
}

// DecodeMsgPack reads an Output written by MsgPack and replays it into reg,
// preserving order.
func DecodeMsgPack(r io.Reader, reg *notice.Registry) error {
	var out Output
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return fmt.Errorf("msgpack decode: %w", err)
	}
	for i, nj := range out.Notices {
		style, err := notice.ParseStyle(nj.Style)
		if err != nil {
			return fmt.Errorf("notice %d: %w", i, err)
		}
		reg.Add(notice.AddOpts{
			Text:     nj.Text,
			Critical: nj.Critical,
			Style:    &style,
			Location: nj.Location,
		})
	}
	return nil
}
