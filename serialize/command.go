// Package serialize converts drawing operations to and from a dictionary
// form (spec.md §6), the boundary format used to replay a session to disk,
// across a network link, or from a test fixture.
//
// The dictionary form is map[string]any rather than a generated wire
// struct: the value set is small, flat, and the spec's own table of
// required/optional fields is the schema, so a hand-rolled codec stays
// closer to the contract than reaching for a third-party struct-tag
// marshaler would.
package serialize

import (
	"fmt"

	"github.com/ttk-go/ttk/grid"
	"github.com/ttk-go/ttk/ttkerr"
)

// Type identifies a drawing command's shape.
type Type string

const (
	DrawText           Type = "draw_text"
	DrawHLine          Type = "draw_hline"
	DrawVLine          Type = "draw_vline"
	DrawRect           Type = "draw_rect"
	Clear              Type = "clear"
	ClearRegion        Type = "clear_region"
	Refresh            Type = "refresh"
	RefreshRegion      Type = "refresh_region"
	InitColorPair      Type = "init_color_pair"
	SetCursorVisibility Type = "set_cursor_visibility"
	MoveCursor         Type = "move_cursor"
)

// Command is the in-memory form of one drawing operation. Only the fields
// relevant to Type are meaningful; the rest hold their zero value.
type Command struct {
	Type Type

	Row, Col      int
	Height, Width int
	Text          string
	Char          string
	Length        int
	ColorPair     uint16
	Attributes    grid.Attr
	Filled        bool

	PairID         int
	FgColor, BgColor [3]int

	Visible bool
}

// Serialize renders cmd as a dictionary, including optional fields even
// when they hold their default value, so parse(serialize(cmd)) recovers cmd
// exactly. A dictionary that omits an optional field is canonicalized by
// Parse, which fills in the default.
func Serialize(cmd Command) map[string]any {
	d := map[string]any{"command_type": string(cmd.Type)}
	switch cmd.Type {
	case DrawText:
		d["row"] = cmd.Row
		d["col"] = cmd.Col
		d["text"] = cmd.Text
		d["color_pair"] = int(cmd.ColorPair)
		d["attributes"] = int(cmd.Attributes)
	case DrawHLine, DrawVLine:
		d["row"] = cmd.Row
		d["col"] = cmd.Col
		d["char"] = cmd.Char
		d["length"] = cmd.Length
		d["color_pair"] = int(cmd.ColorPair)
	case DrawRect:
		d["row"] = cmd.Row
		d["col"] = cmd.Col
		d["height"] = cmd.Height
		d["width"] = cmd.Width
		d["color_pair"] = int(cmd.ColorPair)
		d["filled"] = cmd.Filled
	case Clear:
		// no fields
	case ClearRegion, RefreshRegion:
		d["row"] = cmd.Row
		d["col"] = cmd.Col
		d["height"] = cmd.Height
		d["width"] = cmd.Width
	case Refresh:
		// no fields
	case InitColorPair:
		d["pair_id"] = cmd.PairID
		d["fg_color"] = []any{cmd.FgColor[0], cmd.FgColor[1], cmd.FgColor[2]}
		d["bg_color"] = []any{cmd.BgColor[0], cmd.BgColor[1], cmd.BgColor[2]}
	case SetCursorVisibility:
		d["visible"] = cmd.Visible
	case MoveCursor:
		d["row"] = cmd.Row
		d["col"] = cmd.Col
	}
	return d
}

// Parse reconstructs a Command from its dictionary form, validating that
// every required field (per spec.md §6's table) is present and of the
// right shape. Missing optional fields resolve to their documented default.
func Parse(d map[string]any) (Command, error) {
	rawType, ok := d["command_type"]
	if !ok {
		return Command{}, fmt.Errorf("missing command_type: %w", ttkerr.InvalidArgument)
	}
	typeStr, ok := rawType.(string)
	if !ok {
		return Command{}, fmt.Errorf("command_type must be a string: %w", ttkerr.InvalidArgument)
	}
	cmd := Command{Type: Type(typeStr)}

	switch cmd.Type {
	case DrawText:
		var err error
		if cmd.Row, err = reqInt(d, "row"); err != nil {
			return Command{}, err
		}
		if cmd.Col, err = reqInt(d, "col"); err != nil {
			return Command{}, err
		}
		if cmd.Text, err = reqString(d, "text"); err != nil {
			return Command{}, err
		}
		cmd.ColorPair = uint16(optInt(d, "color_pair", 0))
		cmd.Attributes = grid.Attr(optInt(d, "attributes", 0))
	case DrawHLine, DrawVLine:
		var err error
		if cmd.Row, err = reqInt(d, "row"); err != nil {
			return Command{}, err
		}
		if cmd.Col, err = reqInt(d, "col"); err != nil {
			return Command{}, err
		}
		if cmd.Char, err = reqString(d, "char"); err != nil {
			return Command{}, err
		}
		if cmd.Length, err = reqInt(d, "length"); err != nil {
			return Command{}, err
		}
		cmd.ColorPair = uint16(optInt(d, "color_pair", 0))
	case DrawRect:
		var err error
		if cmd.Row, err = reqInt(d, "row"); err != nil {
			return Command{}, err
		}
		if cmd.Col, err = reqInt(d, "col"); err != nil {
			return Command{}, err
		}
		if cmd.Height, err = reqInt(d, "height"); err != nil {
			return Command{}, err
		}
		if cmd.Width, err = reqInt(d, "width"); err != nil {
			return Command{}, err
		}
		cmd.ColorPair = uint16(optInt(d, "color_pair", 0))
		cmd.Filled = optBool(d, "filled", false)
	case Clear, Refresh:
		// no fields
	case ClearRegion, RefreshRegion:
		var err error
		if cmd.Row, err = reqInt(d, "row"); err != nil {
			return Command{}, err
		}
		if cmd.Col, err = reqInt(d, "col"); err != nil {
			return Command{}, err
		}
		if cmd.Height, err = reqInt(d, "height"); err != nil {
			return Command{}, err
		}
		if cmd.Width, err = reqInt(d, "width"); err != nil {
			return Command{}, err
		}
	case InitColorPair:
		var err error
		if cmd.PairID, err = reqInt(d, "pair_id"); err != nil {
			return Command{}, err
		}
		if cmd.FgColor, err = reqRGB(d, "fg_color"); err != nil {
			return Command{}, err
		}
		if cmd.BgColor, err = reqRGB(d, "bg_color"); err != nil {
			return Command{}, err
		}
	case SetCursorVisibility:
		var err error
		if cmd.Visible, err = reqBool(d, "visible"); err != nil {
			return Command{}, err
		}
	case MoveCursor:
		var err error
		if cmd.Row, err = reqInt(d, "row"); err != nil {
			return Command{}, err
		}
		if cmd.Col, err = reqInt(d, "col"); err != nil {
			return Command{}, err
		}
	default:
		return Command{}, fmt.Errorf("unrecognized command_type %q: %w", typeStr, ttkerr.InvalidArgument)
	}
	return cmd, nil
}

func reqInt(d map[string]any, key string) (int, error) {
	v, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q: %w", key, ttkerr.InvalidArgument)
	}
	return toInt(v)
}

func optInt(d map[string]any, key string, def int) int {
	v, ok := d[key]
	if !ok {
		return def
	}
	n, err := toInt(v)
	if err != nil {
		return def
	}
	return n
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("field has non-numeric value %v: %w", v, ttkerr.InvalidArgument)
	}
}

func reqString(d map[string]any, key string) (string, error) {
	v, ok := d[key]
	if !ok {
		return "", fmt.Errorf("missing field %q: %w", key, ttkerr.InvalidArgument)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string: %w", key, ttkerr.InvalidArgument)
	}
	return s, nil
}

func reqBool(d map[string]any, key string) (bool, error) {
	v, ok := d[key]
	if !ok {
		return false, fmt.Errorf("missing field %q: %w", key, ttkerr.InvalidArgument)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q must be a bool: %w", key, ttkerr.InvalidArgument)
	}
	return b, nil
}

func optBool(d map[string]any, key string, def bool) bool {
	v, ok := d[key]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func reqRGB(d map[string]any, key string) ([3]int, error) {
	v, ok := d[key]
	if !ok {
		return [3]int{}, fmt.Errorf("missing field %q: %w", key, ttkerr.InvalidArgument)
	}
	items, ok := v.([]any)
	if !ok || len(items) != 3 {
		return [3]int{}, fmt.Errorf("field %q must be a 3-element array: %w", key, ttkerr.InvalidArgument)
	}
	var out [3]int
	for i, item := range items {
		n, err := toInt(item)
		if err != nil {
			return [3]int{}, fmt.Errorf("field %q[%d]: %w", key, i, err)
		}
		out[i] = n
	}
	return out, nil
}
