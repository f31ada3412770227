package jsondoc

import (
	"encoding/json"
	"slices"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

// Parse decodes JSON text into a tree, keeping object keys in source order.
// Duplicate keys keep their first position and their last value. Any
// syntax error fails with ErrParse.
func Parse(data []byte, cfgs ...*Config) (*Node, error) {
	cfg, err := resolveConfig(cfgs...)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.MaxJSONSize {
		return nil, newSizeLimitError("parse", "", int64(len(data)), cfg.MaxJSONSize)
	}

	if cfg.AllowComments {
		// Standardize rewrites its argument in place.
		data, err = hujson.Standardize(slices.Clone(data))
		if err != nil {
			return nil, newOperationError("parse", err.Error(), ErrParse)
		}
	}
	if !gjson.ValidBytes(data) {
		return nil, newOperationError("parse", "input is not valid JSON", ErrParse)
	}
	return fromResult(gjson.ParseBytes(data), 0)
}

// ParseString is Parse for string input.
func ParseString(text string, cfgs ...*Config) (*Node, error) {
	return Parse([]byte(text), cfgs...)
}

func fromResult(r gjson.Result, depth int) (*Node, error) {
	if depth > MaxNestingDepth {
		return nil, newDepthLimitError("parse", MaxNestingDepth)
	}

	switch r.Type {
	case gjson.Null:
		return NewNull(), nil
	case gjson.True:
		return NewScalar(true), nil
	case gjson.False:
		return NewScalar(false), nil
	case gjson.Number:
		return NewScalar(json.Number(r.Raw)), nil
	case gjson.String:
		return NewScalar(r.Str), nil
	}

	var (
		out *Node
		err error
	)
	if r.IsArray() {
		out = NewList()
		r.ForEach(func(_, value gjson.Result) bool {
			var item *Node
			item, err = fromResult(value, depth+1)
			if err != nil {
				return false
			}
			out.items = append(out.items, item)
			return true
		})
	} else {
		out = NewMap()
		r.ForEach(func(key, value gjson.Result) bool {
			var field *Node
			field, err = fromResult(value, depth+1)
			if err != nil {
				return false
			}
			out.setField(key.Str, field)
			return true
		})
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
