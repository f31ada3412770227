package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/cybergodev/jsondoc/internal"
)

var streamConfig = jsoniter.Config{EscapeHTML: false}.Froze()

// Encode serialises a tree to JSON text formatted according to opts.
func Encode(n *Node, opts Options) ([]byte, error) {
	stream := streamConfig.BorrowStream(nil)
	defer streamConfig.ReturnStream(stream)

	enc := &encoder{stream: stream, flags: escapeFlags(opts), sortKeys: opts&SortKeys != 0}
	if err := enc.encode(orNull(n), 0); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, newOperationError("encode", stream.Error.Error(), ErrEncode)
	}

	out := slices.Clone(stream.Buffer())
	if opts&PrettyPrint != 0 {
		out = pretty.PrettyOptions(out, &pretty.Options{
			Width:  DefaultPrettyWidth,
			Indent: DefaultIndent,
		})
		out = bytes.TrimRight(out, "\n")
	}
	return out, nil
}

// EncodeString is Encode returning a string.
func EncodeString(n *Node, opts Options) (string, error) {
	out, err := Encode(n, opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func escapeFlags(opts Options) internal.EscapeFlags {
	var flags internal.EscapeFlags
	if opts&EscapeSlash != 0 {
		flags |= internal.EscapeSlash
	}
	if opts&EscapeUnicode != 0 {
		flags |= internal.EscapeUnicode
	}
	if opts&EscapeHTML != 0 {
		flags |= internal.EscapeHTML
	}
	return flags
}

type encoder struct {
	stream   *jsoniter.Stream
	flags    internal.EscapeFlags
	sortKeys bool
	scratch  []byte
}

func (e *encoder) encode(n *Node, depth int) error {
	if depth > MaxNestingDepth {
		return newDepthLimitError("encode", MaxNestingDepth)
	}
	switch n.kind {
	case KindList:
		e.stream.WriteArrayStart()
		for i, item := range n.items {
			if i > 0 {
				e.stream.WriteMore()
			}
			if err := e.encode(item, depth+1); err != nil {
				return err
			}
		}
		e.stream.WriteArrayEnd()
		return nil
	case KindMap:
		keys := n.keys
		if e.sortKeys {
			keys = slices.Clone(keys)
			sort.Strings(keys)
		}
		e.stream.WriteObjectStart()
		for i, key := range keys {
			if i > 0 {
				e.stream.WriteMore()
			}
			e.writeString(key)
			e.stream.WriteRaw(":")
			if err := e.encode(n.fields[key], depth+1); err != nil {
				return err
			}
		}
		e.stream.WriteObjectEnd()
		return nil
	}
	return e.encodeScalar(n.scalar)
}

func (e *encoder) writeString(s string) {
	e.scratch = internal.AppendQuoted(e.scratch[:0], s, e.flags)
	e.stream.WriteRaw(string(e.scratch))
}

func (e *encoder) encodeScalar(v any) error {
	switch x := v.(type) {
	case nil:
		e.stream.WriteNil()
	case bool:
		e.stream.WriteBool(x)
	case string:
		e.writeString(x)
	case json.Number:
		if !isJSONNumber(string(x)) {
			return newOperationError("encode", fmt.Sprintf("invalid number literal %q", string(x)), ErrEncode)
		}
		e.stream.WriteRaw(string(x))
	case int:
		e.stream.WriteInt(x)
	case int8:
		e.stream.WriteInt8(x)
	case int16:
		e.stream.WriteInt16(x)
	case int32:
		e.stream.WriteInt32(x)
	case int64:
		e.stream.WriteInt64(x)
	case uint:
		e.stream.WriteUint(x)
	case uint8:
		e.stream.WriteUint8(x)
	case uint16:
		e.stream.WriteUint16(x)
	case uint32:
		e.stream.WriteUint32(x)
	case uint64:
		e.stream.WriteUint64(x)
	case float32:
		return e.encodeFloat(float64(x))
	case float64:
		return e.encodeFloat(x)
	default:
		return newOperationError("encode", fmt.Sprintf("unsupported scalar type %T", v), ErrEncode)
	}
	return nil
}

func (e *encoder) encodeFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return newOperationError("encode", fmt.Sprintf("unsupported float value %v", f), ErrEncode)
	}
	e.stream.WriteFloat64(f)
	return nil
}

func isJSONNumber(s string) bool {
	return gjson.Valid(s) && gjson.Parse(s).Type == gjson.Number
}
