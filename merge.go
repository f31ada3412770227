package jsondoc

import "fmt"

// Combine deep-merges each source map into destination, in argument order,
// and returns destination.
//
// For every key of a source, in the source's key order:
//   - a list meeting a list already in destination is appended to it
//   - a map is merged recursively into destination's map at that key,
//     which is created (or replaces a non-map) first
//   - anything else overwrites destination, so the last source wins
//
// Values taken from sources are deep copies; sources are never modified.
// Nil sources are skipped.
func Combine(destination *Node, sources ...*Node) (*Node, error) {
	if destination == nil || destination.kind != KindMap {
		return nil, newOperationError("combine", "destination must be a map", ErrTypeMismatch)
	}
	for i, source := range sources {
		if source == nil {
			continue
		}
		if source.kind != KindMap {
			return nil, newOperationError("combine",
				fmt.Sprintf("source %d is a %s, not a map", i, source.kind), ErrTypeMismatch)
		}
		if err := combine(destination, source, 0); err != nil {
			return nil, err
		}
	}
	return destination, nil
}

func combine(dst, src *Node, depth int) error {
	if depth > MaxMergeDepth {
		return newDepthLimitError("combine", MaxMergeDepth)
	}
	for _, key := range src.keys {
		value := src.fields[key]
		existing, present := dst.fields[key]

		switch {
		case value.kind == KindList && present && existing.kind == KindList:
			merged := make([]*Node, 0, len(existing.items)+len(value.items))
			merged = append(merged, existing.items...)
			for _, item := range value.items {
				merged = append(merged, item.Clone())
			}
			existing.items = merged
		case value.kind == KindMap:
			if !present || existing.kind != KindMap {
				existing = NewMap()
				dst.setField(key, existing)
			}
			if err := combine(existing, value, depth+1); err != nil {
				return err
			}
		default:
			dst.setField(key, value.Clone())
		}
	}
	return nil
}

// Merge combines sources into a new map without modifying any of them.
func Merge(sources ...*Node) (*Node, error) {
	return Combine(NewMap(), sources...)
}
