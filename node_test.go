package jsondoc

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKinds(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		kind Kind
		null bool
	}{
		{"zero value", &Node{}, KindScalar, true},
		{"null", NewNull(), KindScalar, true},
		{"string", NewScalar("s"), KindScalar, false},
		{"list", NewList(), KindList, false},
		{"map", NewMap(), KindMap, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.node.Kind())
			assert.Equal(t, tt.null, tt.node.IsNull())
			assert.Equal(t, tt.kind == KindScalar, tt.node.IsScalar())
			assert.Equal(t, tt.kind == KindList, tt.node.IsList())
			assert.Equal(t, tt.kind == KindMap, tt.node.IsMap())
		})
	}

	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestNodeScalarAccessors(t *testing.T) {
	s, ok := NewScalar("text").Str()
	assert.True(t, ok)
	assert.Equal(t, "text", s)

	f, ok := NewScalar(json.Number("1.5")).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := NewScalar(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = NewMap().Str()
	assert.False(t, ok)
	assert.Nil(t, NewList(NewScalar(1)).Value())
}

func TestNodeMapOrder(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.SetField("b", NewScalar(1)))
	require.NoError(t, m.SetField("a", NewScalar(2)))
	require.NoError(t, m.SetField("c", nil))
	require.NoError(t, m.SetField("b", NewScalar(3)))

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	assertJSON(t, `{"b":3,"a":2,"c":null}`, m)

	assert.True(t, m.DeleteField("a"))
	assert.False(t, m.DeleteField("a"))
	assert.Equal(t, []string{"b", "c"}, m.Keys())

	_, ok := m.Field("a")
	assert.False(t, ok)
	v, ok := m.Field("c")
	assert.True(t, ok)
	assert.True(t, v.IsNull())

	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"b", "c"}, m.Keys(), "Keys returns a copy")
}

func TestNodeListOperations(t *testing.T) {
	l := NewList(NewScalar("a"), nil)
	require.NoError(t, l.Append(NewScalar("c")))
	require.NoError(t, l.SetIndex(1, NewScalar("b")))
	require.NoError(t, l.SetIndex(3, NewScalar("d")))
	assertJSON(t, `["a","b","c","d"]`, l)

	require.ErrorIs(t, l.SetIndex(9, NewScalar("x")), ErrIndexOutOfRange)
	require.ErrorIs(t, l.SetIndex(-1, NewScalar("x")), ErrIndexOutOfRange)

	assert.True(t, l.DeleteIndex(0))
	assert.False(t, l.DeleteIndex(3))
	assertJSON(t, `["b","c","d"]`, l)

	item, ok := l.Index(2)
	require.True(t, ok)
	assertJSON(t, `"d"`, item)
	_, ok = l.Index(3)
	assert.False(t, ok)
	assert.Len(t, l.Items(), 3)
}

func TestNodeWrongKind(t *testing.T) {
	scalar := NewScalar(1)
	require.ErrorIs(t, scalar.SetField("a", nil), ErrTypeMismatch)
	require.ErrorIs(t, scalar.Append(nil), ErrTypeMismatch)
	require.ErrorIs(t, scalar.SetIndex(0, nil), ErrTypeMismatch)
	require.ErrorIs(t, NewList().SetField("a", nil), ErrTypeMismatch)
	require.ErrorIs(t, NewMap().Append(nil), ErrTypeMismatch)

	assert.False(t, scalar.DeleteField("a"))
	assert.False(t, scalar.DeleteIndex(0))
	assert.Nil(t, scalar.Keys())
	assert.Nil(t, scalar.Items())
	assert.Equal(t, 0, scalar.Len())
}

func TestNodeClone(t *testing.T) {
	original := mustParse(t, `{"a": {"b": [1, 2]}, "c": "d"}`)
	clone := original.Clone()
	require.True(t, original.Equal(clone))

	require.NoError(t, Set(clone, "a.b.2", NewScalar(3)))
	require.NoError(t, Set(clone, "c", NewScalar("changed")))

	assertJSON(t, `{"a":{"b":[1,2]},"c":"d"}`, original)
	assertJSON(t, `{"a":{"b":[1,2,3]},"c":"changed"}`, clone)
	assert.Nil(t, (*Node)(nil).Clone())
}

func TestNodeEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Node
		equal bool
	}{
		{"numbers across types", NewScalar(json.Number("1.0")), NewScalar(1), true},
		{"different numbers", NewScalar(1), NewScalar(2.5), false},
		{"number and string", NewScalar(1), NewScalar("1"), false},
		{"nulls", NewNull(), &Node{}, true},
		{"key order matters", mustParse(t, `{"a":1,"b":2}`), mustParse(t, `{"b":2,"a":1}`), false},
		{"nested", mustParse(t, `{"a":[1,{"b":null}]}`), mustParse(t, `{"a":[1,{"b":null}]}`), true},
		{"kinds differ", NewList(), NewMap(), false},
		{"nil and node", nil, NewNull(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestValueOf(t *testing.T) {
	t.Run("native values", func(t *testing.T) {
		n, err := ValueOf(map[string]any{
			"z":    1,
			"list": []any{"x", true, nil},
			"m":    map[string]any{"k": 2.5},
		})
		require.NoError(t, err)
		assertJSON(t, `{"list":["x",true,null],"m":{"k":2.5},"z":1}`, n)
	})

	t.Run("structs go through JSON", func(t *testing.T) {
		type server struct {
			Host string `json:"host"`
			Port int    `json:"port"`
		}
		n, err := ValueOf(server{Host: "localhost", Port: 8080})
		require.NoError(t, err)
		assertJSON(t, `{"host":"localhost","port":8080}`, n)
	})

	t.Run("nodes are copied", func(t *testing.T) {
		src := NewMap()
		n, err := ValueOf(src)
		require.NoError(t, err)
		assert.NotSame(t, src, n)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := ValueOf(make(chan int))
		require.ErrorIs(t, err, ErrTypeMismatch)
		assert.Panics(t, func() { MustValueOf(func() {}) })
	})
}

func TestNodeInterface(t *testing.T) {
	n := mustParse(t, `{"a": [1, "b", null, false], "c": {"d": "e"}}`)
	want := map[string]any{
		"a": []any{json.Number("1"), "b", nil, false},
		"c": map[string]any{"d": "e"},
	}
	if diff := cmp.Diff(want, n.Interface()); diff != "" {
		t.Errorf("Interface() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, (*Node)(nil).Interface())
}
