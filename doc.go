// Package jsondoc provides dot-path access, mutation and deep merging over
// JSON trees, plus a Document type that owns a tree and its output format.
//
// The package uses an internal package for implementation details:
//
//   - internal: list index parsing and string escaping for the encoder
//
// # Basic Usage
//
// Addressed operations on a parsed tree:
//
//	root, err := jsondoc.ParseString(`{"user":{"name":"John","tags":["a","b"]}}`)
//	name := jsondoc.Get(root, "user.name", nil)
//	tag := jsondoc.Get(root, "user.tags.1", nil)
//	err = jsondoc.Set(root, "user.address.city", jsondoc.NewScalar("Paris"))
//	removed := jsondoc.Remove(root, "user.tags.0")
//
// Missing intermediate maps are created by Set. Get, Exists and Remove
// never fail: absence yields the default value or false.
//
// Documents wrap a tree and keep serialisation options:
//
//	doc, err := jsondoc.FromFile("config.json")
//	doc.SetOption(jsondoc.PrettyPrint | jsondoc.EscapeSlash)
//	fmt.Println(doc)
//
// # Merging
//
// Combine merges maps recursively into a destination: lists present on both
// sides are appended, nested maps are merged, and other values are
// overwritten by the last source. Merge does the same into a fresh map.
//
//	merged, err := jsondoc.Merge(defaults, overrides)
//
// LoadPath combines every *.json file under a directory into one tree.
//
// # Configuration
//
// Constructors accept an optional *Config:
//
//	cfg := jsondoc.DefaultConfig()
//	cfg.Delimiter = "/"
//	cfg.AllowComments = true
//	doc, err := jsondoc.FromString(text, cfg)
//
// # Package Structure
//
//   - node.go: Node, the tagged tree value
//   - path.go: Accessor and the package-level Get/Set/Remove/Exists
//   - merge.go: Combine and Merge
//   - document.go: Document
//   - parser.go, encoding.go, options.go: text in and out
//   - file.go, loader.go: file and directory collaborators
package jsondoc
