package jsondoc

import (
	"io"
	"log/slog"
)

// Document owns one JSON tree together with the options used to serialise
// it. Addressed operations use the configured delimiter. A Document is not
// safe for concurrent mutation.
type Document struct {
	root     *Node
	options  Options
	accessor *Accessor
	cfg      *Config
	logger   *slog.Logger
}

func newDocument(root *Node, cfg *Config) *Document {
	return &Document{
		root:     root,
		options:  cfg.Options,
		accessor: NewAccessor(cfg.Delimiter),
		cfg:      cfg,
		logger:   cfg.logger(),
	}
}

// FromString parses text into a new document.
func FromString(text string, cfgs ...*Config) (*Document, error) {
	return FromBytes([]byte(text), cfgs...)
}

// FromBytes parses data into a new document.
func FromBytes(data []byte, cfgs ...*Config) (*Document, error) {
	cfg, err := resolveConfig(cfgs...)
	if err != nil {
		return nil, err
	}
	root, err := Parse(data, cfg)
	if err != nil {
		logError(cfg.logger(), "from_bytes", "", err)
		return nil, err
	}
	return newDocument(root, cfg), nil
}

// FromFile reads and parses a regular file into a new document.
func FromFile(path string, cfgs ...*Config) (*Document, error) {
	cfg, err := resolveConfig(cfgs...)
	if err != nil {
		return nil, err
	}
	root, err := ParseFile(path, cfg)
	if err != nil {
		logError(cfg.logger(), "from_file", path, err)
		return nil, err
	}
	return newDocument(root, cfg), nil
}

// FromObject wraps an existing map without copying it.
func FromObject(obj *Node, cfgs ...*Config) (*Document, error) {
	if obj == nil || obj.kind != KindMap {
		return nil, newOperationError("from_object", "value is not a map", ErrTypeMismatch)
	}
	return wrap(obj, cfgs...)
}

// FromArray wraps an existing list without copying it.
func FromArray(list *Node, cfgs ...*Config) (*Document, error) {
	if list == nil || list.kind != KindList {
		return nil, newOperationError("from_array", "value is not a list", ErrTypeMismatch)
	}
	return wrap(list, cfgs...)
}

// FromValue converts a native Go value and wraps the result.
func FromValue(v any, cfgs ...*Config) (*Document, error) {
	root, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	return wrap(root, cfgs...)
}

func wrap(root *Node, cfgs ...*Config) (*Document, error) {
	cfg, err := resolveConfig(cfgs...)
	if err != nil {
		return nil, err
	}
	return newDocument(root, cfg), nil
}

// Root returns the owned tree.
func (d *Document) Root() *Node {
	return d.root
}

// Delimiter returns the address separator used by the document.
func (d *Document) Delimiter() string {
	return d.accessor.Delimiter()
}

// SetLogger replaces the logger; nil restores the package default.
func (d *Document) SetLogger(logger *slog.Logger) *Document {
	if logger == nil {
		logger = defaultLogger()
	}
	d.logger = logger
	return d
}

// Get returns the node at address, or nil when it does not resolve.
func (d *Document) Get(address string) *Node {
	return d.accessor.Get(d.root, address, nil)
}

// GetOr returns the node at address, or def when it does not resolve.
func (d *Document) GetOr(address string, def *Node) *Node {
	return d.accessor.Get(d.root, address, def)
}

// Set writes value at address, creating missing intermediate maps.
func (d *Document) Set(address string, value *Node) error {
	if err := d.accessor.Set(d.root, address, value); err != nil {
		logError(d.logger, "set", address, err)
		return err
	}
	return nil
}

// SetValue converts a native Go value with ValueOf and writes it at address.
func (d *Document) SetValue(address string, v any) error {
	n, err := ValueOf(v)
	if err != nil {
		logError(d.logger, "set", address, err)
		return err
	}
	return d.Set(address, n)
}

// Remove deletes the entry at address and reports whether it existed.
func (d *Document) Remove(address string) bool {
	return d.accessor.Remove(d.root, address)
}

// Exists reports whether address resolves.
func (d *Document) Exists(address string) bool {
	return d.accessor.Exists(d.root, address)
}

// Has is Exists.
func (d *Document) Has(address string) bool {
	return d.Exists(address)
}

// Delete is Remove.
func (d *Document) Delete(address string) bool {
	return d.Remove(address)
}

// Combine deep-merges sources into the document's root, which must be a map.
func (d *Document) Combine(sources ...*Node) (*Document, error) {
	if _, err := Combine(d.root, sources...); err != nil {
		logError(d.logger, "combine", "", err)
		return d, err
	}
	return d, nil
}

// CombineDocuments deep-merges the roots of other documents into this one.
func (d *Document) CombineDocuments(docs ...*Document) (*Document, error) {
	sources := make([]*Node, 0, len(docs))
	for _, other := range docs {
		if other != nil {
			sources = append(sources, other.root)
		}
	}
	return d.Combine(sources...)
}

// LoadPath combines every matching file under root into the document.
func (d *Document) LoadPath(root string, opts *LoadOptions) (*Document, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}
	if opts.Config == nil {
		withCfg := *opts
		withCfg.Config = d.cfg.Clone()
		withCfg.Config.Logger = d.logger
		opts = &withCfg
	}
	if _, err := LoadPath(d.root, root, opts); err != nil {
		return d, err
	}
	return d, nil
}

// Options returns the serialisation bitmask.
func (d *Document) Options() Options {
	return d.options
}

// SetOptions replaces the serialisation bitmask.
func (d *Document) SetOptions(opts Options) *Document {
	d.options = opts
	return d
}

// SetOption turns on the bits of flag.
func (d *Document) SetOption(flag Options) *Document {
	return d.SetOptions(d.options | flag)
}

// UnsetOptions turns off the bits of flags.
func (d *Document) UnsetOptions(flags Options) *Document {
	return d.SetOptions(d.options &^ flags)
}

// IsOptionSet reports whether every bit of flags is on.
func (d *Document) IsOptionSet(flags Options) bool {
	return d.options.Has(flags)
}

// Encode serialises the root with the current options.
func (d *Document) Encode() ([]byte, error) {
	out, err := Encode(d.root, d.options)
	if err != nil {
		logError(d.logger, "encode", "", err)
		return nil, err
	}
	return out, nil
}

// String serialises the root with the current options. It returns an
// empty string when the tree cannot be encoded.
func (d *Document) String() string {
	out, err := d.Encode()
	if err != nil {
		return ""
	}
	return string(out)
}

// MarshalJSON encodes the root compactly and ignores the document's
// options, leaving formatting to the outer encoder.
func (d *Document) MarshalJSON() ([]byte, error) {
	return Encode(d.root, 0)
}

// WriteTo writes the serialised document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out, err := d.Encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(out)
	return int64(n), err
}

// SaveFile writes the serialised document to path, creating missing
// parent directories.
func (d *Document) SaveFile(path string) error {
	out, err := d.Encode()
	if err != nil {
		return err
	}
	if err := WriteFile(path, out); err != nil {
		logError(d.logger, "save_file", path, err)
		return err
	}
	logDebug(d.logger, "saved JSON document", slog.String("path", path), slog.Int("bytes", len(out)))
	return nil
}
