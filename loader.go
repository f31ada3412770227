package jsondoc

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

var defaultFileFilter = regexp.MustCompile(DefaultFileFilter)

// LoadOptions controls directory aggregation.
type LoadOptions struct {
	// Recurse descends into subdirectories.
	Recurse bool
	// Filter selects files by their full path. Nil means DefaultFileFilter.
	Filter *regexp.Regexp
	// Config is used for reading and parsing every file.
	Config *Config
}

// DefaultLoadOptions recurses and selects *.json files, case-insensitively.
func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		Recurse: true,
		Filter:  defaultFileFilter,
	}
}

// LoadPath parses every file under root whose path matches the filter and
// combines it into destination, which must be a map.
//
// Entries are visited in file name order, so among sibling files the one
// sorting last wins scalar conflicts. Root must be a directory, otherwise
// LoadPath fails with ErrNotFound. The first read or parse error aborts
// the load; files merged before it stay merged.
func LoadPath(destination *Node, root string, opts *LoadOptions) (*Node, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}
	cfg, err := resolveConfig(opts.Config)
	if err != nil {
		return nil, err
	}
	filter := opts.Filter
	if filter == nil {
		filter = defaultFileFilter
	}
	if destination == nil || destination.kind != KindMap {
		return nil, newOperationError("load_path", "destination must be a map", ErrTypeMismatch)
	}

	l := &loader{
		recurse: opts.Recurse,
		filter:  filter,
		cfg:     cfg,
		logger:  cfg.logger(),
		visited: make(map[string]bool),
	}
	if err := l.load(destination, root); err != nil {
		return nil, err
	}
	return destination, nil
}

type loader struct {
	recurse bool
	filter  *regexp.Regexp
	cfg     *Config
	logger  *slog.Logger
	visited map[string]bool
}

func (l *loader) load(destination *Node, dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return newPathError("load_path", dir, "path is not a directory", ErrNotFound)
	}
	// Symlinked directories may point back up the tree.
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if l.visited[real] {
			return nil
		}
		l.visited[real] = true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return newPathError("load_path", dir, err.Error(), ErrNotFound)
	}

	for _, entry := range entries {
		subPath := filepath.Join(dir, entry.Name())
		logDebug(l.logger, "visiting path", slog.String("path", subPath))
		// Stat follows symlinks so linked directories and files count as
		// what they point to.
		sub, err := os.Stat(subPath)
		if err != nil {
			logDebug(l.logger, "skipping unreadable path", slog.String("path", subPath), slog.String("error", err.Error()))
			continue
		}
		switch {
		case sub.IsDir():
			if !l.recurse {
				continue
			}
			if err := l.load(destination, subPath); err != nil {
				return err
			}
		case sub.Mode().IsRegular() && l.filter.MatchString(norm.NFC.String(subPath)):
			tree, err := ParseFile(subPath, l.cfg)
			if err != nil {
				logError(l.logger, "load_path", subPath, err)
				return err
			}
			if _, err := Combine(destination, tree); err != nil {
				logError(l.logger, "load_path", subPath, err)
				return withPath(err, subPath)
			}
		}
	}
	return nil
}
