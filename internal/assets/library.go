// Package assets looks up authored scenes by name in an asset directory.
// A missing or broken scene is an expected condition: lookups report it by returning nil
// and the viewer carries on with the procedural campus.
package assets

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"

	"ar-campus/internal/logger"
	"ar-campus/internal/scenegraph"
)

// SceneExt is the file extension of authored scene documents.
const SceneExt = ".scene.yaml"

// Library resolves scene identifiers against a file system and keeps each parsed scene
// as a template. Every load hands out a clone of the template, never the template itself.
type Library struct {
	fsys      hackpadfs.FS
	log       *logger.Logger
	templates map[string]*scenegraph.Node
}

// NewLibrary returns a library reading from fsys. Problems with individual scenes are written to log.
func NewLibrary(fsys hackpadfs.FS, log *logger.Logger) *Library {
	if log == nil {
		log = logger.Discard()
	}
	return &Library{fsys: fsys, log: log, templates: make(map[string]*scenegraph.Node)}
}

// OpenDir returns a library rooted at dir on the OS file system.
func OpenDir(dir string, log *logger.Logger) (*Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	// hackpadfs paths are relative to the OS root and slash separated.
	root := strings.TrimPrefix(filepath.ToSlash(abs[len(filepath.VolumeName(abs)):]), "/")
	if root == "" {
		root = "."
	}
	sub, err := osfs.NewFS().Sub(root)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return NewLibrary(sub, log), nil
}

// ResolveName maps a scene identifier to a file name inside the library.
// "art.scnassets/Campus.scn" and "art.scnassets/Campus" both resolve to "art.scnassets/Campus.scene.yaml";
// names already ending in .yaml or .yml are used as is.
func ResolveName(identifier string) (string, error) {
	name := path.Clean(strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(identifier)), "/"))
	if name == "." || name == "" {
		return "", fmt.Errorf("assets: empty scene name")
	}
	switch ext := path.Ext(name); ext {
	case ".yaml", ".yml":
	case ".scn":
		name = strings.TrimSuffix(name, ext) + SceneExt
	case "":
		name += SceneExt
	default:
		return "", fmt.Errorf("assets: unsupported scene format %q", ext)
	}
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("assets: invalid scene name %q", identifier)
	}
	return name, nil
}

// LoadAuthoredScene returns a fresh copy of the scene named identifier, or nil if it is
// missing or cannot be parsed. The reason is logged; callers only see absence.
func (l *Library) LoadAuthoredScene(identifier string) *scenegraph.Node {
	tmpl, err := l.template(identifier)
	if err != nil {
		l.log.Logf("authored scene %q unavailable: %v", identifier, err)
		return nil
	}
	return tmpl.Clone()
}

func (l *Library) template(identifier string) (*scenegraph.Node, error) {
	name, err := ResolveName(identifier)
	if err != nil {
		return nil, err
	}
	if t, ok := l.templates[name]; ok {
		return t, nil
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l.templates[name] = t
	return t, nil
}
