package campus

import "ar-campus/internal/scenegraph"

// SceneLoader looks up an authored scene by identifier. It returns nil when the scene is
// missing or unreadable.
type SceneLoader interface {
	LoadAuthoredScene(identifier string) *scenegraph.Node
}

// Populate fills root: the authored scene named identifier first, when loader is set and
// finds it, then the procedural campus. It reports whether the authored scene was added.
// An empty identifier skips the lookup.
func Populate(root *scenegraph.Node, loader SceneLoader, identifier string) bool {
	authored := false
	if loader != nil && identifier != "" {
		if n := loader.LoadAuthoredScene(identifier); n != nil {
			root.MustAddChild(n)
			authored = true
		}
	}
	root.MustAddChild(BuildCampus())
	return authored
}
