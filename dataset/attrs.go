package dataset

import (
	"runtime/debug"
	"strings"
	"time"
)

// Standard attribute keys produced by MakeAttrs.
const (
	// AttrCreatedAt holds the dataset creation time, UTC ISO-8601 text.
	AttrCreatedAt = "created_at"

	// AttrInferenceLibrary holds the engine name, when one was given.
	AttrInferenceLibrary = "inference_library"

	// AttrInferenceLibraryVersion holds the engine version, when resolvable.
	AttrInferenceLibraryVersion = "inference_library_version"
)

// Engine identifies the inference engine that produced the samples.
// Implementations may additionally expose a version (see Versioned); when
// they do not, MakeAttrs falls back to the binary's build-info module list.
type Engine interface {
	// Name returns the engine's canonical name, e.g. "stan" or a full
	// module path like "github.com/acme/sampler".
	Name() string
}

// Versioned is the optional version hook on an Engine.
type Versioned interface {
	Version() string
}

// moduleVersion resolves name against the build-info dependency list, the
// installed-package version record of a Go binary. Matches the full module
// path or its last path element.
func moduleVersion(name string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, dep := range info.Deps {
		if dep.Path == name || dep.Path[strings.LastIndex(dep.Path, "/")+1:] == name {
			return dep.Version, true
		}
	}

	return "", false
}

// MakeAttrs builds the standard attribute record for a Dataset.
//
// Behavior:
//   - always includes AttrCreatedAt, read fresh per call (UTC, ISO-8601).
//   - when engine != nil: includes AttrInferenceLibrary, and resolves the
//     version first from the build-info module list, then from a
//     Versioned implementation on the engine; the key is omitted entirely
//     when neither resolves.
//   - caller attrs override/extend the defaults (caller wins).
//
// Never fails; at minimum the result carries AttrCreatedAt.
// Complexity: O(deps + len(attrs)).
func MakeAttrs(attrs Attrs, engine Engine) Attrs {
	out := Attrs{
		AttrCreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if engine != nil {
		name := engine.Name()
		out[AttrInferenceLibrary] = name
		if version, ok := moduleVersion(name); ok {
			out[AttrInferenceLibraryVersion] = version
		} else if v, ok := engine.(Versioned); ok && v.Version() != "" {
			out[AttrInferenceLibraryVersion] = v.Version()
		}
	}
	for key, value := range attrs {
		out[key] = value
	}

	return out
}
