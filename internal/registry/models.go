package registry

// CognitiveLoad grades how much attention a component demands from the
// person using the rendered interface.
type CognitiveLoad string

const (
	LoadLow      CognitiveLoad = "low"
	LoadModerate CognitiveLoad = "moderate"
	LoadHigh     CognitiveLoad = "high"
)

// Intent is the design-intent metadata attached to every Rafters component,
// written for humans and AI coding agents alike.
type Intent struct {
	CognitiveLoad CognitiveLoad `json:"cognitiveLoad,omitempty"`
	Accessibility []string      `json:"accessibility,omitempty"`
	// UsageGuidance is markdown, rendered by 'rafters info'
	UsageGuidance string `json:"usageGuidance,omitempty"`
}

// Entry describes one component in the registry index.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Intent      Intent `json:"intent,omitempty"`

	// RegistryDependencies are other Rafters components this one imports;
	// the installer resolves them transitively.
	RegistryDependencies []string `json:"registryDependencies,omitempty"`

	// Dependencies are npm packages the component needs at runtime. The
	// CLI never installs these itself; it prints the right install command.
	Dependencies []string `json:"dependencies,omitempty"`
}

// FileType distinguishes component source from story files so the installer
// can route them to componentsDir or storiesDir.
type FileType string

const (
	FileTypeComponent FileType = "component"
	FileTypeStory     FileType = "story"
)

// File is one source file of a component payload. Path is relative to the
// install root for its type; Content is the full UTF-8 source text using
// the registry's canonical "@/" import alias.
type File struct {
	Path    string   `json:"path"`
	Type    FileType `json:"type,omitempty"`
	Content string   `json:"content"`
}

// Component is the full registry payload for one component.
type Component struct {
	Entry
	Files []File `json:"files"`
}

// Index is the decoded shape of index.json.
type Index struct {
	Version    string  `json:"version"`
	Components []Entry `json:"components"`
}
