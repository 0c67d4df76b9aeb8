// Package catalog holds the static curriculum content: the supported
// programming languages, their roadmaps and the curated learning resources.
// The content is compiled in; there is no authoring surface.
package catalog

// Language is a selectable programming language.
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var languages = []Language{
	{ID: "java", Name: "Java"},
	{ID: "python", Name: "Python"},
	{ID: "javascript", Name: "JavaScript"},
	{ID: "cpp", Name: "C++"},
	{ID: "csharp", Name: "C#"},
	{ID: "golang", Name: "Go"},
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// KnownLanguage reports whether id names a supported language.
func KnownLanguage(id string) bool {
	for _, l := range languages {
		if l.ID == id {
			return true
		}
	}
	return false
}
