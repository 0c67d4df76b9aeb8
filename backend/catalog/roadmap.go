package catalog

// RoadmapItem is one unit of curriculum content. Its ID is the module
// identifier completion is tracked against.
type RoadmapItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"` // beginner, intermediate, advanced
}

// RoadmapSection groups related roadmap items under a heading.
type RoadmapSection struct {
	Title string        `json:"title"`
	Items []RoadmapItem `json:"items"`
}

var roadmaps = map[string][]RoadmapSection{
	"java": {
		{
			Title: "Basics",
			Items: []RoadmapItem{
				{ID: "java-basics-1", Title: "Java Syntax", Description: "Learn the basic syntax of Java", Difficulty: "beginner"},
				{ID: "java-basics-2", Title: "Variables & Data Types", Description: "Understanding variables and data types in Java", Difficulty: "beginner"},
				{ID: "java-basics-3", Title: "Control Flow", Description: "Conditionals and loops in Java", Difficulty: "beginner"},
			},
		},
		{
			Title: "Object-Oriented Programming",
			Items: []RoadmapItem{
				{ID: "java-oop-1", Title: "Classes & Objects", Description: "Learn about classes, objects, and instances", Difficulty: "intermediate"},
				{ID: "java-oop-2", Title: "Inheritance", Description: "Understanding inheritance and extending classes", Difficulty: "intermediate"},
				{ID: "java-oop-3", Title: "Polymorphism", Description: "Working with polymorphism and method overriding", Difficulty: "advanced"},
			},
		},
	},
	"python": {
		{
			Title: "Python Fundamentals",
			Items: []RoadmapItem{
				{ID: "python-basics-1", Title: "Python Syntax", Description: "Learn the basic syntax of Python", Difficulty: "beginner"},
				{ID: "python-basics-2", Title: "Data Structures", Description: "Lists, tuples, dictionaries, and sets", Difficulty: "beginner"},
				{ID: "python-basics-3", Title: "Functions", Description: "Creating and using functions in Python", Difficulty: "beginner"},
			},
		},
		{
			Title: "Advanced Python",
			Items: []RoadmapItem{
				{ID: "python-adv-1", Title: "List Comprehensions", Description: "Writing concise list operations", Difficulty: "intermediate"},
				{ID: "python-adv-2", Title: "Decorators", Description: "Understanding and creating decorators", Difficulty: "advanced"},
				{ID: "python-adv-3", Title: "Generators", Description: "Working with generators and yields", Difficulty: "advanced"},
			},
		},
	},
	"javascript": {
		{
			Title: "JavaScript Basics",
			Items: []RoadmapItem{
				{ID: "js-basics-1", Title: "JavaScript Syntax", Description: "Learn the basic syntax of JavaScript", Difficulty: "beginner"},
				{ID: "js-basics-2", Title: "DOM Manipulation", Description: "Interacting with the Document Object Model", Difficulty: "beginner"},
				{ID: "js-basics-3", Title: "Events", Description: "Handling user events in JavaScript", Difficulty: "beginner"},
			},
		},
		{
			Title: "Advanced JavaScript",
			Items: []RoadmapItem{
				{ID: "js-adv-1", Title: "Closures", Description: "Understanding closures and scope", Difficulty: "intermediate"},
				{ID: "js-adv-2", Title: "Promises", Description: "Working with asynchronous operations", Difficulty: "intermediate"},
				{ID: "js-adv-3", Title: "Modules", Description: "Organizing code into modules", Difficulty: "advanced"},
			},
		},
	},
	"cpp": {
		{
			Title: "C++ Fundamentals",
			Items: []RoadmapItem{
				{ID: "cpp-basics-1", Title: "C++ Syntax", Description: "Learn the basic syntax of C++", Difficulty: "beginner"},
				{ID: "cpp-basics-2", Title: "Memory Management", Description: "Understanding pointers and memory allocation", Difficulty: "intermediate"},
				{ID: "cpp-basics-3", Title: "Classes & Objects", Description: "OOP concepts in C++", Difficulty: "intermediate"},
			},
		},
	},
	"csharp": {
		{
			Title: "C# Fundamentals",
			Items: []RoadmapItem{
				{ID: "csharp-basics-1", Title: "C# Syntax", Description: "Learn the basic syntax of C#", Difficulty: "beginner"},
				{ID: "csharp-basics-2", Title: ".NET Framework", Description: "Introduction to .NET", Difficulty: "beginner"},
				{ID: "csharp-basics-3", Title: "LINQ", Description: "Working with Language Integrated Query", Difficulty: "intermediate"},
			},
		},
	},
	"golang": {
		{
			Title: "Go Fundamentals",
			Items: []RoadmapItem{
				{ID: "go-basics-1", Title: "Go Syntax", Description: "Learn the basic syntax of Go", Difficulty: "beginner"},
				{ID: "go-basics-2", Title: "Concurrency", Description: "Goroutines and channels", Difficulty: "intermediate"},
				{ID: "go-basics-3", Title: "Interfaces", Description: "Working with interfaces in Go", Difficulty: "intermediate"},
			},
		},
	},
}

// Roadmap returns the curriculum sections for a language, or false when the
// language has no roadmap.
func Roadmap(languageID string) ([]RoadmapSection, bool) {
	sections, ok := roadmaps[languageID]
	return sections, ok
}

// ModuleCount returns the total number of roadmap items for a language.
// Progress percentages are computed against it by clients.
func ModuleCount(languageID string) int {
	var n int
	for _, section := range roadmaps[languageID] {
		n += len(section.Items)
	}
	return n
}
