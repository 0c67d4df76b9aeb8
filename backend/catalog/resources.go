package catalog

// Resource types.
const (
	ResourceVideo   = "video"
	ResourceArticle = "article"
	ResourceProblem = "problem"
	ResourceCourse  = "course"
)

// Resource is one curated learning resource. ModuleID ties it back to the
// roadmap item it supports; Difficulty is only set for problems.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Difficulty  string   `json:"difficulty,omitempty"` // easy, medium, hard
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	ModuleID    string   `json:"moduleId,omitempty"`
}

var resources = map[string][]Resource{
	"java": {
		{
			ID: "java-res-1", Title: "Java Programming for Beginners", Type: ResourceVideo,
			Source: "YouTube", URL: "https://www.youtube.com/watch?v=eIrMbAQSU34",
			Tags: []string{"beginner", "tutorial"}, ModuleID: "java-basics-1",
			Description: "A comprehensive Java tutorial covering syntax, OOP concepts, and basic programming principles",
		},
		{
			ID: "java-res-2", Title: "Java Collections Framework", Type: ResourceVideo,
			Source: "YouTube", URL: "https://www.youtube.com/watch?v=1OpAgZvYXLQ",
			Tags: []string{"intermediate", "collections"}, ModuleID: "java-basics-2",
			Description: "Learn about Lists, Sets, Maps and other collection interfaces in Java",
		},
		{
			ID: "java-res-3", Title: "Java Data Structures & Algorithms", Type: ResourceArticle,
			Source: "GeeksforGeeks", URL: "https://www.geeksforgeeks.org/data-structures-in-java/",
			Tags: []string{"intermediate", "data structures"}, ModuleID: "java-oop-1",
			Description: "Comprehensive guide to implementing various data structures in Java",
		},
		{
			ID: "java-res-4", Title: "Two Sum", Type: ResourceProblem,
			Source: "LeetCode", URL: "https://leetcode.com/problems/two-sum/",
			Difficulty: "easy", Tags: []string{"arrays", "algorithms"}, ModuleID: "java-basics-3",
			Description: "Find two numbers that add up to a specific target",
		},
		{
			ID: "java-res-5", Title: "Merge Intervals", Type: ResourceProblem,
			Source: "LeetCode", URL: "https://leetcode.com/problems/merge-intervals/",
			Difficulty: "medium", Tags: []string{"arrays", "sorting"}, ModuleID: "java-oop-2",
			Description: "Merge all overlapping intervals in a collection",
		},
	},
	"python": {
		{
			ID: "python-res-1", Title: "Python for Everybody", Type: ResourceCourse,
			Source: "Coursera", URL: "https://www.coursera.org/specializations/python",
			Tags: []string{"beginner", "course"}, ModuleID: "python-basics-1",
			Description: "A gentle introduction to programming with Python",
		},
		{
			ID: "python-res-2", Title: "Python Data Structures", Type: ResourceArticle,
			Source: "GeeksforGeeks", URL: "https://www.geeksforgeeks.org/python-data-structures/",
			Tags: []string{"beginner", "data structures"}, ModuleID: "python-basics-2",
			Description: "Lists, tuples, dictionaries and sets with worked examples",
		},
		{
			ID: "python-res-3", Title: "Decorators Demystified", Type: ResourceVideo,
			Source: "YouTube", URL: "https://www.youtube.com/watch?v=FsAPt_9Bf3U",
			Tags: []string{"advanced", "decorators"}, ModuleID: "python-adv-2",
			Description: "Understanding and writing Python decorators",
		},
		{
			ID: "python-res-4", Title: "Valid Parentheses", Type: ResourceProblem,
			Source: "LeetCode", URL: "https://leetcode.com/problems/valid-parentheses/",
			Difficulty: "easy", Tags: []string{"stacks", "strings"}, ModuleID: "python-basics-2",
			Description: "Check whether a bracket sequence is well formed",
		},
	},
	"javascript": {
		{
			ID: "js-res-1", Title: "JavaScript Crash Course", Type: ResourceVideo,
			Source: "YouTube", URL: "https://www.youtube.com/watch?v=hdI2bqOjy3c",
			Tags: []string{"beginner", "tutorial"}, ModuleID: "js-basics-1",
			Description: "Fundamentals of JavaScript in one sitting",
		},
		{
			ID: "js-res-2", Title: "You Don't Know JS: Scope & Closures", Type: ResourceArticle,
			Source: "GitHub", URL: "https://github.com/getify/You-Dont-Know-JS",
			Tags: []string{"intermediate", "closures"}, ModuleID: "js-adv-1",
			Description: "Deep dive into lexical scope and closures",
		},
		{
			ID: "js-res-3", Title: "Promises, async/await", Type: ResourceArticle,
			Source: "javascript.info", URL: "https://javascript.info/async",
			Tags: []string{"intermediate", "async"}, ModuleID: "js-adv-2",
			Description: "Working with asynchronous JavaScript",
		},
	},
	"cpp": {
		{
			ID: "cpp-res-1", Title: "C++ Tutorial for Beginners", Type: ResourceVideo,
			Source: "YouTube", URL: "https://www.youtube.com/watch?v=vLnPwxZdW4Y",
			Tags: []string{"beginner", "tutorial"}, ModuleID: "cpp-basics-1",
			Description: "Full C++ course covering syntax and fundamentals",
		},
		{
			ID: "cpp-res-2", Title: "Pointers in C++", Type: ResourceArticle,
			Source: "GeeksforGeeks", URL: "https://www.geeksforgeeks.org/pointers-in-c-and-c-set-1-introduction-arithmetic-and-array/",
			Tags: []string{"intermediate", "memory"}, ModuleID: "cpp-basics-2",
			Description: "Introduction to pointers, arithmetic and arrays",
		},
	},
	"csharp": {
		{
			ID: "csharp-res-1", Title: "C# Fundamentals for Absolute Beginners", Type: ResourceCourse,
			Source: "Microsoft Learn", URL: "https://learn.microsoft.com/en-us/dotnet/csharp/",
			Tags: []string{"beginner", "course"}, ModuleID: "csharp-basics-1",
			Description: "Official C# learning path",
		},
		{
			ID: "csharp-res-2", Title: "LINQ Tutorial", Type: ResourceArticle,
			Source: "TutorialsTeacher", URL: "https://www.tutorialsteacher.com/linq",
			Tags: []string{"intermediate", "linq"}, ModuleID: "csharp-basics-3",
			Description: "Query collections with Language Integrated Query",
		},
	},
	"golang": {
		{
			ID: "go-res-1", Title: "A Tour of Go", Type: ResourceCourse,
			Source: "go.dev", URL: "https://go.dev/tour/",
			Tags: []string{"beginner", "tutorial"}, ModuleID: "go-basics-1",
			Description: "Interactive introduction to the Go language",
		},
		{
			ID: "go-res-2", Title: "Go Concurrency Patterns", Type: ResourceVideo,
			Source: "YouTube", URL: "https://www.youtube.com/watch?v=f6kdp27TYZs",
			Tags: []string{"intermediate", "concurrency"}, ModuleID: "go-basics-2",
			Description: "Rob Pike's talk on goroutines and channels",
		},
		{
			ID: "go-res-3", Title: "LRU Cache", Type: ResourceProblem,
			Source: "LeetCode", URL: "https://leetcode.com/problems/lru-cache/",
			Difficulty: "medium", Tags: []string{"design", "hashmap"}, ModuleID: "go-basics-3",
			Description: "Design a least-recently-used cache",
		},
	},
}

// Resources returns the curated resources for a language, or false when none
// are catalogued for it.
func Resources(languageID string) ([]Resource, bool) {
	list, ok := resources[languageID]
	return list, ok
}

// ModuleResources returns the resources tied to a single roadmap item.
func ModuleResources(languageID, moduleID string) []Resource {
	var out []Resource
	for _, r := range resources[languageID] {
		if r.ModuleID == moduleID {
			out = append(out, r)
		}
	}
	return out
}
