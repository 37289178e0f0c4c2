package resume

import "strings"

// SeedSource supplies the canonical topic list for a role. The adaptive
// engine treats it as a read-only list of topic labels used for
// cold-start uniform/boosted sampling.
type SeedSource interface {
	Topics(role string) []string
}

// roleTopics maps normalized role names to default topic lists. Used
// when the candidate supplies no topics of their own.
var roleTopics = map[string][]string{
	"software engineer":  {"data structures", "algorithms", "system design", "databases", "concurrency"},
	"backend developer":  {"apis", "databases", "caching", "concurrency", "system design"},
	"frontend developer": {"javascript", "css", "accessibility", "state management", "performance"},
	"data scientist":     {"statistics", "machine learning", "data wrangling", "sql", "experiment design"},
	"devops engineer":    {"ci/cd", "containers", "networking", "observability", "infrastructure as code"},
}

var defaultTopics = []string{"data structures", "algorithms", "system design", "databases"}

// StaticSeed is a fixed topic list, e.g. entered by the candidate.
type StaticSeed []string

// Topics returns the list regardless of role.
func (s StaticSeed) Topics(string) []string {
	return []string(s)
}

// RoleSeed resolves topics from built-in per-role defaults.
type RoleSeed struct{}

// Topics returns the default topic list for the role, falling back to
// a generic engineering list for unknown roles.
func (RoleSeed) Topics(role string) []string {
	if topics, ok := roleTopics[strings.ToLower(strings.TrimSpace(role))]; ok {
		return topics
	}
	return defaultTopics
}
