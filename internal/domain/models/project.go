package models

// ProjectConfig is the per-repository configuration found in czconfig.json
// or referenced from package.json.
type ProjectConfig struct {
	JiraKey string `json:"jiraKey"`
	Source  string `json:"-"`
}
