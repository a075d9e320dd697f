package domain

// Release is a published (or to be published) GitHub release.
type Release struct {
	ID         int64
	TagName    string
	Name       string
	Body       string
	HTMLURL    string
	Draft      bool
	Prerelease bool
}

// Commit is one entry of a commit comparison.
type Commit struct {
	SHA     string
	Message string
}

// CommitMessages returns the messages of commits in the order given.
func CommitMessages(commits []Commit) []string {
	messages := make([]string, 0, len(commits))
	for _, c := range commits {
		messages = append(messages, c.Message)
	}
	return messages
}
