// Package git reads branch and commit history by running the git CLI.
package git

// Change is one file touched by a commit, as reported by --name-status.
type Change struct {
	// Status is the raw git status code: A, M, D, or a scored code such as R100
	Status string `json:"status"`
	Path   string `json:"path"`
}

// Commit is one entry of a branch's log.
type Commit struct {
	Hash    string   `json:"hash"`
	Author  string   `json:"author"`
	Date    string   `json:"date"` // YYYY-MM-DD
	Message string   `json:"message"`
	Changes []Change `json:"changes"`
}

// ShortHash returns the first seven characters of the commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 7 {
		return c.Hash
	}
	return c.Hash[:7]
}
