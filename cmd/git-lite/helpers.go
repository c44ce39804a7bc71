package main

import (
	"os"
	"strings"

	gitlite "github.com/berserkin1337/git-lite"
	"github.com/berserkin1337/git-lite/ginternals/object"
)

// loadRepository finds and opens the repository containing the current
// working directory
func loadRepository() (*gitlite.Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return gitlite.FindRepository(cwd)
}

// parseAuthor builds a signature out of the user-provided author
// string, which is either `Name` or `Name <email>`
func parseAuthor(author string) object.Signature {
	name := author
	email := ""
	if i := strings.IndexByte(author, '<'); i >= 0 {
		name = strings.TrimSpace(author[:i])
		email = strings.TrimSuffix(author[i+1:], ">")
	}
	return object.NewSignature(name, email)
}
