// Package gitpath contains consts and methods to work with paths inside
// the .git directory
package gitpath

import "path"

// .git/ Files and directories
const (
	DotGitPath      = ".git"
	ConfigPath      = "config"
	DescriptionPath = "description"
	HEADPath        = "HEAD"
	IndexPath       = "index"
	ObjectsPath     = "objects"
	BranchesPath    = "branches"
	RefsPath        = "refs"
	RefsTagsPath    = RefsPath + "/tags"
	RefsHeadsPath   = RefsPath + "/heads"
)

// LocalBranch returns the full name of a local branch
// ex. for `master` returns `refs/heads/master`
func LocalBranch(shortName string) string {
	return path.Join(RefsHeadsPath, shortName)
}

// LocalTag returns the full name of a local tag
// ex. for `v1.0.0` returns `refs/tags/v1.0.0`
func LocalTag(shortName string) string {
	return path.Join(RefsTagsPath, shortName)
}

// Ref returns the full name of a ref
// ex. for `heads/master` returns `refs/heads/master`
func Ref(shortName string) string {
	return path.Join(RefsPath, shortName)
}
