// Package backend contains interfaces and implementations to store and
// retrieve data from the odb
package backend

import (
	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"gopkg.in/ini.v1"
)

// Backend represents an object that can store and retrieve data
// from and to the odb
type Backend interface {
	// Close frees the resources
	Close() error

	// Init initializes a repository
	Init() error

	// Config returns the repository's configuration
	Config() (*ini.File, error)

	// Reference returns a stored reference from its name
	Reference(name string) (*ginternals.Reference, error)
	// WriteReference writes the given reference in the db. If the
	// reference already exists it will be overwritten
	WriteReference(ref *ginternals.Reference) error

	// Object returns the object that has given oid
	Object(ginternals.Oid) (*object.Object, error)
	// HasObject returns whether an object exists in the odb
	HasObject(ginternals.Oid) (bool, error)
	// WriteObject adds an object to the odb
	WriteObject(*object.Object) (ginternals.Oid, error)

	// Index returns the content of the index file.
	// An empty index is returned if the repo has no index file yet
	Index() (*ginternals.Index, error)
	// WriteIndex persists the index file
	WriteIndex(idx *ginternals.Index) error
}
