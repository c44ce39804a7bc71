package object

import (
	"github.com/berserkin1337/git-lite/ginternals"
	"golang.org/x/xerrors"
)

// Blob represents a blob object, opaque bytes holding a file's content
type Blob struct {
	rawObject *Object
}

// NewBlob creates a new Blob object
func NewBlob(data []byte) *Blob {
	return &Blob{
		rawObject: New(TypeBlob, data),
	}
}

// NewBlobFromObject returns a new Blob from a git Object
func NewBlobFromObject(o *Object) (*Blob, error) {
	if o.Type() != TypeBlob {
		return nil, xerrors.Errorf("type %s is not a blob: %w", o.typ, ErrObjectInvalid)
	}
	return &Blob{
		rawObject: o,
	}, nil
}

// ID returns the blob's ID
func (b *Blob) ID() ginternals.Oid {
	return b.rawObject.id
}

// Bytes returns the blob's contents
func (b *Blob) Bytes() []byte {
	return b.rawObject.content
}

// Size returns the size of the blob
func (b *Blob) Size() int {
	return len(b.rawObject.content)
}

// ToObject returns the Blob's underlying Object
func (b *Blob) ToObject() *Object {
	return b.rawObject
}
