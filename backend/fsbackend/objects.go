package fsbackend

import (
	"compress/zlib"
	"io"
	"os"
	"path/filepath"

	"github.com/berserkin1337/git-lite/ginternals"
	"github.com/berserkin1337/git-lite/ginternals/object"
	"github.com/berserkin1337/git-lite/internal/errutil"
	"github.com/berserkin1337/git-lite/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// looseObjectPath returns the path of an object, under the backend's root
// .git/objects/first_2_chars_of_sha/remaining_chars_of_sha
// Ex. path of fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3 is:
// .git/objects/fc/fe68a0e44e04bd7fd564fc0b75f1ae457e18b3
func (b *Backend) looseObjectPath(sha string) string {
	return filepath.Join(b.root, gitpath.ObjectsPath, sha[:2], sha[2:])
}

// Object returns the object matching the given OID.
// ginternals.ErrObjectNotFound is returned if the object doesn't exist,
// ginternals.ErrObjectCorrupted if its content cannot be read back
func (b *Backend) Object(oid ginternals.Oid) (o *object.Object, err error) {
	strOid := oid.String()
	p := b.looseObjectPath(strOid)

	f, err := b.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("object %s: %w", strOid, ginternals.ErrObjectNotFound)
		}
		return nil, xerrors.Errorf("could not get object %s at path %s: %w", strOid, p, err)
	}
	defer errutil.Close(f, &err)

	// Objects are zlib encoded
	zlibReader, err := zlib.NewReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s at path %s: %w", strOid, p, ginternals.ErrObjectCorrupted)
	}
	defer errutil.Close(zlibReader, &err)

	// We directly read the entire file since most of it is the content
	// we need, this allows us to be able to easily store the object's
	// content
	buff, err := io.ReadAll(zlibReader)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s at path %s: %s: %w", strOid, p, err.Error(), ginternals.ErrObjectCorrupted)
	}

	o, err = object.NewFromLoose(buff)
	if err != nil {
		return nil, xerrors.Errorf("object %s at path %s: %w", strOid, p, err)
	}

	// the object is content-addressed, so the parsed data must hash
	// back to the name we were asked for
	if o.ID() != oid {
		return nil, xerrors.Errorf("object %s hashes to %s: %w", strOid, o.ID().String(), ginternals.ErrObjectCorrupted)
	}
	return o, nil
}

// HasObject returns whether an object exists in the odb
func (b *Backend) HasObject(oid ginternals.Oid) (bool, error) {
	p := b.looseObjectPath(oid.String())
	_, err := b.fs.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, xerrors.Errorf("could not check if object %s exists: %w", oid.String(), err)
}

// WriteObject adds an object to the odb.
// Since objects are content-addressed, writing the same object twice
// is a no-op
func (b *Backend) WriteObject(o *object.Object) (ginternals.Oid, error) {
	data, err := o.Compress()
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not compress object: %w", err)
	}

	// Make sure the object doesn't already exist
	found, err := b.HasObject(o.ID())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not check if object (%s) already exists: %w", o.ID().String(), err)
	}
	if found {
		return o.ID(), nil
	}

	// Persist the data on disk
	sha := o.ID().String()
	p := b.looseObjectPath(sha)

	// We need to make sure the dest dir exists
	dest := filepath.Dir(p)
	if err = b.fs.MkdirAll(dest, 0o755); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create the destination directory %s: %w", dest, err)
	}

	// We use 444 because git objects are read-only
	if err = afero.WriteFile(b.fs, p, data, 0o444); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not persist object %s at path %s: %w", sha, p, err)
	}

	return o.ID(), nil
}
