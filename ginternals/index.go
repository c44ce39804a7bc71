package ginternals

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sort"

	"golang.org/x/xerrors"
)

// Index file layout
//
// An index file contains 3 sections. A header, a list of entries,
// and a footer.
// Header: 12 bytes
//         The first 4 bytes contain the magic ('D', 'I', 'R', 'C')
//         The next 4 bytes contain the version (here always 2)
//         The last 4 bytes contain the number of entries in the file
// Entries: Variable size
//          Index entries are sorted in ascending order by path.
//          Data (see stat(2) for more info on some fields):
//              - 4 bytes: the ctime seconds
//              - 4 bytes: the ctime nanosecond fractions
//              - 4 bytes: the mtime seconds
//              - 4 bytes: the mtime nanosecond fractions
//              - 4 bytes: dev (device ID)
//              - 4 bytes: ino (inode number)
//              - 4 bytes: mode of the entry
//              - 4 bytes: uid (user ID)
//              - 4 bytes: gid (group ID)
//              - 4 bytes: file size
//              - 20 bytes: the oid of the blob holding the file content
//              - 2 bytes: flags. The lower 12 bits hold the path length
//              - Entry path name (variable size), followed by 1 to 8
//                NUL bytes padding the entry to an 8-byte boundary
// Footer: 20 bytes
//         Contains the SHA1 sum of everything that precedes it
// https://git-scm.com/docs/index-format
const (
	// IndexVersion is the only index format version we read and write
	IndexVersion = 2

	indexHeaderSize     = 12
	indexEntryFixedSize = 62
	indexChecksumSize   = 20

	// indexFlagsPathMask covers the bits of the flags field that hold
	// the path length
	indexFlagsPathMask = 0x0FFF
)

var indexSignature = []byte{'D', 'I', 'R', 'C'}

// IndexEntry represents a single file staged in the index.
// All the stat fields are stored as 32 bit unsigned ints, truncated
// from whatever the filesystem reports
type IndexEntry struct {
	Path string

	CtimeSec  uint32
	CtimeNano uint32
	MtimeSec  uint32
	MtimeNano uint32
	Dev       uint32
	Ino       uint32
	Mode      uint32
	UID       uint32
	GID       uint32
	FileSize  uint32

	ID Oid

	Flags uint16
}

// NewIndexEntry returns an entry for the given path with its flags set
// from the path length.
// The path must be repo-relative, in unix format, and at most 4095
// bytes long
func NewIndexEntry(path string, id Oid) IndexEntry {
	return IndexEntry{
		Path:  path,
		ID:    id,
		Flags: pathFlags(path),
	}
}

// pathFlags returns the flags value for a path. The upper 4 bits are
// always 0, the lower 12 hold the path length
func pathFlags(path string) uint16 {
	if len(path) > indexFlagsPathMask {
		panic(fmt.Sprintf("path %q is longer than %d bytes", path, indexFlagsPathMask))
	}
	return uint16(len(path))
}

// paddedSize returns the on-disk size of an entry for the given path
// length. Entries are padded with NUL bytes to the next 8-byte
// boundary, with at least 1 padding byte terminating the path
func paddedSize(pathLen int) int {
	return (indexEntryFixedSize + pathLen + 8) / 8 * 8
}

// Index represents the content of the index file, the staging area
// enumerating what goes in the next commit
type Index struct {
	entries []IndexEntry
}

// NewIndex returns an index holding the given entries.
// The entries are expected to already be sorted by path
func NewIndex(entries []IndexEntry) *Index {
	return &Index{entries: entries}
}

// NewIndexFromBytes parses the content of an index file.
// ErrIndexCorrupted is returned if the data doesn't match its checksum
// or cannot be parsed, ErrIndexVersionNotSupported if the file uses a
// version other than 2
func NewIndexFromBytes(data []byte) (*Index, error) {
	if len(data) < indexHeaderSize+indexChecksumSize {
		return nil, xerrors.Errorf("file too small (%d bytes): %w", len(data), ErrIndexCorrupted)
	}

	// The last 20 bytes contain the SHA1 sum of everything before them
	body := data[:len(data)-indexChecksumSize]
	trailer := data[len(data)-indexChecksumSize:]
	sum := sha1.Sum(body)
	if string(sum[:]) != string(trailer) {
		return nil, xerrors.Errorf("bad checksum: %w", ErrIndexCorrupted)
	}

	if string(body[:4]) != string(indexSignature) {
		return nil, xerrors.Errorf("bad signature %q: %w", body[:4], ErrIndexCorrupted)
	}
	version := binary.BigEndian.Uint32(body[4:8])
	if version != IndexVersion {
		return nil, xerrors.Errorf("version %d: %w", version, ErrIndexVersionNotSupported)
	}
	count := binary.BigEndian.Uint32(body[8:12])

	entries := make([]IndexEntry, 0, count)
	cursor := indexHeaderSize
	for i := uint32(0); i < count; i++ {
		if cursor+indexEntryFixedSize > len(body) {
			return nil, xerrors.Errorf("truncated entry %d: %w", i, ErrIndexCorrupted)
		}
		e, size, err := parseIndexEntry(body[cursor:])
		if err != nil {
			return nil, xerrors.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
		cursor += size
	}

	return &Index{entries: entries}, nil
}

// parseIndexEntry parses a single entry off the beginning of data and
// returns it along with its padded on-disk size
func parseIndexEntry(data []byte) (e IndexEntry, size int, err error) {
	fields := []*uint32{
		&e.CtimeSec, &e.CtimeNano, &e.MtimeSec, &e.MtimeNano,
		&e.Dev, &e.Ino, &e.Mode, &e.UID, &e.GID, &e.FileSize,
	}
	offset := 0
	for _, f := range fields {
		*f = binary.BigEndian.Uint32(data[offset:])
		offset += 4
	}

	e.ID, err = NewOidFromHex(data[offset : offset+OidSize])
	if err != nil {
		return e, 0, xerrors.Errorf("invalid oid: %w", ErrIndexCorrupted)
	}
	offset += OidSize

	e.Flags = binary.BigEndian.Uint16(data[offset:])
	offset += 2

	// the path starts right after the fixed part and runs until the
	// first NUL of the padding
	nul := offset
	for nul < len(data) && data[nul] != 0 {
		nul++
	}
	if nul == len(data) {
		return e, 0, xerrors.Errorf("unterminated path: %w", ErrIndexCorrupted)
	}
	e.Path = string(data[offset:nul])
	if int(e.Flags&indexFlagsPathMask) != len(e.Path) {
		return e, 0, xerrors.Errorf("flags say the path is %d bytes, got %d: %w",
			e.Flags&indexFlagsPathMask, len(e.Path), ErrIndexCorrupted)
	}

	size = paddedSize(len(e.Path))
	if size > len(data) {
		return e, 0, xerrors.Errorf("truncated padding: %w", ErrIndexCorrupted)
	}
	return e, size, nil
}

// Entries returns a copy of the index entries, in path order
func (idx *Index) Entries() []IndexEntry {
	out := make([]IndexEntry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Len returns the number of staged entries
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Upsert stages an entry. An existing entry with the same path is
// replaced, otherwise the entry is inserted keeping the list sorted
// by path
func (idx *Index) Upsert(e IndexEntry) {
	for i := range idx.entries {
		if idx.entries[i].Path == e.Path {
			idx.entries[i] = e
			return
		}
	}
	idx.entries = append(idx.entries, e)
	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].Path < idx.entries[j].Path
	})
}

// Bytes serializes the index, checksum included.
// It panics if an entry's flags don't match its path length since that
// can only be caused by a bug in the caller
func (idx *Index) Bytes() []byte {
	size := indexHeaderSize + indexChecksumSize
	for _, e := range idx.entries {
		size += paddedSize(len(e.Path))
	}

	data := make([]byte, 0, size)
	data = append(data, indexSignature...)
	data = binary.BigEndian.AppendUint32(data, IndexVersion)
	data = binary.BigEndian.AppendUint32(data, uint32(len(idx.entries)))

	for _, e := range idx.entries {
		if int(e.Flags&indexFlagsPathMask) != len(e.Path) {
			panic(fmt.Sprintf("entry %q has flags %#x not matching its path length", e.Path, e.Flags))
		}

		for _, f := range []uint32{
			e.CtimeSec, e.CtimeNano, e.MtimeSec, e.MtimeNano,
			e.Dev, e.Ino, e.Mode, e.UID, e.GID, e.FileSize,
		} {
			data = binary.BigEndian.AppendUint32(data, f)
		}
		data = append(data, e.ID.Bytes()...)
		data = binary.BigEndian.AppendUint16(data, e.Flags)
		data = append(data, e.Path...)

		padding := paddedSize(len(e.Path)) - indexEntryFixedSize - len(e.Path)
		for i := 0; i < padding; i++ {
			data = append(data, 0)
		}
	}

	sum := sha1.Sum(data)
	return append(data, sum[:]...)
}
