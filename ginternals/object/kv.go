package object

import (
	"bytes"
)

// MessageKey is the synthetic key under which ParseCommitKV stores the
// commit message
const MessageKey = "data"

// CommitKV holds the headers of a commit (or tag) payload as an
// ordered key/value map, suitable for introspection without going
// through the full Commit parser.
// Keys are listed in order of first appearance; a repeated key (the
// parent lines of a merge commit) appends to the existing values
type CommitKV struct {
	keys   []string
	values map[string][]string
}

// Keys returns the keys in order of first appearance
func (kv *CommitKV) Keys() []string {
	out := make([]string, len(kv.keys))
	copy(out, kv.keys)
	return out
}

// Get returns all the values recorded for a key, in payload order.
// Nil is returned for a key that never appeared
func (kv *CommitKV) Get(key string) []string {
	return kv.values[key]
}

// Message returns the commit message, stored under MessageKey
func (kv *CommitKV) Message() string {
	vals := kv.values[MessageKey]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (kv *CommitKV) append(key, value string) {
	if _, ok := kv.values[key]; !ok {
		kv.keys = append(kv.keys, key)
	}
	kv.values[key] = append(kv.values[key], value)
}

// ParseCommitKV parses a commit payload into an ordered key/value map.
//
// Headers are scanned line by line. A header is `key value`, where the
// value may continue on subsequent lines that begin with a space; the
// continuation lines keep their newline but lose the leading space.
// The first completely blank line separates the headers from the
// message, which is stored under MessageKey
func ParseCommitKV(raw []byte) *CommitKV {
	kv := &CommitKV{
		values: map[string][]string{},
	}

	offset := 0
	for offset < len(raw) {
		nl := bytes.IndexByte(raw[offset:], '\n')
		if nl == 0 {
			// blank line, everything after it is the message
			kv.append(MessageKey, string(raw[offset+1:]))
			return kv
		}

		line := raw[offset:]
		if nl > 0 {
			line = raw[offset : offset+nl]
		}

		sp := bytes.IndexByte(line, ' ')
		if sp < 0 {
			// a header without a value, we treat the rest as message
			kv.append(MessageKey, string(raw[offset:]))
			return kv
		}
		key := string(line[:sp])
		value := string(line[sp+1:])
		offset += len(line) + 1

		// continuation lines begin with a space that gets stripped
		for offset < len(raw) && raw[offset] == ' ' {
			rest := raw[offset+1:]
			end := bytes.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}
			value += "\n" + string(rest[:end])
			offset += 1 + end + 1
		}

		kv.append(key, value)
	}

	return kv
}
