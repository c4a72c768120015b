package memfs

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"memfs/internal/logging"
)

var (
	storeLogger = logging.GetLogger().WithPrefix("store")
)

// Options configures a new Store.
type Options struct {
	// InitialDirectories are inserted as directory entries, in order,
	// before InitialFiles. Ancestors are not created for them: a listed
	// directory does not imply its parent exists unless also listed.
	InitialDirectories []string

	// InitialFiles maps path to content. A path present in both
	// InitialDirectories and InitialFiles ends up a file (last write
	// wins). As with InitialDirectories, ancestors are not created;
	// this differs from WriteFile on purpose.
	InitialFiles map[string]string

	// Clock supplies timestamps for construction and every mutating
	// operation. Nil means time.Now.
	Clock func() time.Time
}

// Store is an in-memory mapping from normalized path to Entry, plus the
// operations over it. All operations are synchronous and side-effect-local
// to the instance. A Store is not safe for concurrent use; create one per
// test or worker instead of sharing.
type Store struct {
	entries map[string]Entry
	clock   func() time.Time
}

// New creates a Store populated from opts. Every initial entry carries the
// construction timestamp.
func New(opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	s := &Store{
		entries: make(map[string]Entry),
		clock:   clock,
	}

	now := clock()
	for _, dir := range opts.InitialDirectories {
		key := Normalize(dir)
		storeLogger.Trace("Initial directory: %q", key)
		s.entries[key] = NewDirEntry(now)
	}
	for path, content := range opts.InitialFiles {
		key := Normalize(path)
		storeLogger.Trace("Initial file: %q (%d bytes)", key, len(content))
		s.entries[key] = NewFileEntry(content, now)
	}

	storeLogger.Debug("Created store with %d initial entries", len(s.entries))
	return s
}

// ReadFile returns the content of the file at path. It fails with
// ErrNotFound if no entry exists at that key, or if the entry is a
// directory. Reading has no side effects and never updates mtime.
func (s *Store) ReadFile(path string) (string, error) {
	key := Normalize(path)
	file, ok := s.entries[key].(*FileEntry)
	if !ok {
		storeLogger.Debug("No file at %q", key)
		return "", NewError(OpRead, key, ErrNotFound)
	}
	return file.Content(), nil
}

// WriteFile sets the file entry at path, creating any missing ancestor
// directory first. It always succeeds; this is the mechanism by which
// directories come into being implicitly.
//
// Each newly implied ancestor gets a fresh directory entry; ancestors that
// already have an entry are left alone, whatever their kind. There is no
// check that an existing ancestor is actually a directory.
func (s *Store) WriteFile(path, content string) error {
	key := Normalize(path)
	s.vivifyAncestors(key)
	s.entries[key] = NewFileEntry(content, s.clock())
	storeLogger.Trace("Wrote %d bytes to %q", len(content), key)
	return nil
}

// vivifyAncestors creates a directory entry for every missing ancestor of
// key, root-most first.
func (s *Store) vivifyAncestors(key string) {
	for _, anc := range ancestors(key) {
		if _, exists := s.entries[anc]; exists {
			continue
		}
		storeLogger.Trace("Creating implied directory: %q", anc)
		s.entries[anc] = NewDirEntry(s.clock())
	}
}

// Exists reports whether a key is present, file or directory. It makes no
// distinction between "missing" and "exists but wrong type"; use Stat or
// Entries for type discrimination.
func (s *Store) Exists(path string) bool {
	_, exists := s.entries[Normalize(path)]
	return exists
}

// Stat returns the entry at path, whatever its kind, or ErrNotFound.
func (s *Store) Stat(path string) (Entry, error) {
	key := Normalize(path)
	entry, exists := s.entries[key]
	if !exists {
		return nil, NewError(OpStat, key, ErrNotFound)
	}
	return entry, nil
}

// Unlink removes the file entry at path. Both a missing key and a
// directory entry fail with ErrNotFound: directories are not removable
// through Unlink, matching ReadFile's treatment of them as content-less.
// Ancestor directories are never implicitly removed.
func (s *Store) Unlink(path string) error {
	key := Normalize(path)
	if _, ok := s.entries[key].(*FileEntry); !ok {
		storeLogger.Debug("No file to unlink at %q", key)
		return NewError(OpUnlink, key, ErrNotFound)
	}
	delete(s.entries, key)
	storeLogger.Trace("Unlinked %q", key)
	return nil
}

// Mkdir sets path to a fresh directory entry without touching ancestors.
// The resulting key may be an orphan whose ancestor chain is incomplete;
// that is permitted, since membership checks and listings never validate
// the chain. Any existing entry at the exact path is overwritten.
func (s *Store) Mkdir(path string) error {
	key := Normalize(path)
	s.entries[key] = NewDirEntry(s.clock())
	storeLogger.Trace("Created directory %q", key)
	return nil
}

// MkdirAll creates every missing ancestor of path, then sets path itself
// to a fresh directory entry. Like Mkdir it always succeeds and overwrites
// any existing entry at the exact path.
func (s *Store) MkdirAll(path string) error {
	key := Normalize(path)
	s.vivifyAncestors(key)
	s.entries[key] = NewDirEntry(s.clock())
	storeLogger.Trace("Created directory %q with ancestors", key)
	return nil
}

// ReadDir lists the immediate child names under path. A key qualifies
// when it starts with the normalized path plus a separator; only the
// first segment of the remainder is kept, deduplicated, so a child
// directory contributes one name regardless of how many of its own
// descendants exist.
//
// The scan is purely prefix-based: a missing or non-directory path simply
// yields no matches. Callers must not rely on any particular order.
func (s *Store) ReadDir(path string) []string {
	prefix := Normalize(path) + "/"

	var names []string
	seen := make(map[string]bool)
	for key := range s.entries {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if i := strings.IndexByte(name, '/'); i >= 0 {
			name = name[:i]
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	storeLogger.Trace("ReadDir %q -> %d children", prefix, len(names))
	return names
}

// Rename moves the entry at oldPath to newPath. Renaming a directory also
// remaps every descendant key under it to the new prefix. Entries keep
// their mtimes; a rename is not a write. It fails with ErrNotFound if
// oldPath has no entry, and is permissive about whatever sits at the
// target.
func (s *Store) Rename(oldPath, newPath string) error {
	oldKey := Normalize(oldPath)
	newKey := Normalize(newPath)

	entry, exists := s.entries[oldKey]
	if !exists {
		storeLogger.Debug("Nothing to rename at %q", oldKey)
		return NewError(OpRename, oldKey, ErrNotFound)
	}
	if oldKey == newKey {
		return nil
	}

	storeLogger.Debug("Renaming %q -> %q", oldKey, newKey)
	delete(s.entries, oldKey)

	if entry.IsDir() {
		oldPrefix := oldKey + "/"
		newPrefix := newKey + "/"

		moved := make(map[string]Entry)
		for key, child := range s.entries {
			if strings.HasPrefix(key, oldPrefix) {
				moved[newPrefix+strings.TrimPrefix(key, oldPrefix)] = child
				delete(s.entries, key)
			}
		}
		for key, child := range moved {
			storeLogger.Trace("Remapped descendant: %q", key)
			s.entries[key] = child
		}
	}

	s.entries[newKey] = entry
	return nil
}

// Reset clears the entire mapping unconditionally. Irreversible within
// the Store's lifetime.
func (s *Store) Reset() {
	storeLogger.Debug("Resetting store (%d entries)", len(s.entries))
	s.entries = make(map[string]Entry)
}

// Entries exposes the live mapping. It is an escape hatch for tests that
// need to assert on entry internals (kind, content, mtime) directly;
// mutating the returned map mutates the store.
func (s *Store) Entries() map[string]Entry {
	return s.entries
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Walk visits every entry sorted by key and stops at the first error
// returned by fn.
func (s *Store) Walk(fn func(path string, entry Entry) error) error {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := fn(key, s.entries[key]); err != nil {
			return err
		}
	}
	return nil
}

// String renders the store contents sorted by key, one entry per line,
// directories marked with a trailing separator.
func (s *Store) String() string {
	var b strings.Builder
	_ = s.Walk(func(path string, entry Entry) error {
		if entry.IsDir() {
			fmt.Fprintf(&b, "%s/\n", path)
		} else {
			fmt.Fprintf(&b, "%s\n", path)
		}
		return nil
	})
	return b.String()
}
