package memfs

import "time"

// Entry is a single record in the store: either a file with content or a
// directory. The only implementations are *FileEntry and *DirEntry, so a
// type switch over those two is exhaustive.
type Entry interface {
	// ModTime returns the time the entry was last written.
	ModTime() time.Time

	// IsDir reports whether the entry is a directory.
	IsDir() bool

	sealed()
}

// FileEntry is the file variant of Entry. Content is only reachable here,
// never on a directory.
type FileEntry struct {
	content string
	modTime time.Time
}

// NewFileEntry returns a file entry with the given content and mtime.
func NewFileEntry(content string, modTime time.Time) *FileEntry {
	return &FileEntry{content: content, modTime: modTime}
}

// Content returns the file's content string.
func (e *FileEntry) Content() string { return e.content }

// ModTime returns the time the file was last written.
func (e *FileEntry) ModTime() time.Time { return e.modTime }

// IsDir reports false for files.
func (e *FileEntry) IsDir() bool { return false }

func (e *FileEntry) sealed() {}

// DirEntry is the directory variant of Entry. Directories carry no content.
type DirEntry struct {
	modTime time.Time
}

// NewDirEntry returns a directory entry with the given mtime.
func NewDirEntry(modTime time.Time) *DirEntry {
	return &DirEntry{modTime: modTime}
}

// ModTime returns the time the directory entry was created or last replaced.
func (e *DirEntry) ModTime() time.Time { return e.modTime }

// IsDir reports true for directories.
func (e *DirEntry) IsDir() bool { return true }

func (e *DirEntry) sealed() {}
