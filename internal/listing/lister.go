// Package listing enumerates the immediate children of a directory.
package listing

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

const (
	// readBatchSize bounds how many entries are fetched from the directory handle per read.
	readBatchSize = 256

	errorOpenDirectoryFormat = "reading directory '%s': %v"
	errorReadEntryFormat     = "reading entry '%s' in '%s': %v"
	errorReadBatchFormat     = "reading directory '%s': %w"
	errorNotDirectoryFormat  = "%s is not a directory"

	invalidNameMessage = "name is not valid UTF-8"
)

// Options configures a single enumeration pass.
type Options struct {
	ShowAll bool
	// Warn receives entries that were skipped. A nil Warn discards them.
	Warn func(entryError *EntryReadError)
}

// DirectoryOpenError reports that the target directory could not be opened for enumeration.
type DirectoryOpenError struct {
	Path string
	Err  error
}

func (openError *DirectoryOpenError) Error() string {
	return fmt.Sprintf(errorOpenDirectoryFormat, openError.Path, openError.Err)
}

func (openError *DirectoryOpenError) Unwrap() error {
	return openError.Err
}

// EntryReadError reports a single entry that was skipped.
type EntryReadError struct {
	Directory string
	Name      string
	Err       error
}

func (entryError *EntryReadError) Error() string {
	return fmt.Sprintf(errorReadEntryFormat, entryError.Name, entryError.Directory, entryError.Err)
}

func (entryError *EntryReadError) Unwrap() error {
	return entryError.Err
}

// Listing is a single-pass iterator over the names of a directory's children.
// It is not safe for concurrent use and cannot be restarted.
type Listing struct {
	path    string
	options Options
	handle  *os.File
	batch   []fs.DirEntry
	current string
	err     error
	done    bool
}

// Open prepares the directory at path for enumeration.
func Open(path string, options Options) (*Listing, error) {
	handle, openError := os.Open(path)
	if openError != nil {
		return nil, &DirectoryOpenError{Path: path, Err: openError}
	}
	info, statError := handle.Stat()
	if statError != nil {
		_ = handle.Close()
		return nil, &DirectoryOpenError{Path: path, Err: statError}
	}
	if !info.IsDir() {
		_ = handle.Close()
		return nil, &DirectoryOpenError{Path: path, Err: fmt.Errorf(errorNotDirectoryFormat, path)}
	}
	return &Listing{path: path, options: options, handle: handle}, nil
}

// Next advances to the next visible entry and reports whether one is available.
// Once Next returns false the directory handle has been released.
func (listing *Listing) Next() bool {
	if listing.done {
		return false
	}
	for {
		for len(listing.batch) > 0 {
			entry := listing.batch[0]
			listing.batch = listing.batch[1:]
			if name, ok := listing.accept(entry); ok {
				listing.current = name
				return true
			}
		}
		if !listing.fill() {
			listing.finish()
			return false
		}
	}
}

// Name returns the entry selected by the last successful call to Next.
func (listing *Listing) Name() string {
	return listing.current
}

// Err returns the first error that stopped enumeration early, if any.
func (listing *Listing) Err() error {
	return listing.err
}

// Close releases the directory handle. It is safe to call more than once.
func (listing *Listing) Close() error {
	if listing.handle == nil {
		listing.done = true
		return nil
	}
	closeError := listing.handle.Close()
	listing.handle = nil
	listing.batch = nil
	listing.done = true
	return closeError
}

func (listing *Listing) fill() bool {
	if listing.handle == nil || listing.err != nil {
		return false
	}
	entries, readError := listing.handle.ReadDir(readBatchSize)
	if readError != nil && !errors.Is(readError, io.EOF) {
		listing.err = fmt.Errorf(errorReadBatchFormat, listing.path, readError)
	}
	listing.batch = entries
	return len(entries) > 0
}

func (listing *Listing) finish() {
	if closeError := listing.Close(); closeError != nil && listing.err == nil {
		listing.err = fmt.Errorf(errorReadBatchFormat, listing.path, closeError)
	}
}

// accept applies the hidden-file filter and per-entry validation.
func (listing *Listing) accept(entry fs.DirEntry) (string, bool) {
	name := entry.Name()
	if !listing.options.ShowAll && IsHidden(name) {
		return "", false
	}
	if !utf8.ValidString(name) {
		listing.warn(name, errors.New(invalidNameMessage))
		return "", false
	}
	if _, infoError := entry.Info(); infoError != nil {
		listing.warn(name, infoError)
		return "", false
	}
	return name, true
}

func (listing *Listing) warn(name string, cause error) {
	if listing.options.Warn == nil {
		return
	}
	listing.options.Warn(&EntryReadError{Directory: listing.path, Name: name, Err: cause})
}

// List drains a fresh listing of path into a slice, in the order the operating system returned the entries.
func List(path string, options Options) ([]string, error) {
	listing, openError := Open(path, options)
	if openError != nil {
		return nil, openError
	}
	defer listing.Close()
	var names []string
	for listing.Next() {
		names = append(names, listing.Name())
	}
	if iterationError := listing.Err(); iterationError != nil {
		return names, iterationError
	}
	return names, nil
}
