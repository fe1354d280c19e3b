package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files.
// Content is read through the owning filesystem so reads are counted.
type memoryFile struct {
	absPath string
	relPath string
	info    *memoryFileInfo
	fs      *MemoryFileSystem
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.fs.ReadFile(f.absPath)
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	// Sort by path for deterministic order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipped []string
	for _, entry := range entries {
		if underAny(entry.absPath, skipped) {
			continue
		}

		// Recover from panics in callback to prevent crashing the entire walk
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(entry, nil)
		}()

		if errors.Is(callbackErr, fs.SkipDir) {
			if entry.info.IsDir() {
				skipped = append(skipped, entry.absPath)
			}
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

func underAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It records how often each file is read and written and can be told to
// fail reads or writes for specific paths.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu         sync.Mutex
	files      map[string]*memoryFile // absolute path -> entry
	content    map[string][]byte      // absolute path -> file content
	reads      map[string]int
	writes     map[string]int
	readFails  map[string]error
	writeFails map[string]error
	root       string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:      make(map[string]*memoryFile),
		content:    make(map[string][]byte),
		reads:      make(map[string]int),
		writes:     make(map[string]int),
		readFails:  make(map[string]error),
		writeFails: make(map[string]error),
		root:       root,
	}

	mfs.files[root] = mfs.newDirEntry(root)
	return mfs
}

func (mfs *MemoryFileSystem) newDirEntry(absPath string) *memoryFile {
	relPath := "."
	if absPath != mfs.root {
		relPath = strings.TrimPrefix(absPath, mfs.root+"/")
	}
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		fs:      mfs,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// resolve maps a caller path to an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)

	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relPath,
		fs:      mfs,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.content[absPath] = []byte(content)

	mfs.ensureDirectoriesExist(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = mfs.newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// FailRead makes every subsequent read of filePath return err.
func (mfs *MemoryFileSystem) FailRead(filePath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.readFails[mfs.resolve(filePath)] = err
}

// FailWrite makes every subsequent write of filePath return err.
func (mfs *MemoryFileSystem) FailWrite(filePath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.writeFails[mfs.resolve(filePath)] = err
}

// ReadCount reports how many times filePath has been read.
func (mfs *MemoryFileSystem) ReadCount(filePath string) int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.reads[mfs.resolve(filePath)]
}

// WriteCount reports how many times filePath has been written.
func (mfs *MemoryFileSystem) WriteCount(filePath string) int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.writes[mfs.resolve(filePath)]
}

// Content returns the current content of filePath without counting a read.
func (mfs *MemoryFileSystem) Content(filePath string) (string, bool) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	data, ok := mfs.content[mfs.resolve(filePath)]
	return string(data), ok
}

// entriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	var entries []*memoryFile
	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	mfs.reads[absPath]++
	if err := mfs.readFails[absPath]; err != nil {
		return nil, err
	}

	data := mfs.content[absPath]
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile implements FileSystemProvider.WriteFile.
// Only existing files can be written; the tool never creates files.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)

	file, exists := mfs.files[absPath]
	if !exists {
		return fmt.Errorf("file not found: %s", filePath)
	}
	if file.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	mfs.writes[absPath]++
	if err := mfs.writeFails[absPath]; err != nil {
		return err
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	mfs.content[absPath] = stored
	file.info.size = int64(len(stored))
	file.info.modTime = time.Now()
	return nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	dir, exists := mfs.files[absPath]
	if !exists || !dir.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %s", dirPath)
	}

	var result []FileInfo
	for p, file := range mfs.files {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, file.info)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
