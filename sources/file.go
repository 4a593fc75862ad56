package sources

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileSource streams a log file. In plain mode the file is read once,
// front to back. In follow mode the existing content is read first and
// the source then keeps delivering lines as the file grows, surviving
// rotation by rename or remove.
type FileSource struct {
	name      string
	path      string
	follow    bool
	file      *os.File
	watcher   *fsnotify.Watcher
	reader    *io.PipeReader
	writer    *io.PipeWriter
	closeChan chan struct{}
	wg        sync.WaitGroup
}

func NewFileSource(path string, follow bool) *FileSource {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// Fallback to original if Abs fails, though unlikely
		absPath = path
	}
	return &FileSource{
		name:      path,
		path:      absPath,
		follow:    follow,
		closeChan: make(chan struct{}),
	}
}

func (s *FileSource) Name() string {
	return s.name
}

func (s *FileSource) Close() error {
	select {
	case <-s.closeChan:
		return nil
	default:
		close(s.closeChan)
	}

	if !s.follow {
		if s.file != nil {
			return s.file.Close()
		}
		return nil
	}

	if s.writer != nil {
		s.writer.Close()
	}

	s.wg.Wait()

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *FileSource) Stream() (io.Reader, error) {
	if !s.follow {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, err
		}
		s.file = f
		return f, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %v", err)
	}
	s.watcher = watcher

	pr, pw := io.Pipe()
	s.reader = pr
	s.writer = pw

	s.wg.Add(1)
	go s.run(watcher, pw)

	return pr, nil
}

func (s *FileSource) run(watcher *fsnotify.Watcher, pw *io.PipeWriter) {
	defer s.wg.Done()
	defer pw.Close()

	var file *os.File
	buf := make([]byte, 4096)

	readUntilEOF := func() {
		if file == nil {
			return
		}
		for {
			n, err := file.Read(buf)
			if n > 0 {
				if _, wErr := pw.Write(buf[:n]); wErr != nil {
					return // Pipe closed
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				log.Printf("Error reading file %s: %v", s.path, err)
				return
			}
		}
	}

	openFile := func() {
		if file != nil {
			file.Close()
			file = nil
		}
		f, err := os.Open(s.path)
		if err == nil {
			file = f
			watcher.Add(s.path)
		}
	}

	// Unlike a pure tail, existing content is wanted too: the startup
	// banner sits at the top of the file.
	openFile()
	readUntilEOF()

	parent := filepath.Dir(s.path)
	if err := watcher.Add(parent); err != nil {
		log.Printf("Failed to watch parent directory %s: %v", parent, err)
	}

	// Ticker for retries (e.g. if file didn't exist initially or was
	// deleted and not recreated yet)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.closeChan:
			if file != nil {
				file.Close()
			}
			return

		case <-ticker.C:
			if file == nil {
				openFile()
				readUntilEOF()
			}
			// Ensure parent watch is active (idempotent)
			watcher.Add(parent)

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Name == s.path {
				if event.Has(fsnotify.Write) {
					readUntilEOF()
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					// File rotated. Read remaining content if any.
					readUntilEOF()
					if file != nil {
						file.Close()
						file = nil
					}
					// Wait for creation
				}
				if event.Has(fsnotify.Create) {
					openFile()
					readUntilEOF()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
