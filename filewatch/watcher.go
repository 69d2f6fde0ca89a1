package filewatch

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/aguxez/foodpick/models"
)

// Importer receives the foods parsed from a CSV file.
type Importer interface {
	ImportFoods(title string, names []string) models.Group
}

// FileWatcher imports CSV food lists when they change on disk
type FileWatcher struct {
	importer Importer
	watcher  *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once

	// Imported, when set, is called after every successful import.
	Imported func(models.Group)
}

func NewFileWatcher(paths []string, imp Importer) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	for _, path := range paths {
		err = w.Add(path)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("watching %s: %w", path, err)
		}
	}

	return &FileWatcher{importer: imp, watcher: w, done: make(chan struct{})}, nil
}

// Start runs the event loop in the background until Close.
func (fw *FileWatcher) Start() {
	fw.wg.Add(1)
	go func() {
		defer fw.wg.Done()
		fw.Watch()
	}()
}

func (fw *FileWatcher) Watch() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if isCSV(event.Name) {
					log.Printf("Modified file: %s", event.Name)
					fw.HandleFileChange(event.Name)
				}
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Error: %v", err)
		}
	}
}

// HandleFileChange imports one CSV file. Parse errors are logged and the
// current foods are left alone.
func (fw *FileWatcher) HandleFileChange(path string) {
	if !isCSV(path) {
		return
	}
	foods, err := ParseFoods(path)
	if err != nil {
		log.Printf("Error parsing foods in %s: %v", path, err)
		return
	}
	g := fw.importer.ImportFoods(GroupTitle(path), foods)
	if fw.Imported != nil {
		fw.Imported(g)
	}
}

func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
		fw.wg.Wait()
	})
	return err
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
