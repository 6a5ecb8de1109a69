package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// StateFileName is the JSON document used by the file backend.
const StateFileName = "state.json"

const currentStateVersion = 1

// fileState is the on-disk layout of state.json.
type fileState struct {
	Version int                        `json:"version"`
	Items   map[string]json.RawMessage `json:"items"`
}

func defaultFileState() fileState {
	return fileState{
		Version: currentStateVersion,
		Items:   map[string]json.RawMessage{},
	}
}

func (s *fileState) normalize() {
	if s.Version == 0 {
		s.Version = currentStateVersion
	}
	if s.Items == nil {
		s.Items = map[string]json.RawMessage{}
	}
}

// FileStorage stores every key as a member of a single JSON document.
// Values must be valid JSON.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage returns a file backend rooted at path. The file and its
// directory are created on first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file.
func (f *FileStorage) Path() string {
	return f.path
}

func (f *FileStorage) GetItem(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return nil, err
	}
	v, ok := state.Items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (f *FileStorage) SetItem(key string, value []byte) error {
	if !json.Valid(value) {
		return errors.New("storage: file backend requires a JSON value")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return err
	}
	state.Items[key] = append(json.RawMessage(nil), value...)
	return f.save(state)
}

func (f *FileStorage) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := state.Items[key]; !ok {
		return nil
	}
	delete(state.Items, key)
	return f.save(state)
}

// load reads the document from disk. A missing, empty or corrupt file
// yields an empty document.
func (f *FileStorage) load() (*fileState, error) {
	state := defaultFileState()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return &state, nil
	} else if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return &state, nil
	}

	if err := json.Unmarshal(data, &state); err != nil {
		state = defaultFileState()
		return &state, nil
	}

	state.normalize()
	return &state, nil
}

// save writes the document through a temp file so readers never observe a
// partial write.
func (f *FileStorage) save(state *fileState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	state.normalize()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}
