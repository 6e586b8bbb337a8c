package progrock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/zerr"
)

// Journal is a progrock.Writer that keeps the output of every vertex in its
// own file, named after the vertex, below a directory. The directory holds
// the output of the latest run only: it is emptied on the first write.
type Journal struct {
	dir string

	mu       sync.Mutex
	prepared bool
	names    map[string]string
	files    map[string]*os.File
}

// NewJournal returns a Journal writing below dir.
func NewJournal(dir string) *Journal {
	return &Journal{
		dir:   dir,
		names: make(map[string]string),
		files: make(map[string]*os.File),
	}
}

// Dir returns the directory holding the output files.
func (j *Journal) Dir() string {
	return j.dir
}

// Path returns the output file of the vertex called name.
func (j *Journal) Path(name string) string {
	return filepath.Join(j.dir, fileName(name))
}

// WriteStatus appends logged output and closes the files of completed vertexes.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		j.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		f, err := j.open(l.Vertex)
		if err != nil {
			return err
		}
		if _, err := f.Write(l.Data); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", f.Name())
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		f, err := j.open(v.Id)
		if err != nil {
			return err
		}
		footer := "--- done\n"
		if v.Error != nil {
			footer = fmt.Sprintf("--- failed: %s\n", *v.Error)
		}
		_, werr := f.WriteString(footer)
		cerr := f.Close()
		delete(j.files, v.Id)
		if werr != nil || cerr != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, "failed to finish output file"), "path", f.Name())
		}
	}
	return nil
}

// Close closes the files of vertexes that never completed.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	var errs []error
	for id, f := range j.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(j.files, id)
	}
	if len(errs) > 0 {
		return zerr.Wrap(domain.ErrStoreWriteFailed, fmt.Sprint(errs))
	}
	return nil
}

func (j *Journal) prepare() error {
	if j.prepared {
		return nil
	}
	if err := os.RemoveAll(j.dir); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", j.dir)
	}
	if err := os.MkdirAll(j.dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", j.dir)
	}
	j.prepared = true
	return nil
}

func (j *Journal) open(id string) (*os.File, error) {
	if f, ok := j.files[id]; ok {
		return f, nil
	}
	if err := j.prepare(); err != nil {
		return nil, err
	}
	name, ok := j.names[id]
	if !ok {
		name = id
	}
	path := filepath.Join(j.dir, fileName(name))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path is below the state directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}
	j.files[id] = f
	return f, nil
}

// fileName maps a vertex name to a file name inside the journal directory.
func fileName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "_"
	}
	return name + ".log"
}
