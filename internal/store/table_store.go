package store

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
)

// TableStoreConfig configures a TableStore.
type TableStoreConfig struct {
	Dir             string
	Project         string
	Title           string
	GeneratedLayout string
	DirPermissions  os.FileMode
	Format          TableFormat
	Now             func() time.Time
}

// TableStore reads and re-renders the daily table file of one project.
type TableStore struct {
	dir             string
	project         string
	title           string
	generatedLayout string
	dirPerm         os.FileMode
	format          TableFormat
	now             func() time.Time
}

// NewTableStore creates a table store. The format defaults to xlsx.
func NewTableStore(cfg TableStoreConfig) *TableStore {
	s := &TableStore{
		dir:             cfg.Dir,
		project:         cfg.Project,
		title:           cfg.Title,
		generatedLayout: cfg.GeneratedLayout,
		dirPerm:         cfg.DirPermissions,
		format:          cfg.Format,
		now:             cfg.Now,
	}
	if s.format == nil {
		s.format = XLSXFormat{}
	}
	if s.generatedLayout == "" {
		s.generatedLayout = "02/01/2006 15:04:05"
	}
	if s.dirPerm == 0 {
		s.dirPerm = 0755
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Path returns the table file path.
func (s *TableStore) Path() string {
	return filepath.Join(s.dir, FileName(s.project, s.format.Extension()))
}

// Format returns the table format.
func (s *TableStore) Format() TableFormat {
	return s.format
}

// Load reads the current table. A missing file is an empty table. A file that
// can't be opened or read is a persistence error; one that is read but doesn't
// parse is a corrupt file error.
func (s *TableStore) Load() ([]domain.DailyRecord, error) {
	path := s.Path()
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return []domain.DailyRecord{}, nil
	}
	if err != nil {
		return nil, errors.NewPersistenceReadError(path, err)
	}

	records, err := s.format.Read(path)
	if err != nil {
		var pathErr *fs.PathError
		if stderrors.As(err, &pathErr) {
			return nil, errors.NewPersistenceReadError(path, err)
		}
		return nil, errors.NewCorruptFileError(path, err)
	}
	return records, nil
}

// Document builds the document rendered for records, stamped with the current time.
func (s *TableStore) Document(records []domain.DailyRecord) TableDocument {
	return TableDocument{
		Title:       s.title,
		GeneratedOn: s.now().Format(s.generatedLayout),
		Records:     records,
	}
}

// Save re-renders the whole table from records.
func (s *TableStore) Save(records []domain.DailyRecord) error {
	path := s.Path()
	if err := os.MkdirAll(s.dir, s.dirPerm); err != nil {
		return errors.NewPersistenceWriteError(path, err)
	}
	if err := s.format.Render(path, s.Document(records)); err != nil {
		return errors.NewPersistenceWriteError(path, err)
	}
	return nil
}

// Export renders records with renderer to path.
func (s *TableStore) Export(renderer Renderer, path string, records []domain.DailyRecord) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, s.dirPerm); err != nil {
			return errors.NewPersistenceWriteError(path, err)
		}
	}
	if err := renderer.Render(path, s.Document(records)); err != nil {
		return errors.NewPersistenceWriteError(path, err)
	}
	return nil
}
