package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"

	"faqmatch/internal/domain"
	"faqmatch/internal/tfidf"
)

const (
	modelFile  = "model.csv"
	tokensFile = "word_list.csv"
	lockFile   = ".faqmatch.lock"

	idColumn = "id"
	idfRowID = "idf"
)

// ModelStore persists the trained model and the tokenized corpus as two CSV
// tables under dir. Writers hold an exclusive file lock and replace files
// via rename, so a concurrent reader never observes a half-written model.
type ModelStore struct {
	dir string
}

func NewModelStore(dir string) *ModelStore { return &ModelStore{dir: dir} }

// WriteModel encodes the model table: a header of "id" followed by every
// vocabulary term in column order, one reserved idf row, then one weight row
// per document keyed by its positional id.
func (s *ModelStore) WriteModel(m *tfidf.Model) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	lk := s.lock()
	if err := lk.Lock(); err != nil {
		return err
	}
	defer lk.Unlock()

	return replaceFile(filepath.Join(s.dir, modelFile), func(w *csv.Writer) error {
		header := make([]string, 0, len(m.Vocabulary)+1)
		header = append(header, idColumn)
		header = append(header, m.Vocabulary...)
		if err := w.Write(header); err != nil {
			return err
		}
		if err := w.Write(floatRow(idfRowID, m.IDF)); err != nil {
			return err
		}
		for id, row := range m.Matrix {
			if err := w.Write(floatRow(strconv.Itoa(id), row)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadModel decodes the table written by WriteModel. The header terms become
// the vocabulary in file order. A missing idf row, a row width mismatch or a
// non-numeric weight cell is a decode error.
func (s *ModelStore) ReadModel() (*tfidf.Model, error) {
	lk := s.lock()
	if err := lk.RLock(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelDecode, err)
	}
	defer lk.Unlock()

	f, err := os.Open(filepath.Join(s.dir, modelFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelDecode, err)
	}
	defer f.Close()

	// Default csv.Reader behavior already rejects rows narrower or wider
	// than the header.
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelDecode, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: model table needs a header and an idf row", domain.ErrModelDecode)
	}
	header := records[0]
	if header[0] != idColumn {
		return nil, fmt.Errorf("%w: first header column is %q, want %q", domain.ErrModelDecode, header[0], idColumn)
	}
	vocab := append([]string{}, header[1:]...)
	if records[1][0] != idfRowID {
		return nil, fmt.Errorf("%w: second row is %q, want the %q row", domain.ErrModelDecode, records[1][0], idfRowID)
	}
	idf, err := parseFloats(records[1][1:])
	if err != nil {
		return nil, fmt.Errorf("%w: idf row: %v", domain.ErrModelDecode, err)
	}
	matrix := make([][]float64, 0, len(records)-2)
	for i, rec := range records[2:] {
		if rec[0] != strconv.Itoa(i) {
			return nil, fmt.Errorf("%w: row %d is keyed %q", domain.ErrModelDecode, i, rec[0])
		}
		row, err := parseFloats(rec[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrModelDecode, i, err)
		}
		matrix = append(matrix, row)
	}
	return &tfidf.Model{Vocabulary: vocab, IDF: idf, Matrix: matrix}, nil
}

// WriteTokens persists one variable-width row of tokens per document, in
// corpus order. A document with no tokens is written as a single empty field
// so the CSV reader does not skip its line and shift every id after it.
func (s *ModelStore) WriteTokens(docs [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	lk := s.lock()
	if err := lk.Lock(); err != nil {
		return err
	}
	defer lk.Unlock()

	return replaceFile(filepath.Join(s.dir, tokensFile), func(w *csv.Writer) error {
		for _, doc := range docs {
			rec := doc
			if len(rec) == 0 {
				rec = []string{""}
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadTokens restores the tokenized corpus, preserving document order and
// per-document token order.
func (s *ModelStore) ReadTokens() ([][]string, error) {
	lk := s.lock()
	if err := lk.RLock(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelDecode, err)
	}
	defer lk.Unlock()

	f, err := os.Open(filepath.Join(s.dir, tokensFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelDecode, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelDecode, err)
	}
	docs := make([][]string, len(records))
	for i, rec := range records {
		if len(rec) == 1 && rec[0] == "" {
			docs[i] = []string{}
			continue
		}
		docs[i] = rec
	}
	return docs, nil
}

func (s *ModelStore) lock() *flock.Flock {
	return flock.New(filepath.Join(s.dir, lockFile))
}

func floatRow(id string, vals []float64) []string {
	rec := make([]string, 0, len(vals)+1)
	rec = append(rec, id)
	for _, v := range vals {
		rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return rec
}

func parseFloats(cells []string) ([]float64, error) {
	vals := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %q is not a number", i+1, cell)
		}
		vals[i] = v
	}
	return vals, nil
}

// replaceFile writes the table to a temp file in the target directory and
// renames it over path, so the previous version stays readable until the new
// one is complete.
func replaceFile(path string, fill func(*csv.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := fill(w); err != nil {
		tmp.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
