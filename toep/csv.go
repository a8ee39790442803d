package toep

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"github.com/jvlmdr/go-file/fileutil"
)

// SaveToeplitzExt saves a Toeplitz matrix to a file, choosing the format by
// extension: .csv as two records (column then row), anything else through
// fileutil (e.g. .json).
func SaveToeplitzExt(fname string, t *Toeplitz) error {
	switch path.Ext(fname) {
	case ".csv":
		return saveToeplitzCSV(fname, t)
	default:
		return fileutil.SaveExt(fname, t)
	}
}

// LoadToeplitzExt loads a Toeplitz matrix saved by SaveToeplitzExt.
func LoadToeplitzExt(fname string) (*Toeplitz, error) {
	switch path.Ext(fname) {
	case ".csv":
		return loadToeplitzCSV(fname)
	}
	var t *Toeplitz
	if err := fileutil.LoadExt(fname, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func saveToeplitzCSV(fname string, t *Toeplitz) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeToeplitzCSV(file, t)
}

func loadToeplitzCSV(fname string) (*Toeplitz, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeToeplitzCSV(file)
}

// EncodeToeplitzCSV writes two records, the first column then the first row.
func EncodeToeplitzCSV(w io.Writer, t *Toeplitz) error {
	ww := csv.NewWriter(w)
	if err := ww.Write(formatRecord(t.col)); err != nil {
		return err
	}
	if err := ww.Write(formatRecord(t.row)); err != nil {
		return err
	}
	ww.Flush()
	return ww.Error()
}

// DecodeToeplitzCSV reads the representation written by EncodeToeplitzCSV.
func DecodeToeplitzCSV(r io.Reader) (*Toeplitz, error) {
	rr := csv.NewReader(r)
	rr.FieldsPerRecord = -1
	col, err := readRecord(rr)
	if err != nil {
		return nil, err
	}
	row, err := readRecord(rr)
	if err != nil {
		return nil, err
	}
	return New(col, row)
}

// SaveVectorExt saves a vector, .csv as a single record or through fileutil.
func SaveVectorExt(fname string, x []float64) error {
	switch path.Ext(fname) {
	case ".csv":
		file, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer file.Close()
		ww := csv.NewWriter(file)
		if err := ww.Write(formatRecord(x)); err != nil {
			return err
		}
		ww.Flush()
		return ww.Error()
	default:
		return fileutil.SaveExt(fname, x)
	}
}

// LoadVectorExt loads a vector saved by SaveVectorExt.
func LoadVectorExt(fname string) ([]float64, error) {
	switch path.Ext(fname) {
	case ".csv":
		file, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		rr := csv.NewReader(file)
		rr.FieldsPerRecord = -1
		return readRecord(rr)
	}
	var x []float64
	if err := fileutil.LoadExt(fname, &x); err != nil {
		return nil, err
	}
	return x, nil
}

func formatRecord(x []float64) []string {
	rec := make([]string, len(x))
	for i, v := range x {
		rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return rec
}

func readRecord(rr *csv.Reader) ([]float64, error) {
	rec, err := rr.Read()
	if err != nil {
		return nil, err
	}
	x := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse field %d: %v", i, err)
		}
		x[i] = v
	}
	return x, nil
}

type toeplitzJSON struct {
	Col []float64
	Row []float64
}

func (t *Toeplitz) MarshalJSON() ([]byte, error) {
	return json.Marshal(toeplitzJSON{Col: t.col, Row: t.row})
}

// UnmarshalJSON decodes the generating vectors and rebuilds the cached
// transform state.
func (t *Toeplitz) UnmarshalJSON(p []byte) error {
	var v toeplitzJSON
	if err := json.Unmarshal(p, &v); err != nil {
		return err
	}
	u, err := New(v.Col, v.Row)
	if err != nil {
		return err
	}
	*t = *u
	return nil
}
