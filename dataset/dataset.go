package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arloliu/olsdiag/compress"
	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/internal/hash"
	"github.com/arloliu/olsdiag/internal/options"
	"github.com/arloliu/olsdiag/internal/pool"
	"github.com/arloliu/olsdiag/regression"
)

// Record is one observation mapped to plot coordinates.
type Record struct {
	X float64
	Y float64
}

// Dataset is a loaded, truncated set of observations.
type Dataset struct {
	// Source is the file path, or empty when decoded from memory.
	Source string
	// XField and YField are the JSON fields the coordinates came from.
	XField string
	YField string
	// Records holds the kept observations in file order.
	Records []Record
	// Total is the number of records in the file before truncation.
	Total int
}

// Load reads, decompresses and decodes the dataset file at path.
//
// The compression codec is picked from the file extension unless
// WithCompression is given.
func Load(path string, opts ...Option) (*Dataset, error) {
	cfg := defaultLoadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	defer f.Close()

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	ct := cfg.Compression
	if ct == 0 {
		ct = compress.TypeFromPath(path)
	}
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	ds, err := decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	ds.Source = path

	return ds, nil
}

// Decode parses an uncompressed JSON dataset. WithCompression is ignored.
func Decode(data []byte, opts ...Option) (*Dataset, error) {
	cfg := defaultLoadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return decode(data, cfg)
}

func decode(data []byte, cfg LoadConfig) (*Dataset, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidDataset, err)
	}

	kept := len(objects)
	if cfg.Limit > 0 && cfg.Limit < kept {
		kept = cfg.Limit
	}

	records := make([]Record, kept)
	for i := range kept {
		x, err := numberField(objects[i], cfg.XField)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		y, err := numberField(objects[i], cfg.YField)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = Record{X: x, Y: y}
	}

	return &Dataset{
		XField:  cfg.XField,
		YField:  cfg.YField,
		Records: records,
		Total:   len(objects),
	}, nil
}

func numberField(obj map[string]json.RawMessage, field string) (float64, error) {
	raw, ok := obj[field]
	if !ok {
		return 0, fmt.Errorf("missing field %q: %w", field, errs.ErrInvalidDataset)
	}

	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return 0, fmt.Errorf("field %q is not a number: %w", field, errs.ErrInvalidDataset)
	}

	return *v, nil
}

// Len returns the number of kept records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Sample returns the kept records as a fresh regression sample.
func (d *Dataset) Sample() regression.Sample {
	s := regression.Sample{
		X: make([]float64, len(d.Records)),
		Y: make([]float64, len(d.Records)),
	}
	for i, r := range d.Records {
		s.X[i] = r.X
		s.Y[i] = r.Y
	}

	return s
}

// Fingerprint returns the xxHash64 of the kept coordinates. Two datasets with
// the same points in the same order share a fingerprint.
func (d *Dataset) Fingerprint() uint64 {
	s := d.Sample()

	return hash.Floats(s.X, s.Y)
}

// String returns a short description of the dataset.
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset{Source: %q, Fields: %s/%s, Records: %d of %d, Fingerprint: %016x}",
		d.Source, d.XField, d.YField, len(d.Records), d.Total, d.Fingerprint())
}
