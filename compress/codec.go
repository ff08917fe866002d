package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arloliu/olsdiag/errs"
)

// maxDecodedSize caps the memory a single dataset file may expand to. Every
// codec enforces it.
var maxDecodedSize = 64 << 20

// readAllLimited reads r to EOF and returns errs.ErrDecodedTooLarge once more
// than maxDecodedSize bytes come out.
func readAllLimited(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(maxDecodedSize)+1))
	if err != nil {
		return nil, err
	}
	if len(out) > maxDecodedSize {
		return nil, fmt.Errorf("decoded size exceeds %d bytes: %w", maxDecodedSize, errs.ErrDecodedTooLarge)
	}

	return out, nil
}

// Type identifies a compression algorithm.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents no compression.
	TypeZstd Type = 0x2 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 represents LZ4 compression.
	TypeGzip Type = 0x5 // TypeGzip represents gzip compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	case TypeGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// extensionTypes maps lower-case file extensions to compression types.
var extensionTypes = map[string]Type{
	".zst":  TypeZstd,
	".zstd": TypeZstd,
	".s2":   TypeS2,
	".lz4":  TypeLZ4,
	".gz":   TypeGzip,
}

// TypeFromPath returns the compression type implied by the extension of path.
// Unknown extensions map to TypeNone.
func TypeFromPath(path string) Type {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}

	return TypeNone
}

// ParseType returns the compression type for a name such as "zstd" or "none".
// The match is case-insensitive.
func ParseType(name string) (Type, error) {
	for _, t := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4, TypeGzip} {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("compression %q: %w", name, errs.ErrUnsupportedCompression)
}

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is owned by the caller; the input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete payload.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	// It returns an error if the data is corrupted or uses another format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
	TypeGzip: NewGzipCompressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compression type %s (%d): %w", t, uint8(t), errs.ErrUnsupportedCompression)
}
