package compress

// ZstdCompressor provides Zstandard compression.
//
// The default build uses the pure-Go klauspost/compress/zstd implementation
// with pooled encoders and decoders. Building with -tags gozstd on a cgo
// toolchain switches to the valyala/gozstd bindings. Both produce standard
// zstd frames, so files written by the zstd CLI decode with either.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
