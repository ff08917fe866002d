// Package compress provides the compression codecs used to read and write
// dataset files.
//
// Sample datasets are small JSON documents, but they are often shipped
// compressed next to the demo. The codec for a file is picked from its
// extension:
//
//	.zst, .zstd  Zstandard (klauspost/compress/zstd, or valyala/gozstd with -tags gozstd)
//	.s2          S2 stream format (klauspost/compress/s2)
//	.lz4         LZ4 frame format (pierrec/lz4/v4)
//	.gz          gzip (klauspost/compress/gzip)
//	anything else  no compression
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.TypeFromPath("weather.json.zst"))
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(data)
//
// All codecs are stateless values and safe for concurrent use; the zstd codec
// keeps pooled encoders and decoders internally.
package compress
