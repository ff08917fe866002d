package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/olsdiag/errs"
)

func weatherJSON(records int) []byte {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i := range records {
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(&buf, `{"date":"2018-01-%02d","dewPoint":%.2f,"humidity":%.2f}`, i%28+1, 30+float64(i%40), 0.4+float64(i%50)/100)
	}
	buf.WriteString("]")

	return buf.Bytes()
}

func getAllCodecs() map[Type]Codec {
	return map[Type]Codec{
		TypeNone: NewNoOpCompressor(),
		TypeZstd: NewZstdCompressor(),
		TypeS2:   NewS2Compressor(),
		TypeLZ4:  NewLZ4Compressor(),
		TypeGzip: NewGzipCompressor(),
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{TypeNone, "None"},
		{TypeZstd, "Zstd"},
		{TypeS2, "S2"},
		{TypeLZ4, "LZ4"},
		{TypeGzip, "Gzip"},
		{Type(0x42), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.t.String())
	}
}

func TestTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Type
	}{
		{"weather.json", TypeNone},
		{"weather", TypeNone},
		{"data/weather.json.zst", TypeZstd},
		{"weather.json.ZSTD", TypeZstd},
		{"weather.json.s2", TypeS2},
		{"weather.json.lz4", TypeLZ4},
		{"/tmp/weather.json.gz", TypeGzip},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, TypeFromPath(tt.path))
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType("zstd")
	require.NoError(t, err)
	require.Equal(t, TypeZstd, got)

	got, err = ParseType("NONE")
	require.NoError(t, err)
	require.Equal(t, TypeNone, got)

	_, err = ParseType("brotli")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestGetCodec(t *testing.T) {
	for typ := range getAllCodecs() {
		codec, err := GetCodec(typ)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(Type(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"ten records":      weatherJSON(10),
		"thousand records": weatherJSON(1000),
		"single byte":      {'['},
	}

	for typ, codec := range getAllCodecs() {
		for name, payload := range payloads {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for typ, codec := range getAllCodecs() {
		t.Run(typ.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte("this is definitely not a compressed stream")

	for typ, codec := range getAllCodecs() {
		if typ == TypeNone {
			continue
		}
		t.Run(typ.String(), func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	payload := weatherJSON(200)

	for typ, codec := range getAllCodecs() {
		t.Run(typ.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 16)
			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					compressed, err := codec.Compress(payload)
					if err != nil {
						errCh <- err
						return
					}
					out, err := codec.Decompress(compressed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(payload, out) {
						errCh <- fmt.Errorf("%s: round trip mismatch", typ)
					}
				}()
			}
			wg.Wait()
			close(errCh)
			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestCompressedSmallerForRepetitiveJSON(t *testing.T) {
	payload := weatherJSON(1000)

	for typ, codec := range getAllCodecs() {
		if typ == TypeNone {
			continue
		}
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), typ.String())
	}
}

func TestDecompress_SizeLimit(t *testing.T) {
	saved := maxDecodedSize
	maxDecodedSize = 1024
	t.Cleanup(func() { maxDecodedSize = saved })

	payload := weatherJSON(100)
	require.Greater(t, len(payload), maxDecodedSize)

	// zstd decoders are pooled with the limit they were created with.
	for _, typ := range []Type{TypeS2, TypeLZ4, TypeGzip} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			out, err := codec.Decompress(compressed)
			require.Nil(t, out)
			require.ErrorIs(t, err, errs.ErrDecodedTooLarge)

			compressed, err = codec.Compress(payload[:maxDecodedSize])
			require.NoError(t, err)
			out, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload[:maxDecodedSize], out)
		})
	}
}
