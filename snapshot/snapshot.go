// Package snapshot encodes selection masks into compact, process-local byte
// buffers, primarily to keep an undo history cheap when structures have
// millions of atoms. A snapshot is not a persistence format commitment;
// masks remain transient.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/maskgo/bitset"
)

// Compression selects the snapshot payload compression algorithm.
type Compression uint8

const (
	// None stores the raw block bytes.
	None Compression = 0
	// LZ4 uses LZ4 block compression (fast, good for hot undo stacks).
	LZ4 Compression = 1
	// ZSTD uses ZSTD block compression (better ratio for large masks).
	ZSTD Compression = 2
)

// ErrCorrupt is returned when a snapshot buffer fails structural validation.
var ErrCorrupt = errors.New("snapshot: corrupt data")

// Header layout, little-endian:
// [nbits uint64][compression uint8][uncompressedSize uint32][compressedSize uint32]
// compressedSize == 0 means the payload is stored uncompressed.
const headerSize = 8 + 1 + 4 + 4

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Encode serializes mask into a snapshot buffer using the given compression.
// If compression does not shrink the payload, the raw bytes are stored and
// the header's compressed size is zero.
func Encode(mask *bitset.Bitset, c Compression) ([]byte, error) {
	raw := maskBytes(mask)

	var compressed []byte
	var err error
	switch c {
	case None:
		// raw stored as-is
	case LZ4:
		compressed, err = compressLZ4(raw)
	case ZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(raw, nil)
		putZstdEncoder(enc)
	default:
		return nil, fmt.Errorf("snapshot: unknown compression type %d", c)
	}
	if err != nil {
		return nil, err
	}
	if len(compressed) == 0 || len(compressed) >= len(raw) {
		// Compression didn't help; store raw.
		compressed = nil
	}

	payload := raw
	compressedSize := uint32(0)
	if compressed != nil {
		payload = compressed
		compressedSize = uint32(len(compressed))
	}

	buf := make([]byte, headerSize+len(payload))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(mask.Len()))
	buf[8] = byte(c)
	binary.LittleEndian.PutUint32(buf[9:13], uint32(len(raw)))
	binary.LittleEndian.PutUint32(buf[13:17], compressedSize)
	copy(buf[headerSize:], payload)
	return buf, nil
}

// Decode reconstructs a mask from a snapshot buffer.
func Decode(buf []byte) (*bitset.Bitset, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: buffer shorter than header (%d bytes)", ErrCorrupt, len(buf))
	}
	nbits := binary.LittleEndian.Uint64(buf[0:8])
	c := Compression(buf[8])
	uncompressedSize := binary.LittleEndian.Uint32(buf[9:13])
	compressedSize := binary.LittleEndian.Uint32(buf[13:17])
	payload := buf[headerSize:]

	wantRaw := rawSize(int(nbits))
	if int(uncompressedSize) != wantRaw {
		return nil, fmt.Errorf("%w: payload size %d does not match %d bits", ErrCorrupt, uncompressedSize, nbits)
	}

	var raw []byte
	if compressedSize == 0 {
		if len(payload) != wantRaw {
			return nil, fmt.Errorf("%w: expected %d raw bytes, got %d", ErrCorrupt, wantRaw, len(payload))
		}
		raw = payload
	} else {
		if len(payload) != int(compressedSize) {
			return nil, fmt.Errorf("%w: expected %d compressed bytes, got %d", ErrCorrupt, compressedSize, len(payload))
		}
		var err error
		switch c {
		case LZ4:
			raw = make([]byte, wantRaw)
			var n int
			n, err = lz4.UncompressBlock(payload, raw)
			if err == nil && n != wantRaw {
				err = fmt.Errorf("short block: %d of %d bytes", n, wantRaw)
			}
		case ZSTD:
			dec := getZstdDecoder()
			raw, err = dec.DecodeAll(payload, nil)
			putZstdDecoder(dec)
			if err == nil && len(raw) != wantRaw {
				err = fmt.Errorf("short block: %d of %d bytes", len(raw), wantRaw)
			}
		case None:
			err = errors.New("compressed payload with compression type None")
		default:
			err = fmt.Errorf("unknown compression type %d", c)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}

	return maskFromBytes(int(nbits), raw), nil
}

func compressLZ4(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	bound := lz4.CompressBlockBound(len(raw))
	dst := make([]byte, bound)
	n, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: lz4 compression: %w", err)
	}
	// n == 0 means incompressible; caller falls back to raw.
	return dst[:n], nil
}

func rawSize(nbits int) int {
	byteSize := (nbits + 7) / 8
	return (byteSize + 7) / 8 * 8
}

func maskBytes(mask *bitset.Bitset) []byte {
	words := mask.Words()
	raw := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(raw[i*8:], w)
	}
	return raw
}

func maskFromBytes(nbits int, raw []byte) *bitset.Bitset {
	mask := bitset.New(nbits)
	words := mask.Words()
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}
	// Corrupt or foreign input may carry padding bits past nbits; clear them
	// so the mask keeps its canonical tail.
	if n := len(words); n > 0 {
		if r := uint(nbits) & 63; r != 0 {
			words[n-1] &= ^uint64(0) >> (64 - r)
		}
	}
	return mask
}
