package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies the compression algorithm of a block stream.
type Type uint8

const (
	// None stores blocks uncompressed.
	None Type = 0
	// LZ4 uses LZ4 block compression (fast, good for hot data).
	LZ4 Type = 1
	// ZSTD uses zstd (better ratio, good for cold data).
	ZSTD Type = 2
)

// String returns the algorithm name.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Valid reports whether t is a known algorithm.
func (t Type) Valid() bool {
	return t <= ZSTD
}

// HeaderSize is the size of a block header in bytes.
const HeaderSize = 8

// ErrCorrupt is returned when a block cannot be decoded.
var ErrCorrupt = errors.New("corrupt block")

// zstd encoder/decoder pools for efficiency
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

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Encode compresses data with t and returns it with a block header.
// If compression saves less than 10%, the block is stored raw.
func Encode(data []byte, t Type) ([]byte, error) {
	var packed []byte

	switch t {
	case None:
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		packed = buf[:n] // n == 0: incompressible
	case ZSTD:
		enc := getZstdEncoder()
		packed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("unknown compression %d", t)
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9 {
		out := make([]byte, HeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[HeaderSize:], data)
		return out, nil
	}

	out := make([]byte, HeaderSize+len(packed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(packed)))
	copy(out[HeaderSize:], packed)
	return out, nil
}

// Lengths returns the raw and packed lengths recorded in a block header.
func Lengths(header []byte) (raw, packed uint32, err error) {
	if len(header) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: header too small", ErrCorrupt)
	}
	return binary.LittleEndian.Uint32(header[0:]), binary.LittleEndian.Uint32(header[4:]), nil
}

// Decode reverses Encode. block must start with the header; t must be the
// algorithm the block was written with.
func Decode(block []byte, t Type) ([]byte, error) {
	raw, packed, err := Lengths(block)
	if err != nil {
		return nil, err
	}
	body := block[HeaderSize:]

	if packed == 0 {
		if uint64(len(body)) < uint64(raw) {
			return nil, fmt.Errorf("%w: block data too small", ErrCorrupt)
		}
		return body[:raw], nil
	}
	if uint64(len(body)) < uint64(packed) {
		return nil, fmt.Errorf("%w: compressed block data too small", ErrCorrupt)
	}
	body = body[:packed]
	out := make([]byte, raw)

	switch t {
	case LZ4:
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrCorrupt, err)
		}
		if uint32(n) != raw {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil
	case ZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(body, out[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != raw {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: packed block with compression %s", ErrCorrupt, t)
	}
}
