package column

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/nonmax"
	"github.com/hupe1980/nonmax/internal/compress"
	"github.com/hupe1980/nonmax/internal/conv"
)

const (
	magic      = "NMXC"
	version    = 1
	headerSize = 16
)

type header struct {
	width       uint8
	signed      bool
	compression Compression
	count       uint32
	blockSize   uint32
}

func (h header) marshal() []byte {
	b := make([]byte, headerSize)
	copy(b, magic)
	b[4] = version
	b[5] = h.width
	if h.signed {
		b[6] = 1
	}
	b[7] = uint8(h.compression)
	binary.LittleEndian.PutUint32(b[8:], h.count)
	binary.LittleEndian.PutUint32(b[12:], h.blockSize)
	return b
}

func readHeader(r io.Reader) (header, error) {
	var b [headerSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return header{}, fmt.Errorf("read header: %w", err)
	}
	if string(b[:4]) != magic {
		return header{}, ErrInvalidMagic
	}
	if b[4] != version {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, b[4])
	}
	if b[6] > 1 {
		return header{}, fmt.Errorf("%w: signedness flag %d", ErrCorrupt, b[6])
	}
	h := header{
		width:       b[5],
		signed:      b[6] == 1,
		compression: Compression(b[7]),
		count:       binary.LittleEndian.Uint32(b[8:]),
		blockSize:   binary.LittleEndian.Uint32(b[12:]),
	}
	if !h.compression.Valid() {
		return header{}, fmt.Errorf("%w: compression %s", ErrCorrupt, h.compression)
	}
	if h.count > 0 && h.blockSize == 0 {
		return header{}, fmt.Errorf("%w: zero block size", ErrCorrupt)
	}
	return h, nil
}

// blockRange returns the slot range [lo, hi) of block i.
func blockRange(i, blockSize, count int) (int, int) {
	lo := i * blockSize
	return lo, min(lo+blockSize, count)
}

// Encode writes c to w in the binary column format.
func Encode[T constraints.Integer](w io.Writer, c *Column[T], opts ...CodecOption) error {
	o := defaultCodecOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.compression.Valid() {
		return fmt.Errorf("unknown compression %s", o.compression)
	}

	count, err := conv.IntToUint32(c.Len())
	if err != nil {
		return fmt.Errorf("slot count: %w", err)
	}
	blockSize, err := conv.IntToUint32(o.blockSize)
	if err != nil {
		return fmt.Errorf("block size: %w", err)
	}
	width := conv.Bits[T]() / 8

	h := header{
		width:       uint8(width),
		signed:      conv.Signed[T](),
		compression: o.compression,
		count:       count,
		blockSize:   blockSize,
	}
	if _, err := w.Write(h.marshal()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	n := c.Len()
	numBlocks := (n + o.blockSize - 1) / o.blockSize
	blocks := make([][]byte, numBlocks)

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i := range numBlocks {
		g.Go(func() error {
			lo, hi := blockRange(i, o.blockSize, n)
			raw := make([]byte, 0, (hi-lo)*width)
			for _, s := range c.slots[lo:hi] {
				raw = appendBits(raw, s.Bits(), width)
			}
			blk, err := compress.Encode(raw, o.compression)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			blocks[i] = blk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	written := headerSize
	for i, blk := range blocks {
		if _, err := w.Write(blk); err != nil {
			return fmt.Errorf("write block %d: %w", i, err)
		}
		written += len(blk)
	}

	o.logger.Debug("column encoded",
		slog.Int("slots", n),
		slog.Int("blocks", numBlocks),
		slog.String("compression", o.compression.String()),
		slog.Int("raw_bytes", c.SizeBytes()),
		slog.Int("encoded_bytes", written),
	)
	return nil
}

// Decode reads a column written by Encode. The encoded element width and
// signedness must match T.
//
// Every packed pattern decodes to a valid Option, so a well-formed input
// cannot produce a slot holding the maximum of T.
func Decode[T constraints.Integer](r io.Reader, opts ...CodecOption) (*Column[T], error) {
	o := defaultCodecOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	width := conv.Bits[T]() / 8
	if int(h.width) != width || h.signed != conv.Signed[T]() {
		return nil, fmt.Errorf("%w: encoded width=%d signed=%t, want width=%d signed=%t",
			ErrTypeMismatch, h.width, h.signed, width, conv.Signed[T]())
	}

	n, err := conv.Uint32ToInt(h.count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLimitExceeded, err)
	}
	if n > o.maxSlots {
		return nil, fmt.Errorf("%w: %d slots (max %d)", ErrLimitExceeded, n, o.maxSlots)
	}
	if n == 0 {
		return New[T](0), nil
	}
	blockSize, err := conv.Uint32ToInt(h.blockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	numBlocks := (n-1)/blockSize + 1

	blocks := make([][]byte, numBlocks)
	for i := range blocks {
		lo, hi := blockRange(i, blockSize, n)
		want, err := conv.MulInt(hi-lo, width)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		blk, err := readBlock(r, want)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks[i] = blk
	}

	c := New[T](n)
	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, blk := range blocks {
		g.Go(func() error {
			raw, err := compress.Decode(blk, h.compression)
			if err != nil {
				return fmt.Errorf("block %d: %w: %w", i, ErrCorrupt, err)
			}
			lo, hi := blockRange(i, blockSize, n)
			for j := lo; j < hi; j++ {
				off := (j - lo) * width
				c.slots[j] = nonmax.OptionFromBits(readBits[T](raw[off : off+width]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Debug("column decoded",
		slog.Int("slots", n),
		slog.Int("blocks", numBlocks),
		slog.String("compression", h.compression.String()),
	)
	return c, nil
}

// readBlock reads one compressed block whose decoded size must be want.
func readBlock(r io.Reader, want int) ([]byte, error) {
	var hdr [compress.HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("read block header: %w", err)
	}
	raw, packed, err := compress.Lengths(hdr[:])
	if err != nil {
		return nil, err
	}
	if uint64(raw) != uint64(want) {
		return nil, fmt.Errorf("%w: block holds %d bytes, want %d", ErrCorrupt, raw, want)
	}
	// Encode only keeps packed payloads smaller than the raw data.
	if packed > raw {
		return nil, fmt.Errorf("%w: packed length %d exceeds raw length %d", ErrCorrupt, packed, raw)
	}
	size := raw
	if packed != 0 {
		size = packed
	}

	blk := make([]byte, compress.HeaderSize+int(size))
	copy(blk, hdr[:])
	if _, err := io.ReadFull(r, blk[compress.HeaderSize:]); err != nil {
		return nil, fmt.Errorf("read block: %w", err)
	}
	return blk, nil
}

func appendBits[T constraints.Integer](dst []byte, bits T, width int) []byte {
	v := uint64(bits)
	for i := range width {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

func readBits[T constraints.Integer](b []byte) T {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return T(v)
}
