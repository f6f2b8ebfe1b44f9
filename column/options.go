package column

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/nonmax/internal/compress"
)

// Compression selects the block compression used by Encode.
type Compression = compress.Type

// Supported compression algorithms.
const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

const (
	// DefaultBlockSize is the number of slots per compressed block.
	DefaultBlockSize = 64 * 1024

	// DefaultMaxSlots bounds the slot count Decode accepts.
	DefaultMaxSlots = 1 << 28
)

type codecOptions struct {
	compression Compression
	blockSize   int
	concurrency int
	maxSlots    int
	logger      *slog.Logger
}

func defaultCodecOptions() codecOptions {
	return codecOptions{
		compression: CompressionLZ4,
		blockSize:   DefaultBlockSize,
		concurrency: runtime.GOMAXPROCS(0),
		maxSlots:    DefaultMaxSlots,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// CodecOption configures Encode and Decode.
type CodecOption func(*codecOptions)

// WithCompression sets the block compression used by Encode. Decode reads
// the algorithm from the input and ignores this option.
func WithCompression(c Compression) CodecOption {
	return func(o *codecOptions) {
		o.compression = c
	}
}

// WithBlockSize sets the number of slots per block written by Encode.
// Values <= 0 keep the default.
func WithBlockSize(n int) CodecOption {
	return func(o *codecOptions) {
		if n > 0 {
			o.blockSize = n
		}
	}
}

// WithConcurrency bounds the number of blocks compressed or decompressed at
// once. Values <= 0 keep the default (GOMAXPROCS).
func WithConcurrency(n int) CodecOption {
	return func(o *codecOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithMaxSlots sets the largest slot count Decode accepts.
func WithMaxSlots(n int) CodecOption {
	return func(o *codecOptions) {
		o.maxSlots = n
	}
}

// WithLogger sets the logger for encode/decode summaries.
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) CodecOption {
	return func(o *codecOptions) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
