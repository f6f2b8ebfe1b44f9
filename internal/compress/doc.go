// Package compress implements self-describing block compression with LZ4
// and zstd.
//
// A block is laid out as:
//
//	[raw length u32][packed length u32][payload]
//
// A packed length of zero means the payload is stored as-is, either because
// no algorithm was requested or because compression did not pay off.
package compress
