// Package column stores dense sequences of optional non-max integers.
//
// A Column[T] is the slot-table shape that motivates the nonmax package:
// every slot is an nonmax.Option[T] with the width of T and no separate
// presence flag. A column of a million OptionU32 slots takes four
// megabytes, the same as a []uint32.
//
// # Persistence
//
// Encode and Decode implement a compact binary format:
//
//	[magic "NMXC"][version u8][width u8][signed u8][compression u8]
//	[slot count u32][block size u32]
//	[block]...
//
// Slots are written as their packed Option bits, little-endian, in blocks of
// a fixed number of slots. Each block is compressed independently (LZ4 or
// zstd) so encoding and decoding fan out across goroutines. None slots are
// zero bytes, so sparse columns compress well.
//
// JSON goes through codec.Default: present slots are numbers, None slots
// are null.
package column
