/*
Package utfrange interprets a buffer of UTF-8 encoded bytes as an ordered
sequence of Unicode code points without copying or modifying it.

# Overview

A [Range] is a non-owning view over caller-supplied bytes. It can:
  - Count code points with [Range.Size]
  - Validate the whole buffer with [Range.IsValid] / [Range.Err]
  - Iterate code points with [Range.Begin] / [Range.End] or [Range.All]

The decoder is strict. It accepts exactly the well-formed UTF-8 of the
Unicode Standard and reports anything else:
  - [InvalidLeadByte]: a byte that cannot start a sequence (0x80-0xC1, 0xF5-0xFF)
  - [TruncatedSequence]: the buffer ends inside a multi-byte sequence
  - [InvalidContinuationByte]: a byte outside 0x80-0xBF where one was expected
  - [OverlongEncoding]: a value encoded with more bytes than necessary
  - [DisallowedScalarValue]: a surrogate (U+D800-U+DFFF) or a value above U+10FFFF

Malformed bytes are never replaced with U+FFFD and never skipped. Iteration
stops at the first malformed sequence and exposes a [*DecodeError]; Size and
IsValid report the same error.

# Lifetime

A Range borrows its bytes. The caller must keep the buffer alive and
unmodified while the Range, or any [Iterator] obtained from it, is in use.

# Concurrency

The view is read-only and the decoder keeps no state, so any number of
goroutines may iterate the same Range concurrently, each with its own
Iterator. Size, Len, IsValid and Err compute their result once and are safe
for concurrent use.
*/
package utfrange
