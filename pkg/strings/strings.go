// Package strings provides pooled string building utilities for dataprep
package strings

import (
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

// BytesToString converts byte slice to string without allocation
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// StringToBytes converts string to byte slice without allocation
// WARNING: The returned byte slice shares memory with the string.
// Do not modify the returned slice.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Clone returns a copy of s backed by freshly allocated memory.
// Use it before retaining a string built from pooled buffers.
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, s)
	return BytesToString(b)
}

// Builder provides efficient string building backed by a reusable buffer
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder
func NewBuilder(capacity int) *Builder {
	return &Builder{
		buf: make([]byte, 0, capacity),
	}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Write implements io.Writer
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the built string using zero-copy conversion
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Len returns the number of bytes written so far
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset clears the builder for reuse without freeing its buffer
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// BuilderSize selects a pooled builder bucket
type BuilderSize int

const (
	Small  BuilderSize = iota // < 1KB
	Medium                    // 1KB - 16KB
	Large                     // 16KB+
)

var (
	smallBuilderPool = sync.Pool{
		New: func() interface{} { return NewBuilder(512) },
	}
	mediumBuilderPool = sync.Pool{
		New: func() interface{} { return NewBuilder(4 * 1024) },
	}
	largeBuilderPool = sync.Pool{
		New: func() interface{} { return NewBuilder(32 * 1024) },
	}
)

// GetBuilder retrieves a pooled builder of the given size class
func GetBuilder(size BuilderSize) *Builder {
	var b *Builder
	switch size {
	case Medium:
		b = mediumBuilderPool.Get().(*Builder)
	case Large:
		b = largeBuilderPool.Get().(*Builder)
	default:
		b = smallBuilderPool.Get().(*Builder)
	}
	b.Reset()
	return b
}

// PutBuilder returns a builder to its pool
func PutBuilder(b *Builder, size BuilderSize) {
	switch size {
	case Medium:
		mediumBuilderPool.Put(b)
	case Large:
		largeBuilderPool.Put(b)
	default:
		smallBuilderPool.Put(b)
	}
}

// Sprintf formats using a pooled builder instead of allocating through fmt.Sprintf
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	estimatedSize := len(format) + len(args)*16

	size := Small
	if estimatedSize > 16*1024 {
		size = Large
	} else if estimatedSize > 1024 {
		size = Medium
	}

	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	fmt.Fprintf(builder, format, args...)

	return Clone(builder.String())
}

// Join joins strings with a delimiter using a pooled builder
func Join(parts []string, delimiter string) string {
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}

	total := len(delimiter) * (len(parts) - 1)
	for _, p := range parts {
		total += len(p)
	}

	size := Small
	if total > 16*1024 {
		size = Large
	} else if total > 1024 {
		size = Medium
	}

	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	builder.WriteString(parts[0])
	for _, p := range parts[1:] {
		builder.WriteString(delimiter)
		builder.WriteString(p)
	}

	return Clone(builder.String())
}

// TrimSpace returns s with leading and trailing Unicode whitespace removed.
// The result aliases s; no allocation occurs. Interior whitespace is untouched.
func TrimSpace(s string) string {
	start := 0
	for start < len(s) {
		r, width := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += width
	}

	end := len(s)
	for end > start {
		r, width := utf8.DecodeLastRuneInString(s[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= width
	}

	return s[start:end]
}
