// Package stego implements LSB steganography over RGB pixel data
package stego

import (
	"bytes"

	"github.com/icza/bitio"
)

// BytesToBits expands data into one byte per bit, MSB first within each
// source byte. The result always has length len(data)*8.
func BytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	r := bitio.NewReader(bytes.NewReader(data))
	for {
		b, err := r.ReadBits(1)
		if err != nil {
			return bits
		}
		bits = append(bits, byte(b))
	}
}

// BitsToBytes packs bit values (0/1, one per byte) back into bytes, MSB
// first. A trailing group of fewer than 8 bits is dropped; all callers in
// this package pass byte-aligned spans.
func BitsToBytes(bits []byte) []byte {
	n := len(bits) - len(bits)%8
	var buf bytes.Buffer
	buf.Grow(n / 8)
	w := bitio.NewWriter(&buf)
	for _, bit := range bits[:n] {
		w.WriteBits(uint64(bit&1), 1)
	}
	w.Close()
	return buf.Bytes()
}
