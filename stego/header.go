package stego

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// Header layout embedded ahead of the payload:
// MAGIC (5) + name length (u16 BE) + payload length (u32 BE) + name bytes.
var headerMagic = []byte("STEG1")

const (
	headerFixedBytes = 11
	headerFixedBits  = headerFixedBytes * 8
	maxFilenameBytes = 65535
)

// PackHeader builds the wire header for a payload. The filename is UTF-8
// encoded and truncated to what the u16 length field can carry.
func PackHeader(filename string, payload []byte) []byte {
	name := []byte(filename)
	if len(name) > maxFilenameBytes {
		name = name[:maxFilenameBytes]
	}

	header := make([]byte, 0, headerFixedBytes+len(name))
	header = append(header, headerMagic...)
	header = binary.BigEndian.AppendUint16(header, uint16(len(name)))
	header = binary.BigEndian.AppendUint32(header, uint32(len(payload)))
	header = append(header, name...)
	return header
}

// UnpackHeader parses the header from the start of an extracted bitstream.
// It returns the embedded filename, the declared payload length in bytes,
// and the number of bits the header occupies.
func UnpackHeader(bits []byte) (filename string, payloadLen int, headerBits int, err error) {
	if len(bits) < headerFixedBits {
		return "", 0, 0, ErrHeaderTooShort
	}

	fixed := BitsToBytes(bits[:headerFixedBits])
	if !bytes.HasPrefix(fixed, headerMagic) {
		return "", 0, 0, ErrNoStegoHeader
	}

	nameLen := int(binary.BigEndian.Uint16(fixed[5:7]))
	payloadLen = int(binary.BigEndian.Uint32(fixed[7:headerFixedBytes]))

	headerBits = (headerFixedBytes + nameLen) * 8
	if len(bits) < headerBits {
		return "", 0, 0, ErrCorruptHeader
	}

	name := BitsToBytes(bits[headerFixedBits:headerBits])
	return decodeFilename(name), payloadLen, headerBits, nil
}

// decodeFilename is a lossy UTF-8 decode: each invalid byte becomes
// U+FFFD instead of aborting, so a garbled name never fails the decode.
func decodeFilename(name []byte) string {
	if utf8.Valid(name) {
		return string(name)
	}
	var sb bytes.Buffer
	for len(name) > 0 {
		r, size := utf8.DecodeRune(name)
		sb.WriteRune(r)
		name = name[size:]
	}
	return sb.String()
}
