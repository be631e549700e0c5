// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdrstream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/meridian-foundation/meridian/lib/xdr"
)

// recordMarker is set on the header of every record. A clear marker
// bit would indicate a continuation fragment, which this format never
// produces.
const recordMarker = 0x80000000

// maxRecordLength is the largest length representable in the low 31
// bits of a record header.
const maxRecordLength = 0x7FFFFFFF

// DefaultMaxRecordSize bounds how large a record the Reader will
// allocate for. Headers are attacker-controlled when reading
// downloaded history files, so the declared length is checked against
// this bound before any allocation. Callers with known-larger records
// can raise it with SetMaxRecordSize.
const DefaultMaxRecordSize = 32 << 20

// Reader reads length-prefixed XDR records from a stream.
type Reader struct {
	source        io.Reader
	gzip          *gzip.Reader
	maxRecordSize uint32
	header        [4]byte
}

// NewReader returns a Reader over an uncompressed record stream.
func NewReader(source io.Reader) *Reader {
	return &Reader{source: source, maxRecordSize: DefaultMaxRecordSize}
}

// NewGzipReader returns a Reader over a gzip-compressed record
// stream. It fails if the stream does not start with a gzip header.
// Close releases the decompressor; it does not close the underlying
// reader.
func NewGzipReader(source io.Reader) (*Reader, error) {
	decompressor, err := gzip.NewReader(source)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	return &Reader{
		source:        decompressor,
		gzip:          decompressor,
		maxRecordSize: DefaultMaxRecordSize,
	}, nil
}

// SetMaxRecordSize replaces the per-record size bound.
func (r *Reader) SetMaxRecordSize(limit uint32) {
	r.maxRecordSize = limit
}

// ReadRecord returns the next record's payload. It returns io.EOF at
// a clean end of stream, and io.ErrUnexpectedEOF when the stream ends
// inside a header or a record body.
func (r *Reader) ReadRecord() ([]byte, error) {
	if _, err := io.ReadFull(r.source, r.header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read record header: %w", err)
	}
	header := binary.BigEndian.Uint32(r.header[:])
	if header&recordMarker == 0 {
		return nil, fmt.Errorf("record header %#08x is missing the record marker bit", header)
	}
	length := header &^ uint32(recordMarker)
	if length > r.maxRecordSize {
		return nil, fmt.Errorf("record length %d exceeds limit %d", length, r.maxRecordSize)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r.source, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read %d-byte record: %w", length, err)
	}
	return payload, nil
}

// Decode reads the next record and unmarshals it into value. The
// record must contain exactly one value: trailing bytes inside the
// record are an error.
func (r *Reader) Decode(value xdr.Decodable) error {
	payload, err := r.ReadRecord()
	if err != nil {
		return err
	}
	return xdr.Unmarshal(payload, value)
}

// Close releases the decompressor, if any. The underlying reader is
// left open.
func (r *Reader) Close() error {
	if r.gzip == nil {
		return nil
	}
	return r.gzip.Close()
}

// Writer writes length-prefixed XDR records to a stream.
type Writer struct {
	dest io.Writer
	gzip *gzip.Writer
}

// NewWriter returns a Writer producing an uncompressed record stream.
func NewWriter(dest io.Writer) *Writer {
	return &Writer{dest: dest}
}

// NewGzipWriter returns a Writer producing a gzip-compressed record
// stream. Close must be called to flush the compressor; it does not
// close the underlying writer.
func NewGzipWriter(dest io.Writer) *Writer {
	compressor := gzip.NewWriter(dest)
	return &Writer{dest: compressor, gzip: compressor}
}

// WriteRecord writes one record with its framing header.
func (w *Writer) WriteRecord(payload []byte) error {
	if len(payload) > maxRecordLength {
		return fmt.Errorf("record length %d exceeds the 31-bit frame limit", len(payload))
	}
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload))|recordMarker)
	if _, err := w.dest.Write(header[:]); err != nil {
		return fmt.Errorf("write record header: %w", err)
	}
	if _, err := w.dest.Write(payload); err != nil {
		return fmt.Errorf("write %d-byte record: %w", len(payload), err)
	}
	return nil
}

// Encode marshals value and writes it as one record.
func (w *Writer) Encode(value xdr.Encodable) error {
	payload, err := xdr.Marshal(value)
	if err != nil {
		return err
	}
	return w.WriteRecord(payload)
}

// Close flushes and releases the compressor, if any. The underlying
// writer is left open.
func (w *Writer) Close() error {
	if w.gzip == nil {
		return nil
	}
	return w.gzip.Close()
}
