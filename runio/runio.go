package runio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/sweeneyde/multimerge/record"
)

var (
	Uint64Size = int64(binary.Size(uint64(0)))
	Int64Size  = int64(binary.Size(int64(0)))
	// MagicBytes identify valid run files (RUN).
	MagicBytes           = []byte{0x52, 0x55, 0x4E}
	ErrInvalidMagicBytes = errors.New("runio: invalid magic bytes - not a valid run file")
)

// BinaryWriter handles writing length-prefixed binary data.
type BinaryWriter struct {
	w io.Writer
}

func NewBinaryWriter(w io.Writer) BinaryWriter {
	return BinaryWriter{w: w}
}

func (bw BinaryWriter) WriteString(s string) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, uint64(len(s))); err != nil {
		return 0, fmt.Errorf("runio: writing string length: %w", err)
	}

	n, err := bw.w.Write([]byte(s))
	if err != nil {
		return Uint64Size, fmt.Errorf("runio: writing string content: %w", err)
	}

	return Uint64Size + int64(n), nil
}

func (bw BinaryWriter) WriteInt64(i int64) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, i); err != nil {
		return 0, err
	}
	return Int64Size, nil
}

func (bw BinaryWriter) WriteBytes(b []byte) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, uint64(len(b))); err != nil {
		return 0, fmt.Errorf("runio: writing bytes length: %w", err)
	}

	n, err := bw.w.Write(b)
	if err != nil {
		return Uint64Size, fmt.Errorf("runio: writing bytes content: %w", err)
	}

	return Uint64Size + int64(n), nil
}

// BinaryReader handles reading length-prefixed binary data.
type BinaryReader struct {
	r io.Reader
}

func NewBinaryReader(r io.Reader) BinaryReader {
	return BinaryReader{r: r}
}

func (br BinaryReader) ReadString() (string, error) {
	var length uint64
	if err := binary.Read(br.r, binary.LittleEndian, &length); err != nil {
		return "", fmt.Errorf("runio: reading string length: %w", err)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return "", fmt.Errorf("runio: reading string content: %w", err)
	}
	return string(b), nil
}

func (br BinaryReader) ReadInt64() (int64, error) {
	var value int64
	err := binary.Read(br.r, binary.LittleEndian, &value)
	return value, err
}

func (br BinaryReader) ReadBytes() ([]byte, error) {
	var length uint64
	if err := binary.Read(br.r, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("runio: reading bytes length: %w", err)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return nil, fmt.Errorf("runio: reading bytes content: %w", err)
	}
	return b, nil
}

// Write writes a single record to the writer.
func Write(w io.Writer, rec record.Record) (int64, error) {
	if rec == nil {
		return 0, nil
	}

	var totalBytes int64

	mn, err := w.Write(MagicBytes)
	if err != nil {
		return int64(mn), fmt.Errorf("runio: writing magic bytes: %w", err)
	}
	totalBytes += int64(mn)

	bw := NewBinaryWriter(w)

	n, err := bw.WriteString(rec.GetID())
	if err != nil {
		return totalBytes, fmt.Errorf("runio: writing ID: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteInt64(rec.GetTimestamp().UnixNano())
	if err != nil {
		return totalBytes, fmt.Errorf("runio: writing timestamp: %w", err)
	}
	totalBytes += n

	n, err = bw.WriteBytes(rec.GetData())
	if err != nil {
		return totalBytes, fmt.Errorf("runio: writing data: %w", err)
	}
	totalBytes += n

	return totalBytes, nil
}

// Read reads a single record from the reader.
func Read(r io.Reader) (record.Record, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, MagicBytes) {
		return nil, ErrInvalidMagicBytes
	}

	br := NewBinaryReader(r)

	id, err := br.ReadString()
	if err != nil {
		return nil, fmt.Errorf("runio: reading ID: %w", err)
	}

	unixNano, err := br.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("runio: reading timestamp: %w", err)
	}

	data, err := br.ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("runio: reading data: %w", err)
	}

	return record.Entry{
		ID:        id,
		Timestamp: time.Unix(0, unixNano).UTC(),
		Data:      data,
	}, nil
}

// Seq iterates over the records in r. A clean end of input ends the
// sequence; any other failure is yielded so merge passes can surface
// it instead of silently truncating the run.
func Seq(r io.Reader) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for {
			rec, err := Read(r)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// ReadAll reads every record in r into a slice.
func ReadAll(r io.Reader) ([]record.Record, error) {
	var records []record.Record
	for rec, err := range Seq(r) {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Size calculates the total size in bytes that a record occupies when
// written, including magic bytes and length prefixes.
func Size(rec record.Record) int64 {
	if rec == nil {
		return 0
	}

	var totalSize int64

	totalSize += int64(len(MagicBytes))
	totalSize += Uint64Size + int64(len(rec.GetID()))
	totalSize += Int64Size
	totalSize += Uint64Size + int64(len(rec.GetData()))

	return totalSize
}
