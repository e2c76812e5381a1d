package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Student represents a single student record
type Student struct {
	ID   int32   // Student identifier
	Name string  // Student name, UTF-8 assumed but not validated
	GPA  float64 // Grade point average
}

// HeaderSize is the fixed portion of an encoded record:
// ID(4) + GPA(8) + NameLen(4) = 16 bytes
const HeaderSize = 16

// Errors
var (
	ErrTruncated   = &CodecError{"truncated input"}
	ErrNameTooLong = &CodecError{"name too long to encode"}
)

// CodecError represents a record encoding or decoding error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}

// StudentCodec handles serialization and deserialization of student records
type StudentCodec struct{}

// NewStudentCodec creates a new student codec instance
func NewStudentCodec() *StudentCodec {
	return &StudentCodec{}
}

// Encode serializes a student into the binary record format
// Format: [ID(4)][GPA(8)][NameLen(4)][Name]
//
// Field values are not validated: negative ids, NaN grades and empty
// names all encode as-is.
func (c *StudentCodec) Encode(s Student) ([]byte, error) {
	if uint64(len(s.Name)) > math.MaxUint32 {
		return nil, ErrNameTooLong
	}

	buf := make([]byte, c.Size(s))

	binary.LittleEndian.PutUint32(buf[0:], uint32(s.ID))
	binary.LittleEndian.PutUint64(buf[4:], math.Float64bits(s.GPA))
	binary.LittleEndian.PutUint32(buf[12:], uint32(len(s.Name)))
	copy(buf[HeaderSize:], s.Name)

	return buf, nil
}

// Decode deserializes a binary record into a Student
//
// Decode fails with ErrTruncated if data is shorter than the fixed
// header or than the header plus the declared name length. No partial
// record is returned on failure.
func (c *StudentCodec) Decode(data []byte) (*Student, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("record header: have %d of %d bytes: %w", len(data), HeaderSize, ErrTruncated)
	}

	nameLen := binary.LittleEndian.Uint32(data[12:16])
	if uint64(len(data)) < HeaderSize+uint64(nameLen) {
		return nil, fmt.Errorf("name data: have %d of %d bytes: %w", len(data)-HeaderSize, nameLen, ErrTruncated)
	}

	return &Student{
		ID:   int32(binary.LittleEndian.Uint32(data[0:4])),
		GPA:  math.Float64frombits(binary.LittleEndian.Uint64(data[4:12])),
		Name: string(data[HeaderSize : HeaderSize+int(nameLen)]),
	}, nil
}

// EncodeTo writes one encoded record to w.
// Write errors from the underlying sink are returned wrapped.
func (c *StudentCodec) EncodeTo(w io.Writer, s Student) error {
	data, err := c.Encode(s)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// DecodeFrom reads one encoded record from r.
//
// A source that runs out of bytes at any read step fails with
// ErrTruncated. Other read errors are returned wrapped.
func (c *StudentCodec) DecodeFrom(r io.Reader) (*Student, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("record header: %w", ErrTruncated)
		}
		return nil, fmt.Errorf("read record header: %w", err)
	}

	nameLen := binary.LittleEndian.Uint32(header[12:16])
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("name data: want %d bytes: %w", nameLen, ErrTruncated)
		}
		return nil, fmt.Errorf("read name data: %w", err)
	}

	return &Student{
		ID:   int32(binary.LittleEndian.Uint32(header[0:4])),
		GPA:  math.Float64frombits(binary.LittleEndian.Uint64(header[4:12])),
		Name: string(name),
	}, nil
}

// Size returns the total size of the record when encoded
func (c *StudentCodec) Size(s Student) int {
	return HeaderSize + len(s.Name)
}
