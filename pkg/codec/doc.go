// Package codec provides student record serialization and deserialization
// for gradefile.
//
// The codec package implements the binary record format used by gradefile
// to persist a single student record (id, name, grade point average) to a
// byte stream. The byte stream is the only persisted form of a record.
//
// # Record Format
//
// Records are serialized in a binary format with the following structure:
//
//	[ID(4)][GPA(8)][NameLen(4)][Name]
//
// Fields:
//   - ID: 32-bit signed integer student id (little-endian)
//   - GPA: 64-bit IEEE-754 double grade point average (little-endian)
//   - NameLen: 32-bit unsigned integer indicating name length in bytes (little-endian)
//   - Name: Variable-length name data, no terminator byte
//
// The total record size is: 16 bytes (header) + len(name)
//
// All widths and the byte order are fixed so that records written on one
// architecture decode identically on any other. This is a deliberate
// hardening over serializers that write platform-native integer widths
// and byte order.
//
// # Format Contract
//
// The format carries no magic number, schema tag or version byte. Decode
// assumes the byte stream was produced by the exact layout above; a byte
// stream produced by a different layout decodes into garbage rather than
// a detectable error. Any change to field order or widths is a new wire
// format, not a silent revision. Consumers must treat the table above as
// the external contract.
//
// Field values are not validated in either direction: negative ids, NaN
// or infinite grades, empty names and names containing NUL bytes are all
// legal and round-trip unchanged.
//
// # Usage
//
// Basic encoding and decoding:
//
//	codec := codec.NewStudentCodec()
//
//	// Encode a record
//	encoded, err := codec.Encode(codec.Student{ID: 101, Name: "Alice Smith", GPA: 3.85})
//	if err != nil {
//	    return err
//	}
//
//	// Decode a record
//	student, err := codec.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//
// The streaming forms EncodeTo and DecodeFrom work against io.Writer and
// io.Reader so records can be moved directly to and from files.
//
// # Error Handling
//
// Decoding a source that yields fewer bytes than the format requires, at
// any read step, fails with ErrTruncated. I/O errors from the underlying
// stream are surfaced to the caller wrapped; there is no retry and no
// partial-record result. Use errors.Is to distinguish truncation from
// transport failure.
//
// # Thread Safety
//
// StudentCodec instances hold no state and are safe for concurrent use.
// Each encode/decode call owns its byte source or sink exclusively for
// the duration of the call.
package codec
