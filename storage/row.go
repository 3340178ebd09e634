package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Row is the single schema this engine stores: an integer id and two
// bounded text fields. There is no variable-length encoding and no
// escaping — SerializeRow returns an error for a field longer than its
// fixed width rather than truncating it.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// SerializeRow packs row into dst using the fixed 291-byte layout
// (id | username | email), NUL-padding both text fields. dst must be
// exactly RowSize bytes.
func SerializeRow(row Row, dst []byte) error {
	if uint32(len(dst)) != RowSize {
		return fmt.Errorf("storage: SerializeRow: dst is %d bytes, want %d", len(dst), RowSize)
	}
	if len(row.Username) > int(UsernameSize) {
		return fmt.Errorf("storage: SerializeRow: username %q exceeds %d bytes", row.Username, UsernameSize)
	}
	if len(row.Email) > int(EmailSize) {
		return fmt.Errorf("storage: SerializeRow: email %q exceeds %d bytes", row.Email, EmailSize)
	}

	for i := range dst {
		dst[i] = 0
	}

	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], row.ID)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], row.Username)
	copy(dst[EmailOffset:EmailOffset+EmailSize], row.Email)
	return nil
}

// DeserializeRow unpacks a RowSize-byte record written by SerializeRow.
func DeserializeRow(src []byte) (Row, error) {
	if uint32(len(src)) != RowSize {
		return Row{}, fmt.Errorf("storage: DeserializeRow: src is %d bytes, want %d", len(src), RowSize)
	}

	id := binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize])
	username := nulTerminated(src[UsernameOffset : UsernameOffset+UsernameSize])
	email := nulTerminated(src[EmailOffset : EmailOffset+EmailSize])

	return Row{ID: id, Username: username, Email: email}, nil
}

func nulTerminated(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}
	return string(field)
}
