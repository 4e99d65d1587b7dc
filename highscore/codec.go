package highscore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

// ErrMalformed reports a score file that does not follow the record layout
var ErrMalformed = errors.New("highscore: malformed score data")

// maxRecords bounds the declared count accepted on decode
const maxRecords = 1024

// Encode writes entries as little-endian int32 count followed by
// (int32 nameLength, name bytes, int32 score, int32 difficulty) records
// Names longer than MaxNameLength bytes are truncated
func Encode(w io.Writer, entries []Entry) error {
	if err := writeInt32(w, len(entries)); err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name
		if len(name) > constant.MaxNameLength {
			name = name[:constant.MaxNameLength]
		}
		if err := writeInt32(w, len(name)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, name); err != nil {
			return fmt.Errorf("write name: %w", err)
		}
		if err := writeInt32(w, e.Score); err != nil {
			return err
		}
		if err := writeInt32(w, int(e.Difficulty)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads records written by Encode, any short read or out-of-range field is ErrMalformed
func Decode(r io.Reader) ([]Entry, error) {
	count, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	if count < 0 || count > maxRecords {
		return nil, fmt.Errorf("%w: record count %d", ErrMalformed, count)
	}

	entries := make([]Entry, 0, count)
	name := make([]byte, constant.MaxNameLength)
	for i := int32(0); i < count; i++ {
		nameLen, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if nameLen < 0 || nameLen > constant.MaxNameLength {
			return nil, fmt.Errorf("%w: record %d name length %d", ErrMalformed, i, nameLen)
		}
		if _, err := io.ReadFull(r, name[:nameLen]); err != nil {
			return nil, fmt.Errorf("%w: record %d name: %v", ErrMalformed, i, err)
		}

		score, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		diff, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		d := core.Difficulty(diff)
		if !d.Valid() {
			return nil, fmt.Errorf("%w: record %d difficulty %d", ErrMalformed, i, diff)
		}

		entries = append(entries, Entry{
			Name:       string(name[:nameLen]),
			Score:      int(score),
			Difficulty: d,
		})
	}
	return entries, nil
}

func writeInt32(w io.Writer, v int) error {
	if err := binary.Write(w, binary.LittleEndian, int32(v)); err != nil {
		return fmt.Errorf("write int32: %w", err)
	}
	return nil
}

func readInt32(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}
