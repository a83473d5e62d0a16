package zkvm

import (
	"encoding/binary"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

// Cursor is a forward-only, typed reader over a public-values byte stream,
// matching §6.2's "typed reader over committed public values." Reading past
// the end of the stream is always reported as an error, never a panic or
// garbage value — the reader's job is to make that condition a plain Go
// error the caller classifies as a decode-error Panic.
type Cursor struct {
	b   []byte
	pos int
}

func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

func (c *Cursor) ReadU32() (uint32, error) {
	if c.pos+4 > len(c.b) {
		return 0, fmt.Errorf("zkvm: public-values cursor: read u32 past end at offset %d (len=%d)", c.pos, len(c.b))
	}
	v := binary.LittleEndian.Uint32(c.b[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *Cursor) ReadU64() (uint64, error) {
	if c.pos+8 > len(c.b) {
		return 0, fmt.Errorf("zkvm: public-values cursor: read u64 past end at offset %d (len=%d)", c.pos, len(c.b))
	}
	v := binary.LittleEndian.Uint64(c.b[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadValues reads len(kinds) scalars in order, consuming 4 or 8 bytes per
// slot according to each declared kind. The core registry supplies kinds,
// so the reader never has to guess a slot's width.
func (c *Cursor) ReadValues(kinds []model.ValueKind) ([]model.Value, error) {
	out := make([]model.Value, 0, len(kinds))
	for i, kind := range kinds {
		switch kind {
		case model.KindU64:
			v, err := c.ReadU64()
			if err != nil {
				return nil, fmt.Errorf("zkvm: reading commit slot %d/%d: %w", i, len(kinds), err)
			}
			out = append(out, model.U64(v))
		default:
			v, err := c.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("zkvm: reading commit slot %d/%d: %w", i, len(kinds), err)
			}
			out = append(out, model.U32(v))
		}
	}
	return out, nil
}

// EncodeValues is the inverse of ReadValues: it serializes commits the same
// way a guest's public-values writer would, little-endian, 4 bytes per u32
// slot and 8 bytes per u64 slot. The fake executor uses this to manufacture
// a plausible public-values stream from the same pure core computation the
// native side already ran.
func EncodeValues(values []model.Value) []byte {
	buf := make([]byte, 0, 4*len(values))
	for _, v := range values {
		switch v.Kind {
		case model.KindU64:
			var tmp [8]byte
			binary.LittleEndian.PutUint64(tmp[:], v.U64)
			buf = append(buf, tmp[:]...)
		default:
			var tmp [4]byte
			binary.LittleEndian.PutUint32(tmp[:], v.U32)
			buf = append(buf, tmp[:]...)
		}
	}
	return buf
}
