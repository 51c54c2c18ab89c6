package store

import (
	"bytes"
	"encoding/binary"

	"github.com/vmihailenco/msgpack/v4"
)

// MakeKey returns <prefix>:<id>, ids are big endian so keys sort in insert order
func MakeKey(prefix string, id uint64) []byte {
	var key bytes.Buffer
	key.WriteString(prefix)
	key.WriteByte(':')
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	key.Write(b[:])
	return key.Bytes()
}

// KeyID extracts the id from a key made by MakeKey
func KeyID(key []byte) uint64 {
	if len(key) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(key[len(key)-8:])
}

// EncodeStruct with msgpack
func EncodeStruct(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

// DecodeStruct with msgpack
func DecodeStruct(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
