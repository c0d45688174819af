package users

import (
	"encoding/binary"
	"hash/fnv"
)

// IssueToken derives the authorization token for a stored user. The token is
// a 64-bit FNV-1a digest over every field of the record, so the same stored
// credentials always produce the same token and any credential change
// invalidates previously issued ones.
func IssueToken(user User) uint64 {
	h := fnv.New64a()

	var id [8]byte
	binary.BigEndian.PutUint64(id[:], uint64(user.ID))
	h.Write(id[:])
	h.Write([]byte(user.Username))
	h.Write([]byte{0})
	h.Write([]byte(user.Password))

	return h.Sum64()
}
