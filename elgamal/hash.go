package elgamal

import (
	"crypto/sha256"
)

// HashCiphertext returns a cryptographic digest of c, computed over the
// canonical byte encodings of pad then data, the way voteproof.HashProof
// digests a sequence of group elements in the teacher repo.
func HashCiphertext(c Ciphertext) [32]byte {
	h := sha256.New()
	h.Write(c.Pad.Bytes())
	h.Write(c.Data.Bytes())
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
