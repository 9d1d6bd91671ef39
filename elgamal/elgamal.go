// Package elgamal implements exponential ElGamal on top of the group
// package's GroupContext: key derivation, encryption, decryption (with or
// without a nonce), homomorphic addition, and threshold partial
// decryption/combination.
package elgamal

import (
	"github.com/takakv/electionguard-core/group"
)

// Keypair is an exponential ElGamal keypair: a secret exponent and the
// corresponding public key G^secret mod P.
type Keypair struct {
	Secret group.ElementModQ
	Public group.ElementModP
}

// KeypairFromSecret builds a keypair from an explicit secret. It fails
// with InvalidArgumentError if secret < 2.
func KeypairFromSecret(ctx *group.GroupContext, secret group.ElementModQ) (Keypair, error) {
	two := ctx.TwoModQ()
	cmp, err := secret.Compare(two)
	if err != nil {
		return Keypair{}, err
	}
	if cmp < 0 {
		return Keypair{}, newInvalidArgumentf("secret key must be >= 2")
	}
	public, err := ctx.GPowP(secret)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{Secret: secret, Public: public}, nil
}

// KeypairFromRandom draws a secret uniformly in [2, Q) via the context's
// secure RNG and builds a keypair from it.
func KeypairFromRandom(ctx *group.GroupContext) (Keypair, error) {
	secret := ctx.RandomElementModQ(2)
	return KeypairFromSecret(ctx, secret)
}

// Ciphertext is an exponential ElGamal ciphertext (pad, data), both
// expected to lie in the order-Q subgroup of Z_P* when honestly produced.
type Ciphertext struct {
	Pad  group.ElementModP
	Data group.ElementModP
}

// Encrypt encrypts message m under publicKey using nonce n. It fails with
// InvalidArgumentError if m < 0 or n == 0.
//
//	pad  = G^n mod P
//	data = G^m * publicKey^n mod P
func Encrypt(ctx *group.GroupContext, publicKey group.ElementModP, m int, n group.ElementModQ) (Ciphertext, error) {
	if m < 0 {
		return Ciphertext{}, newInvalidArgumentf("message must be non-negative, got %d", m)
	}
	zero := ctx.ZeroModQ()
	if eq, err := n.Compare(zero); err != nil {
		return Ciphertext{}, err
	} else if eq == 0 {
		return Ciphertext{}, newInvalidArgumentf("nonce must not be zero")
	}

	pad, err := ctx.GPowP(n)
	if err != nil {
		return Ciphertext{}, err
	}

	gPowM, err := ctx.GPowPSmall(m)
	if err != nil {
		return Ciphertext{}, err
	}

	mask, err := publicKey.PowP(n)
	if err != nil {
		return Ciphertext{}, err
	}

	data, err := gPowM.Multiply(mask)
	if err != nil {
		return Ciphertext{}, err
	}

	return Ciphertext{Pad: pad, Data: data}, nil
}

// EncryptRandom draws a nonce uniformly in [1, Q) and encrypts m under it.
func EncryptRandom(ctx *group.GroupContext, publicKey group.ElementModP, m int) (Ciphertext, group.ElementModQ, error) {
	n := ctx.RandomElementModQ(1)
	c, err := Encrypt(ctx, publicKey, m, n)
	return c, n, err
}

// Decrypt recovers the plaintext of c using the secret key. It returns
// false if the recovered exponent exceeds the DLog solver's cap.
//
//	blind = pad^secret mod P
//	gPowM = data / blind
func Decrypt(ctx *group.GroupContext, secret group.ElementModQ, c Ciphertext) (int, bool) {
	blind, err := c.Pad.PowP(secret)
	if err != nil {
		return 0, false
	}
	gPowM, err := c.Data.Divide(blind)
	if err != nil {
		return 0, false
	}
	return ctx.DLog(gPowM)
}

// DecryptWithNonce recovers the plaintext of c given the nonce it was
// encrypted with and the corresponding public key. It is equivalent to
// Decrypt for ciphertexts honestly produced by Encrypt(publicKey, m, n).
func DecryptWithNonce(ctx *group.GroupContext, publicKey group.ElementModP, c Ciphertext, n group.ElementModQ) (int, bool) {
	blind, err := publicKey.PowP(n)
	if err != nil {
		return 0, false
	}
	gPowM, err := c.Data.Divide(blind)
	if err != nil {
		return 0, false
	}
	return ctx.DLog(gPowM)
}

// Add computes the homomorphic sum of two ciphertexts produced under the
// same key: (pad1*pad2, data1*data2), which decrypts to m1+m2.
func Add(a, b Ciphertext) (Ciphertext, error) {
	pad, err := a.Pad.Multiply(b.Pad)
	if err != nil {
		return Ciphertext{}, err
	}
	data, err := a.Data.Multiply(b.Data)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{Pad: pad, Data: data}, nil
}

// Sum homomorphically adds every ciphertext in cs. It fails with
// InvalidArgumentError on an empty slice, since there is no neutral
// element available without a public key to derive Encrypt(0, 0) from.
func Sum(cs []Ciphertext) (Ciphertext, error) {
	if len(cs) == 0 {
		return Ciphertext{}, newInvalidArgumentf("cannot sum an empty list of ciphertexts")
	}
	acc := cs[0]
	var err error
	for _, c := range cs[1:] {
		acc, err = Add(acc, c)
		if err != nil {
			return Ciphertext{}, err
		}
	}
	return acc, nil
}

// PartialDecrypt computes one share-holder's partial decryption of c,
// pad^secret mod P.
func PartialDecrypt(secret group.ElementModQ, c Ciphertext) (group.ElementModP, error) {
	return c.Pad.PowP(secret)
}

// CombinePartialDecryptions recovers the plaintext of c given the partial
// decryptions from every share-holder whose secrets sum to the original
// secret key.
func CombinePartialDecryptions(ctx *group.GroupContext, c Ciphertext, partials []group.ElementModP) (int, bool) {
	if len(partials) == 0 {
		return 0, false
	}
	product := partials[0]
	for _, p := range partials[1:] {
		var err error
		product, err = product.Multiply(p)
		if err != nil {
			return 0, false
		}
	}
	gPowM, err := c.Data.Divide(product)
	if err != nil {
		return 0, false
	}
	return ctx.DLog(gPowM)
}

// CombinePublicKeys combines the public keys of a set of guardians into a
// single joint public key, by element-wise multiplication mod P.
func CombinePublicKeys(keys []group.ElementModP) (group.ElementModP, error) {
	if len(keys) == 0 {
		return group.ElementModP{}, newInvalidArgumentf("cannot combine an empty list of public keys")
	}
	combined := keys[0]
	for _, k := range keys[1:] {
		var err error
		combined, err = combined.Multiply(k)
		if err != nil {
			return group.ElementModP{}, err
		}
	}
	return combined, nil
}
