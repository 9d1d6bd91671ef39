package group

import (
	"math/big"
	"strings"
)

// parameters bundles the fixed (P, Q, G, R) quadruple a GroupContext is
// built from. Hex strings are whitespace-formatted the way the teacher
// repo's RFC3526 constant is, purely for readability; parseHex strips all
// whitespace before parsing.
type parameters struct {
	p *big.Int
	q *big.Int
	g *big.Int
	r *big.Int
}

func parseHex(s string) *big.Int {
	repr := strings.Join(strings.Fields(s), "")
	v, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("electionguard-core: invalid hex constant")
	}
	return v
}

// productionParameters returns the fixed 4096-bit P / 256-bit Q parameter
// set. Q = 2^256 - 189, matching spec.md's named constant.
func productionParameters() parameters {
	p := parseHex(`
		f6b0aba8 be9eed31 29f8aaea 1308ee7a e26db1c5 0e901739
		807a1e76 1eff079b 18ad5dde 6df1d9bf ee85670f 6eb99c8d
		987d57ae 48775541 d32cbf2e eef0f551 9a6f6c50 2cb57204
		c082c33b 9de93948 63174d7d 7b3ffb17 1d925cc1 2bd56b87
		7127e0cc f408d093 9517a260 8f0ef08d 574b60a3 19088619
		7e5ed4d2 0c2ed2cc 924bc0ca 073ac136 c796e380 5b804771
		394ec0bb 1ca430d6 e6506ab0 25113e05 2644f51c 286ee85b
		27132dd2 4f44c3e6 82530329 898e6c25 ef147b37 463fc663
		394b51a5 15356b0c 3d876384 68e5a490 1584bcc3 bfe068c0
		8b7ff994 7da9ebdc 2d014fb5 11739c67 fd46da86 8102590e
		8e5de667 9b09fb56 753168de 6e401e1f d30b65a1 d33a4274
		b148727a 04a56191 ec812d63 3853fbe6 912a578d a8c2c3f9
		0f0cd0cb 41b126e4 67eef200 cf623311 f1e791cb fbce1856
		3c6e9a25 f40ce995 2aa27980 f3b4cc75 f7aa720d 8c394457
		5aa1b177 dcb46550 e094e864 de7c5a15 728db771 a11ebc20
		ab006c33 2ed2d342 d9230687 ed40df40 0280f53a 1b4d98f6
		1264d5fa ab53ba21 715a30c5 414940a8 f1082ae5 02268373
		e229a39a 36822bde 63c53dad 3a6327f3 a3b0d594 da7969b3
		720a8f75 9741fd65 e081dc91 a0adef4e 17651fc7 fe057b73
		e7f3d131 4be3772e 30367ee0 379b92c0 f9b88eb4 3bd3137a
		afb1ec3f 0f7f521a d806fd7c a28312a8 5ba58690 1c0dc579
		1454d5e6 8715a493
		`)
	q := parseHex(`
		ffffffff ffffffff ffffffff ffffffff ffffffff ffffffff
		ffffffff ffffff43
		`)
	g := parseHex(`
		ef795a58 9bf2117b d435c357 e1ce0358 b461c380 057fb1b3
		a32b1184 b5edec53 9ac2d4ee 9e6a9152 934558ba 637ff4bc
		65390a9d ba8a1c9c 37a36044 392d4eb0 a4333aec 00dfad0f
		2b5ad342 ad771a2f fd0b630f 6a682086 fef36966 3c50a459
		e8d968e6 714c3180 d073fbd1 ac1dc8bb 999252ac a61be44d
		d50058e8 403a5bbd 660575de d7efa01d a548daba 15f6c8b2
		0db86100 05bdd692 26a42951 aef3c612 a7229558 c5267f3b
		a1176425 53d94148 7baaeacb b3ffde20 62c3db45 a52b2d37
		58991c75 810a6a39 dd78e658 ad83919e 980084e1 c2bd6209
		bb652aad ea21c88c 11a9d637 f879b55b 0da0d49c 5f260121
		ea45a2ad de667b21 626615d9 15f0d420 aedf0ddb 48e27e60
		d98f99c6 e6445af8 84fbd0f6 d8ec2b1a f34ae429 7f461cd9
		66c2e9be 25c79239 aa4344cf 96a4b2cd 62f1e351 084c0070
		9c3b8559 be83fc89 f5624d68 1280b761 5ee7c8f3 7d5ddb45
		e2f433be f5c3c39b f505cd56 888c31f6 f38cd745 465b86cc
		325c4115 0026760b e30ef838 a631cfcb a442d7e2 90ca9be9
		ca76ee29 a2dadf86 cf7dd27e 55570ee7 845e174d a71ef748
		d1079dcb 57b1da11 78d082d3 f1879a2a 9c1b36a5 22bf363f
		089be89a 67445de9 508d189a 6a7664ae 9358790e 5d97a6b7
		aacaddb7 3db723f7 c63bcd29 8d7eba9c a463bf20 c343cc5e
		576dea6b f9c9414f c6005de9 b2281425 305e4780 55cdf24a
		1c06aa79 397a3915
		`)
	r := parseHex(`
		f6b0aba8 be9eed31 29f8aaea 1308ee7a e26db1c5 0e901739
		807a1e76 1eff0851 391c1973 2946f70b eb1b95df 7c51ad46
		c379962a 08d87ab5 ad553c63 d13a1948 c42e3655 a619d5d1
		53e0693a 66362686 b3db2a86 03129338 157ff272 a3ba1640
		4745fe08 951bac1e 81c5527e 05096200 2019c593 5dbf3681
		5dd4d374 ec914041 30f84d20 1ca8d3bc 9644ca8a 136da188
		ec559e87 52cf6e59 2c708802 cc4dae26 4d95e5d1 51133a96
		17dcb5c2 a73505fc fd890d11 acb2e3fb be28e548 1b9958aa
		80f5fd2d f067abdb db799439 db0b1057 43b362d0 3ff2b99b
		efb13fd0 dde061bd 629d3a9f 8dfd7db9 0609493d 382d697b
		89cdda26 d13d0376 6b0d8612 3ce846f1 a11fad6d a760140e
		262384ac 7e2c41c6 a97b3c0b b25f8a53 9a265304 a03f245d
		036fdabf d39ff556 9027e559 f60ec2bd 11e2e66e ac57380f
		0ab9e490 42aac240 b436f920 30cced5e 651ec578 351f09ed
		8f25d12d 1918c86b cbd2a6e6 168dc3da 7f23a435 a869fad1
		52b835f2 66bd27a5 880e74d3 748cd6d5 7d062d18 c1f73145
		efb51198 0191e6ab 835a04bb 1aef85de 63b46b02 0e211f11
		2fb8eee1 6a018c80 5c733ae6 631a7493 9d2653b7 bd4f3ee3
		0e3d8ffa 05b5ed16 1c0a38fc e3d2aa12 58779bdf 288d8c6e
		ed3f9fd8 0f64e4cf b3a9ca76 6eeb9c13 ad44a168 6e5aa306
		`)
	return parameters{p: p, q: q, g: g, r: r}
}

// testParameters returns the tiny 16-bit parameter set used by unit tests,
// matching spec.md's test group bit-for-bit: P=65267, Q=32633, G=3, R=2.
func testParameters() parameters {
	return parameters{
		p: big.NewInt(65267),
		q: big.NewInt(32633),
		g: big.NewInt(3),
		r: big.NewInt(2),
	}
}
