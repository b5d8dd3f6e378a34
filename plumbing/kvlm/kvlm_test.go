package kvlm

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type KVLMSuite struct {
	suite.Suite
}

func TestKVLMSuite(t *testing.T) {
	suite.Run(t, new(KVLMSuite))
}

const commitFixture = `tree 29ff16c9c14e2652b22f8b78bb08a5a07930c147
parent 206941306e8a8af65b66eaaaea388a7ae24d49a0
author Thibault Polge <thibault@thb.lt> 1527025023 +0200
committer Thibault Polge <thibault@thb.lt> 1527025044 +0200
gpgsig -----BEGIN PGP SIGNATURE-----` + "\n \n" + ` iQIzBAABCAAdFiEExwXquOM8bWb4Q2zVGxM2FxoLkGQFAlsEjZQACgkQGxM2FxoL
 kGQdcBAAqPP+ln4nGDd2gETXjvOpOxLzIMEw4A9gU6CzWzm+oB8VGWsLD6qlIbV5
 =lgTX
 -----END PGP SIGNATURE-----

Create first draft`

func (s *KVLMSuite) TestParseRoundTrip() {
	k, err := Parse([]byte(commitFixture))
	s.Require().NoError(err)

	tree, ok := k.First("tree")
	s.True(ok)
	s.Equal("29ff16c9c14e2652b22f8b78bb08a5a07930c147", tree)

	s.Equal("Create first draft", k.Message())

	sig, ok := k.First("gpgsig")
	s.True(ok)
	s.Contains(sig, "-----BEGIN PGP SIGNATURE-----")
	s.Contains(sig, "\n")

	s.Equal([]byte(commitFixture), k.Serialize())
}

func (s *KVLMSuite) TestParseRejectsMissingMessage() {
	_, err := Parse([]byte("tree abc"))
	s.ErrorIs(err, ErrMissingMessage)
}

func (s *KVLMSuite) TestParseRejectsEntryWithoutSpace() {
	_, err := Parse([]byte("treeabc\n\nmsg"))
	s.ErrorIs(err, ErrInvalidEntry)
}

func (s *KVLMSuite) TestAddPreservesRepeatedKeyOrder() {
	k := New()
	k.Add("parent", "aaa")
	k.Add("parent", "bbb")
	k.SetMessage("msg")

	s.Equal([]string{"aaa", "bbb"}, k.Values("parent"))
	s.Equal([]string{"parent"}, k.Keys())
}

func (s *KVLMSuite) TestSetReplacesValue() {
	k := New()
	k.Add("tree", "aaa")
	k.Set("tree", "bbb")

	s.Equal([]string{"bbb"}, k.Values("tree"))
}

func (s *KVLMSuite) TestKeysPreservesInsertionOrder() {
	k := New()
	k.Add("tree", "x")
	k.Add("parent", "y")
	k.Add("author", "z")

	s.Equal([]string{"tree", "parent", "author"}, k.Keys())
}
