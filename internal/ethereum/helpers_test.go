package ethereum_test

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	. "github.com/onsi/gomega"
)

type ecdsaKey struct {
	priv    *ecdsa.PrivateKey
	address common.Address
}

func newKey() *ecdsaKey {
	priv, err := crypto.GenerateKey()
	Expect(err).NotTo(HaveOccurred())
	return &ecdsaKey{priv: priv, address: crypto.PubkeyToAddress(priv.PublicKey)}
}
