package custody_test

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/custody"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/zalando/go-keyring"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testHexKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var _ = Describe("Keystore", func() {
	var (
		keys  *custody.Keystore
		dir   string
		owner string
	)

	BeforeEach(func() {
		var err error
		dir = GinkgoT().TempDir()
		owner = uuid.NewString()
		keys, err = custody.NewKeystore(dir, custody.WithScrypt(keystore.LightScryptN, keystore.LightScryptP))
		Expect(err).NotTo(HaveOccurred())
	})

	It("imports and decrypts a key", func() {
		address, err := keys.Import(owner, "0x"+testHexKey, "secret")
		Expect(err).NotTo(HaveOccurred())
		Expect(keys.Exists(owner)).To(BeTrue())

		stored, err := keys.Address(owner)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(address))

		key, err := keys.Decrypt(owner, "secret")
		Expect(err).NotTo(HaveOccurred())
		Expect(crypto.PubkeyToAddress(key.PublicKey)).To(Equal(address))
		Expect(hex.EncodeToString(crypto.FromECDSA(key))).To(Equal(testHexKey))
	})

	It("writes the keystore readable by the owner only", func() {
		_, err := keys.Import(owner, testHexKey, "secret")
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(filepath.Join(dir, "wallet_"+owner+".json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
	})

	It("rejects a wrong password", func() {
		_, err := keys.Import(owner, testHexKey, "secret")
		Expect(err).NotTo(HaveOccurred())

		_, err = keys.Decrypt(owner, "wrong")
		Expect(err).To(MatchError(custody.ErrAuthentication))
	})

	It("rejects malformed keys", func() {
		_, err := keys.Import(owner, "not-a-key", "secret")
		Expect(err).To(MatchError(custody.ErrInvalidKey))
		Expect(failure.KindOf(err)).To(Equal(failure.KindValidation))
		Expect(keys.Exists(owner)).To(BeFalse())
	})

	It("rejects owners that are not ids", func() {
		_, err := keys.Import("../escape", testHexKey, "secret")
		Expect(err).To(MatchError(custody.ErrInvalidOwner))
	})

	It("reports a missing keystore", func() {
		_, err := keys.Decrypt(owner, "secret")
		Expect(err).To(MatchError(custody.ErrNoKeystore))
	})

	It("deletes keystores idempotently", func() {
		_, err := keys.Import(owner, testHexKey, "secret")
		Expect(err).NotTo(HaveOccurred())

		Expect(keys.Delete(owner)).To(Succeed())
		Expect(keys.Exists(owner)).To(BeFalse())
		Expect(keys.Delete(owner)).To(Succeed())
	})
})

var _ = Describe("Scrub", func() {
	It("zeroes the private scalar", func() {
		key, err := crypto.HexToECDSA(testHexKey)
		Expect(err).NotTo(HaveOccurred())

		custody.Scrub(key)
		Expect(key.D.Sign()).To(BeZero())
	})

	It("tolerates nil keys", func() {
		Expect(func() { custody.Scrub(nil) }).NotTo(Panic())
	})
})

var _ = Describe("Session", func() {
	var (
		keys    *custody.Keystore
		vault   *custody.Vault
		session *custody.Session
		owner   string
	)

	BeforeEach(func() {
		keyring.MockInit()

		var err error
		keys, err = custody.NewKeystore(GinkgoT().TempDir(), custody.WithScrypt(keystore.LightScryptN, keystore.LightScryptP))
		Expect(err).NotTo(HaveOccurred())
		vault = custody.NewVault("AutoDCA-test")
		session = custody.NewSession(zap.NewNop().Sugar(), keys, vault)
		owner = uuid.NewString()
	})

	It("loads escrowed passwords for owners with a keystore", func() {
		_, err := keys.Import(owner, testHexKey, "secret")
		Expect(err).NotTo(HaveOccurred())
		Expect(vault.Store(owner, "secret")).To(Succeed())

		noKeystore := uuid.NewString()
		Expect(vault.Store(noKeystore, "other")).To(Succeed())

		Expect(session.Load([]string{owner, noKeystore, uuid.NewString()})).To(Equal(1))
		Expect(session.Credentials(owner)).To(BeTrue())
		Expect(session.Credentials(noKeystore)).To(BeFalse())

		key, err := session.Key(owner)
		Expect(err).NotTo(HaveOccurred())
		Expect(hex.EncodeToString(crypto.FromECDSA(key))).To(Equal(testHexKey))
	})

	It("forgets invalidated owners", func() {
		_, err := keys.Import(owner, testHexKey, "secret")
		Expect(err).NotTo(HaveOccurred())
		session.Put(owner, "secret")

		session.Invalidate(owner)
		_, ok := session.Password(owner)
		Expect(ok).To(BeFalse())

		_, err = session.Key(owner)
		Expect(err).To(MatchError(custody.ErrNoCredentials))
	})

	It("drops everything on close", func() {
		session.Put(owner, "secret")
		session.Close()
		_, ok := session.Password(owner)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Vault", func() {
	BeforeEach(func() {
		keyring.MockInit()
	})

	It("round trips and removes passwords", func() {
		vault := custody.NewVault("AutoDCA-test")
		owner := uuid.NewString()

		_, err := vault.Load(owner)
		Expect(err).To(MatchError(custody.ErrNoPassword))

		Expect(vault.Store(owner, "secret")).To(Succeed())
		password, err := vault.Load(owner)
		Expect(err).NotTo(HaveOccurred())
		Expect(password).To(Equal("secret"))

		Expect(vault.Remove(owner)).To(Succeed())
		Expect(vault.Remove(owner)).To(Succeed())
	})
})
