package cmd

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("commands", func() {
	It("registers the subcommands", func() {
		root := NewRootCommand()

		for _, path := range [][]string{{"serve"}, {"user", "add"}, {"wallet", "import"}, {"wallet", "delete"}} {
			found, _, err := root.Find(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name()).To(Equal(path[len(path)-1]))
		}
	})

	Describe("wallet files", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "wallet.json")
		})

		It("reads the key and password", func() {
			Expect(os.WriteFile(path, []byte(`{"private_key":"0xabc","password":"pw"}`), 0o600)).To(Succeed())

			doc, err := readWalletFile(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(doc).To(Equal(walletFile{PrivateKey: "0xabc", Password: "pw"}))
		})

		It("requires both fields", func() {
			Expect(os.WriteFile(path, []byte(`{"private_key":"0xabc"}`), 0o600)).To(Succeed())

			_, err := readWalletFile(path)

			Expect(err).To(MatchError(ContainSubstring("password")))
		})

		It("wipes the file", func() {
			Expect(os.WriteFile(path, []byte(`{"private_key":"0xabc","password":"pw"}`), 0o600)).To(Succeed())

			Expect(wipe(path)).To(Succeed())

			_, err := os.Stat(path)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})
