package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		GinkgoT().Setenv("DB_CONNECTION_URL", "file:dca.db")
		GinkgoT().Setenv("JWT_SECRET", "secret")
		GinkgoT().Setenv("FF_API_KEY", "key")
		GinkgoT().Setenv("FF_API_SECRET", "api-secret")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only required variables are set", func() {
		It("applies defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.DBDriver).To(Equal("sqlite"))
			Expect(app.Exchange.BaseURL).To(Equal("https://ff.io/api/v2"))
			Expect(app.Exchange.APIKey).To(Equal("key"))
			Expect(app.TickInterval).To(Equal(time.Minute))
			Expect(app.ReceiptTimeout).To(Equal(120 * time.Second))
			Expect(app.MaxPlanAmount.String()).To(Equal("500"))
			Expect(app.MinPlanAmount.String()).To(Equal("10"))
			Expect(app.MaxPlansPerNetwork).To(Equal(3))
			Expect(app.UseTestnet).To(BeFalse())
			Expect(app.Networks.RPCURLs).To(BeEmpty())
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("FF_API_SECRET", "")
		})

		It("returns an error naming it", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found: FF_API_SECRET")))
		})
	})

	When("overrides are provided", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("USE_TESTNET", "true")
			GinkgoT().Setenv("RPC_URL_USDT_BSC", "https://bsc.example")
			GinkgoT().Setenv("TOKEN_CONTRACT_USDT_ARB", "0xabc")
			GinkgoT().Setenv("TICK_INTERVAL", "30s")
			GinkgoT().Setenv("DB_DRIVER", "Postgres")
		})

		It("reads them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.UseTestnet).To(BeTrue())
			Expect(app.Networks.RPCURLs).To(HaveKeyWithValue("USDT-BSC", "https://bsc.example"))
			Expect(app.Networks.TokenContracts).To(HaveKeyWithValue("USDT-ARB", "0xabc"))
			Expect(app.TickInterval).To(Equal(30 * time.Second))
			Expect(app.DBDriver).To(Equal("postgres"))
		})
	})

	When("the driver is unknown", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("DB_DRIVER", "mysql")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("unsupported DB_DRIVER")))
		})
	})

	When("min amount exceeds max amount", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("MIN_PLAN_AMOUNT", "600")
		})

		It("fails", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("a config file is given", func() {
		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			file := filepath.Join(dir, "autodca.yaml")
			Expect(os.WriteFile(file, []byte("API_PORT: \"9090\"\nMAX_PLAN_AMOUNT: \"250\"\n"), 0o600)).To(Succeed())
			GinkgoT().Setenv("CONFIG_FILE", file)
		})

		It("reads values from it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.MaxPlanAmount.String()).To(Equal("250"))
		})
	})
})
