package integration_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Explain Command", func() {

	Describe("Unix expressions", func() {
		It("should explain a daily time", func() {
			command := exec.Command(pathToCLI, "explain", "0 14 * * *")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("every day at 2pm"))
		})

		It("should explain minute intervals", func() {
			command := exec.Command(pathToCLI, "explain", "*/15 * * * *")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("every 15 minutes"))
		})

		It("should explain weekly schedules", func() {
			command := exec.Command(pathToCLI, "explain", "0 3 * * 0")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("every sunday at 3am"))
		})
	})

	Describe("Other dialects", func() {
		It("should explain ncrontab second intervals", func() {
			command := exec.Command(pathToCLI, "explain", "*/30 * * * * *", "--dialect", "ncrontab")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("every 30 seconds"))
		})

		It("should explain quartz weekday classes", func() {
			command := exec.Command(pathToCLI, "explain", "0 0 14 ? * 2-6 *", "--dialect", "quartz")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("every weekday at 2pm"))
		})
	})

	Describe("Unrecognizable expressions", func() {
		It("should report complex fields as not round-trippable", func() {
			command := exec.Command(pathToCLI, "explain", "5,17,29 * * * *")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("not round-trippable"))
		})
	})
})
