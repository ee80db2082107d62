package log_test

import (
	"quill/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("ParseLevel", func() {
	DescribeTable("parsing",
		func(text string, want zapcore.Level) {
			Expect(log.ParseLevel(text)).To(Equal(want))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("upper case", "WARN", zapcore.WarnLevel),
		Entry("empty", "", zapcore.InfoLevel),
		Entry("unknown", "loud", zapcore.InfoLevel),
	)
})

var _ = Describe("NewZapLogger", func() {
	It("should respect the level", func() {
		logger := log.NewZapLogger("quill-test", zapcore.WarnLevel)
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
	})
})
