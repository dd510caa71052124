package logger_test

import (
	"bytes"
	"testing"

	"github.com/dataops-works/snowload/logger"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("Logger", func() {
	logger := logger.NewLogger("test-service", "debug", true)

	It("Should have `test-service` as service name", func() {
		logOutput := bytes.NewBufferString("")
		logger.SetOutput(logOutput)

		logger.Info("Testing")

		Expect(logOutput.String()).To(ContainSubstring("service=test-service"))
	})

	It("Should have info as log level", func() {
		logOutput := bytes.NewBufferString("")
		logger.SetOutput(logOutput)

		logger.Info("Testing")

		Expect(logOutput.String()).To(ContainSubstring("level=info"))
	})

	It("Should have warning as log level", func() {
		logOutput := bytes.NewBufferString("")
		logger.SetOutput(logOutput)

		logger.Warn("Testing")

		Expect(logOutput.String()).To(ContainSubstring("level=warning"))
	})

	It("Should have error as log level with a stack trace", func() {
		logOutput := bytes.NewBufferString("")
		logger.SetOutput(logOutput)

		logger.Error("Testing")

		Expect(logOutput.String()).To(ContainSubstring("level=error"))
		Expect(logOutput.String()).To(ContainSubstring("stackTrace="))
	})

	It("Should have `Testing` as msg", func() {
		logOutput := bytes.NewBufferString("")
		logger.SetOutput(logOutput)

		logger.Info("Testing")

		Expect(logOutput.String()).To(ContainSubstring("msg=Testing"))
	})

	It("Should keep the run id field added with WithField", func() {
		logOutput := bytes.NewBufferString("")
		l2 := logger.WithField("loadRunId", "abc123")
		l2.SetOutput(logOutput)

		l2.Info("Testing")

		Expect(logOutput.String()).To(ContainSubstring("loadRunId=abc123"))
	})
})
