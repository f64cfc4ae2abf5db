package internal_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInternalErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Errors Suite")
}

var _ = Describe("AppError", func() {
	Describe("NewInternalError", func() {
		It("should build a 500 error from a message alone", func() {
			appErr := internal.NewInternalError("failed to fetch record")

			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
			Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
			Expect(appErr.Message).To(Equal("failed to fetch record"))
			Expect(appErr.Cause).To(BeNil())
		})

		It("should attach the cause through WithCause", func() {
			cause := errors.New("connection refused")
			appErr := internal.NewInternalError("failed to fetch record").WithCause(cause)

			Expect(appErr.Cause).To(Equal(cause))
			Expect(errors.Unwrap(appErr)).To(Equal(cause))
			Expect(appErr.Error()).To(ContainSubstring("connection refused"))
		})
	})

	Describe("WithCause", func() {
		It("should clone instead of mutating the receiver", func() {
			base := internal.NewConflictError("record in use", internal.ErrCodeRecordInUse)
			wrapped := base.WithCause(errors.New("fk violation"))

			Expect(base.Cause).To(BeNil())
			Expect(wrapped.Cause).NotTo(BeNil())
			Expect(wrapped.Code).To(Equal(base.Code))
		})
	})
})
