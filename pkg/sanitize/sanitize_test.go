package sanitize_test

import (
	"quill/pkg/sanitize"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HTMLSanitizer", func() {
	var sanitizer *sanitize.HTMLSanitizer

	BeforeEach(func() {
		sanitizer = sanitize.NewHTMLSanitizer()
	})

	It("should drop script elements", func() {
		out := sanitizer.Sanitize(`<p>hello</p><script>alert("x")</script>`)
		Expect(out).To(Equal("<p>hello</p>"))
		Expect(out).NotTo(ContainSubstring("<script"))
	})

	It("should drop event handler attributes", func() {
		out := sanitizer.Sanitize(`<img src="/a.png" onerror="alert(1)">`)
		Expect(out).NotTo(ContainSubstring("onerror"))
		Expect(out).To(ContainSubstring(`src="/a.png"`))
	})

	It("should drop javascript urls", func() {
		out := sanitizer.Sanitize(`<a href="javascript:alert(1)">click</a>`)
		Expect(out).NotTo(ContainSubstring("javascript:"))
		Expect(out).To(ContainSubstring("click"))
	})

	It("should keep benign formatting", func() {
		in := `<p><strong>bold</strong> and <em>italic</em></p><ul><li>item</li></ul>`
		Expect(sanitizer.Sanitize(in)).To(Equal(in))
	})

	It("should leave plain text untouched", func() {
		Expect(sanitizer.Sanitize("just words")).To(Equal("just words"))
	})
})
