package upload_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"quill/internal/upload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const megabyte = 1024 * 1024

var _ = Describe("Store", func() {
	var (
		dir   string
		store *upload.Store
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		var err error
		store, err = upload.NewStore(dir, "/uploads", upload.MaxSize)
		Expect(err).NotTo(HaveOccurred())
	})

	dirEntries := func() []string {
		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}

	Describe("Save", func() {
		When("a 9 MB jpeg is uploaded", func() {
			It("should accept it under a generated name", func() {
				body := bytes.NewReader(make([]byte, 9*megabyte))
				res, err := store.Save("image/jpeg", body)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Status).To(Equal(upload.Accepted))
				Expect(res.Path).To(MatchRegexp(`^/uploads/[0-9a-f-]{36}\.jpg$`))

				stored := filepath.Join(dir, strings.TrimPrefix(res.Path, "/uploads/"))
				info, err := os.Stat(stored)
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Size()).To(Equal(int64(9 * megabyte)))
				Expect(dirEntries()).To(HaveLen(1))
			})
		})

		When("an 11 MB file is uploaded", func() {
			It("should reject it as too large and leave nothing behind", func() {
				body := bytes.NewReader(make([]byte, 11*megabyte))
				res, err := store.Save("image/png", body)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Status).To(Equal(upload.TooLarge))
				Expect(res.Path).To(BeEmpty())
				Expect(dirEntries()).To(BeEmpty())
			})
		})

		When("the file is exactly at the ceiling", func() {
			It("should accept it", func() {
				small, err := upload.NewStore(dir, "/uploads", 10)
				Expect(err).NotTo(HaveOccurred())

				res, err := small.Save("image/gif", strings.NewReader("0123456789"))
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Status).To(Equal(upload.Accepted))

				res, err = small.Save("image/gif", strings.NewReader("0123456789A"))
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Status).To(Equal(upload.TooLarge))
			})
		})

		DescribeTable("declared MIME types",
			func(contentType string, expected upload.Status) {
				res, err := store.Save(contentType, strings.NewReader("data"))
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Status).To(Equal(expected))
			},
			Entry("jpeg", "image/jpeg", upload.Accepted),
			Entry("png", "image/png", upload.Accepted),
			Entry("gif", "image/gif", upload.Accepted),
			Entry("mixed case with parameters", "Image/PNG; name=x", upload.Accepted),
			Entry("svg", "image/svg+xml", upload.BadType),
			Entry("webp", "image/webp", upload.BadType),
			Entry("plain text", "text/plain", upload.BadType),
			Entry("html", "text/html", upload.BadType),
			Entry("empty", "", upload.BadType),
		)

		It("should not write anything for a rejected type", func() {
			_, err := store.Save("application/x-sh", strings.NewReader("#!/bin/sh"))
			Expect(err).NotTo(HaveOccurred())
			Expect(dirEntries()).To(BeEmpty())
		})

		It("should give every upload a distinct name", func() {
			first, err := store.Save("image/png", strings.NewReader("a"))
			Expect(err).NotTo(HaveOccurred())
			second, err := store.Save("image/png", strings.NewReader("b"))
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Path).NotTo(Equal(second.Path))
		})
	})

	Describe("Remove", func() {
		It("should delete a saved file", func() {
			res, err := store.Save("image/png", strings.NewReader("png"))
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Remove(res.Path)).To(Succeed())
			Expect(dirEntries()).To(BeEmpty())
		})

		It("should refuse paths outside the store", func() {
			err := store.Remove("/uploads/../secret.txt")
			Expect(errors.Is(err, upload.ErrOutsideStore)).To(BeTrue())

			err = store.Remove("/etc/passwd")
			Expect(errors.Is(err, upload.ErrOutsideStore)).To(BeTrue())
		})

		It("should ignore files that are already gone", func() {
			Expect(store.Remove("/uploads/missing.png")).To(Succeed())
		})
	})

	Describe("Handler", func() {
		var handler http.Handler

		BeforeEach(func() {
			handler = store.Handler()
		})

		serve := func(target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			return w
		}

		It("should serve a saved file", func() {
			res, err := store.Save("image/gif", strings.NewReader("GIF89a"))
			Expect(err).NotTo(HaveOccurred())

			w := serve(res.Path)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("GIF89a"))
		})

		It("should not list the directory", func() {
			Expect(serve("/uploads/").Code).To(Equal(http.StatusNotFound))
		})

		It("should hide temp files", func() {
			Expect(os.WriteFile(filepath.Join(dir, ".upload-123"), []byte("x"), 0o644)).To(Succeed())
			Expect(serve("/uploads/.upload-123").Code).To(Equal(http.StatusNotFound))
		})
	})
})
