package rest_test

import (
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRestTransport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Transport Suite")
}

var _ = Describe("OpenAPI Document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Validate(loader.Context)).To(Succeed())
	})

	It("should document every route the router serves", func() {
		routes := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/health"},
			{http.MethodGet, "/ping"},
			{http.MethodPost, "/auth/register"},
			{http.MethodPost, "/auth/login"},
			{http.MethodGet, "/auth/me"},
			{http.MethodPost, "/auth/logout"},
			{http.MethodGet, "/users"},
			{http.MethodPost, "/users"},
			{http.MethodGet, "/users/{id}"},
			{http.MethodPut, "/users/{id}"},
			{http.MethodDelete, "/users/{id}"},
			{http.MethodGet, "/employees"},
			{http.MethodPost, "/employees"},
			{http.MethodGet, "/employees/{id}"},
			{http.MethodPut, "/employees/{id}"},
			{http.MethodDelete, "/employees/{id}"},
			{http.MethodGet, "/toolboxes"},
			{http.MethodPost, "/toolboxes"},
			{http.MethodGet, "/toolboxes/{id}"},
			{http.MethodPut, "/toolboxes/{id}"},
			{http.MethodDelete, "/toolboxes/{id}"},
			{http.MethodGet, "/completions"},
			{http.MethodPost, "/completions"},
			{http.MethodGet, "/completions/employee/{employeeID}"},
			{http.MethodGet, "/invitations"},
			{http.MethodPost, "/invitations"},
		}

		for _, route := range routes {
			item := doc.Paths.Find(route.path)
			Expect(item).NotTo(BeNil(), "missing path %s", route.path)
			Expect(item.GetOperation(route.method)).NotTo(BeNil(),
				"missing operation %s %s", route.method, route.path)
		}
	})

	It("should mount the API under /api/v1", func() {
		Expect(doc.Servers).NotTo(BeEmpty())
		Expect(doc.Servers[0].URL).To(Equal("/api/v1"))
	})

	It("should declare bearer auth for protected operations", func() {
		item := doc.Paths.Find("/completions")
		Expect(item).NotTo(BeNil())
		op := item.GetOperation(http.MethodPost)
		Expect(op).NotTo(BeNil())
		Expect(op.Security).NotTo(BeNil())
	})
})
