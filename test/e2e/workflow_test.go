package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/config/wizard"
	"github.com/imamik/stackgen/internal/platform/github"
	"github.com/imamik/stackgen/internal/workflow"
)

// fakeGitHub is an in-process stand-in for the GitHub REST API. It
// records the requests the workflow makes so tests can assert on them.
type fakeGitHub struct {
	srv *httptest.Server

	repoHits   int
	commitHits int

	pushPermission bool
	repoStatus     int
	repoMessage    string

	treePaths     []string
	treeContents  map[string]string
	commitMessage string
	refUpdated    bool
}

func newFakeGitHub() *fakeGitHub {
	f := &fakeGitHub{
		pushPermission: true,
		repoStatus:     http.StatusOK,
		treeContents:   map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/infra", func(w http.ResponseWriter, _ *http.Request) {
		f.repoHits++
		if f.repoStatus != http.StatusOK {
			w.WriteHeader(f.repoStatus)
			fmt.Fprintf(w, `{"message":%q}`, f.repoMessage)
			return
		}
		fmt.Fprintf(w, `{"name":"infra","permissions":{"pull":true,"push":%t}}`, f.pushPermission)
	})
	mux.HandleFunc("GET /repos/acme/infra/git/ref/heads/main", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"ref":"refs/heads/main","object":{"sha":"parent-sha","type":"commit"}}`)
	})
	mux.HandleFunc("GET /repos/acme/infra/git/commits/parent-sha", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"sha":"parent-sha","tree":{"sha":"base-tree-sha"}}`)
	})
	mux.HandleFunc("POST /repos/acme/infra/git/trees", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Tree []struct {
				Path    string `json:"path"`
				Content string `json:"content"`
			} `json:"tree"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.treePaths = nil
		for _, entry := range req.Tree {
			f.treePaths = append(f.treePaths, entry.Path)
			f.treeContents[entry.Path] = entry.Content
		}
		fmt.Fprint(w, `{"sha":"new-tree-sha"}`)
	})
	mux.HandleFunc("POST /repos/acme/infra/git/commits", func(w http.ResponseWriter, r *http.Request) {
		f.commitHits++
		var req struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.commitMessage = req.Message
		fmt.Fprint(w, `{"sha":"e2e-commit-sha"}`)
	})
	mux.HandleFunc("PATCH /repos/acme/infra/git/refs/heads/main", func(w http.ResponseWriter, _ *http.Request) {
		f.refUpdated = true
		fmt.Fprint(w, `{"ref":"refs/heads/main","object":{"sha":"e2e-commit-sha"}}`)
	})

	f.srv = httptest.NewServer(mux)
	return f
}

func (f *fakeGitHub) Close() { f.srv.Close() }

// wizardSpec builds a spec the way the init command does, from raw
// wizard answers.
func wizardSpec() *config.Spec {
	result := &wizard.Result{
		ProjectName:       "shop",
		Region:            "nbg1",
		NodeSize:          "cpx31",
		NodeCount:         3,
		KubernetesVersion: "v1.32.0",
		Services: []wizard.ServiceAnswer{
			{Name: "api", Image: "ghcr.io/acme/api:latest", Port: "8080", Replicas: "2", IngressHost: "api.example.com"},
			{Name: "worker", Image: "ghcr.io/acme/worker:latest", Port: "9090", Replicas: "1"},
		},
		PipelineBranch: "main",
		Registry:       "ghcr.io",
		RunTests:       true,
		BuildImages:    true,
		GoVersion:      "1.25",
		GitHubOwner:    "acme",
		GitHubRepo:     "infra",
		GitHubBranch:   "main",
		GitHubToken:    "e2e-token",
	}
	return wizard.BuildSpec(result)
}

var _ = Describe("Push workflow", func() {
	var (
		fake    *fakeGitHub
		spec    *config.Spec
		session *workflow.Session
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = newFakeGitHub()
		spec = wizardSpec()

		client, err := github.NewRealClient(spec.GitHub.Token, github.WithBaseURL(fake.srv.URL+"/"))
		Expect(err).NotTo(HaveOccurred())

		session, err = workflow.NewSession(spec, client)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		session.Stop()
		fake.Close()
	})

	It("validates access and pushes all generated files in one commit", func() {
		By("validating repository access")
		validation := session.Validate(ctx)
		Expect(validation.Status).To(Equal(workflow.ValidationValid))
		Expect(session.State()).To(Equal(workflow.StateValidated))

		By("pushing the generated configuration")
		result := session.Push(ctx)
		Expect(result.Status).To(Equal(workflow.PushSuccess))
		Expect(result.CommitSHA).To(Equal("e2e-commit-sha"))
		Expect(session.State()).To(Equal(workflow.StatePushed))
		Expect(session.CanAdvance()).To(BeTrue())

		By("committing exactly once with the expected message")
		Expect(fake.commitHits).To(Equal(1))
		Expect(fake.commitMessage).To(Equal(workflow.CommitMessage))
		Expect(fake.refUpdated).To(BeTrue())

		By("including the full generated file set in the tree")
		Expect(fake.treePaths).To(ContainElements(
			"deploy/terraform/main.tf",
			"deploy/terraform/variables.tf",
			"deploy/terraform/outputs.tf",
			"deploy/kubernetes/namespace.yaml",
			"deploy/kubernetes/api/deployment.yaml",
			"deploy/kubernetes/api/service.yaml",
			"deploy/kubernetes/api/ingress.yaml",
			"deploy/kubernetes/worker/deployment.yaml",
			"deploy/kubernetes/worker/service.yaml",
			".github/workflows/ci.yaml",
		))

		By("rendering real content into the committed files")
		Expect(fake.treeContents["deploy/terraform/main.tf"]).To(ContainSubstring("cpx31"))
		Expect(fake.treeContents["deploy/kubernetes/namespace.yaml"]).To(ContainSubstring("shop"))
		Expect(fake.treeContents[".github/workflows/ci.yaml"]).To(ContainSubstring("go-version"))
	})

	It("revalidates access on every push", func() {
		session.Validate(ctx)
		Expect(fake.repoHits).To(Equal(1))

		session.Push(ctx)
		Expect(fake.repoHits).To(Equal(2))
	})

	It("rejects incomplete connection fields without network calls", func() {
		spec.GitHub.Owner = ""
		session.SetConnection(spec.GitHub)

		validation := session.Validate(ctx)
		Expect(validation.Status).To(Equal(workflow.ValidationInvalid))
		Expect(validation.Message).To(Equal("Please fill in all GitHub configuration fields"))
		Expect(fake.repoHits).To(BeZero())
		Expect(session.State()).To(Equal(workflow.StateErrored))
	})

	It("refuses to push with a read-only token", func() {
		fake.pushPermission = false

		validation := session.Validate(ctx)
		Expect(validation.Status).To(Equal(workflow.ValidationInvalid))
		Expect(validation.Message).To(ContainSubstring("write access"))

		result := session.Push(ctx)
		Expect(result.Status).NotTo(Equal(workflow.PushSuccess))
		Expect(fake.commitHits).To(BeZero())
	})

	It("surfaces remote error messages", func() {
		fake.repoStatus = http.StatusForbidden
		fake.repoMessage = "insufficient permissions"

		validation := session.Validate(ctx)
		Expect(validation.Status).To(Equal(workflow.ValidationInvalid))
		Expect(validation.Message).To(ContainSubstring("insufficient permissions"))
	})

	It("resets validation when the connection changes", func() {
		session.Validate(ctx)
		Expect(session.ValidationStatus()).To(Equal(workflow.ValidationValid))

		conn := spec.GitHub
		conn.Repo = "other"
		session.SetConnection(conn)

		Expect(session.ValidationStatus()).To(Equal(workflow.ValidationIdle))
		Expect(session.State()).To(Equal(workflow.StateCollecting))
		Expect(session.CanAdvance()).To(BeFalse())
	})
})
