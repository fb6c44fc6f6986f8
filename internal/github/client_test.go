package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(serverURL string) *Client {
	return New(Config{
		Repository:        "acme/site",
		Branch:            "main",
		BaseURL:           serverURL,
		Token:             "test-token",
		Timeout:           5 * time.Second,
		CommitTimeout:     5 * time.Second,
		RequestsPerSecond: 1000,
	}, s.logger)
}

// fakeRepo records requests and plays back canned handlers by method+path.
type fakeRepo struct {
	mu       sync.Mutex
	requests []string
	handlers map[string]http.HandlerFunc
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{handlers: make(map[string]http.HandlerFunc)}
}

func (f *fakeRepo) on(method, path string, h http.HandlerFunc) {
	f.handlers[method+" "+path] = h
}

func (f *fakeRepo) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r == method+" "+path {
			n++
		}
	}
	return n
}

func (f *fakeRepo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.requests = append(f.requests, key)
	f.mu.Unlock()

	if h, ok := f.handlers[key]; ok {
		h(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `{"message":"Not Found"}`)
}

func jsonResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

func (s *ClientTestSuite) TestGetFile_DecodesWrappedBase64() {
	repo := newFakeRepo()
	// The contents API wraps base64 at 60 columns.
	encoded := base64.StdEncoding.EncodeToString([]byte("hello world"))
	repo.on(http.MethodGet, "/repos/acme/site/contents/content/posts/a.md",
		jsonResponse(200, fmt.Sprintf(`{"name":"a.md","path":"content/posts/a.md","sha":"f00","content":"%s\n"}`, encoded)))

	server := httptest.NewServer(repo)
	defer server.Close()

	rec, err := s.newClient(server.URL).GetFile(s.ctx, "content/posts/a.md")
	s.NoError(err)
	s.Require().NotNil(rec)
	s.Equal("f00", rec.SHA)
	s.Equal([]byte("hello world"), rec.Content)
}

func (s *ClientTestSuite) TestGetFile_AbsentIsNil() {
	repo := newFakeRepo()
	server := httptest.NewServer(repo)
	defer server.Close()

	rec, err := s.newClient(server.URL).GetFile(s.ctx, "content/posts/missing.md")
	s.NoError(err)
	s.Nil(rec)
}

func (s *ClientTestSuite) TestDeleteFile_AbsentIsSuccessWithoutDelete() {
	repo := newFakeRepo()
	server := httptest.NewServer(repo)
	defer server.Close()

	err := s.newClient(server.URL).DeleteFile(s.ctx, "content/posts/missing.md", "Remove post")
	s.NoError(err)
	s.Equal(1, repo.count(http.MethodGet, "/repos/acme/site/contents/content/posts/missing.md"))
	s.Equal(0, repo.count(http.MethodDelete, "/repos/acme/site/contents/content/posts/missing.md"))
}

func (s *ClientTestSuite) TestDeleteFile_SendsCurrentSHA() {
	repo := newFakeRepo()
	repo.on(http.MethodGet, "/repos/acme/site/contents/content/posts/a.md",
		jsonResponse(200, `{"name":"a.md","path":"content/posts/a.md","sha":"f00","content":""}`))
	repo.on(http.MethodDelete, "/repos/acme/site/contents/content/posts/a.md",
		func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				SHA string `json:"sha"`
			}
			s.NoError(json.NewDecoder(r.Body).Decode(&req))
			s.Equal("f00", req.SHA)
			w.WriteHeader(200)
			fmt.Fprint(w, `{}`)
		})

	server := httptest.NewServer(repo)
	defer server.Close()

	err := s.newClient(server.URL).DeleteFile(s.ctx, "content/posts/a.md", "Remove post")
	s.NoError(err)
}

func (s *ClientTestSuite) TestCreateOrUpdateFile_EncodesContentAndBranch() {
	repo := newFakeRepo()
	repo.on(http.MethodPut, "/repos/acme/site/contents/content/posts/a.md",
		func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Message string `json:"message"`
				Content string `json:"content"`
				Branch  string `json:"branch"`
				SHA     string `json:"sha"`
			}
			s.NoError(json.NewDecoder(r.Body).Decode(&req))
			s.Equal("Sync post: a", req.Message)
			s.Equal(base64.StdEncoding.EncodeToString([]byte("hello")), req.Content)
			s.Equal("main", req.Branch)
			s.Equal("f00", req.SHA)
			w.WriteHeader(200)
			fmt.Fprint(w, `{}`)
		})

	server := httptest.NewServer(repo)
	defer server.Close()

	err := s.newClient(server.URL).CreateOrUpdateFile(s.ctx, "content/posts/a.md", []byte("hello"), "Sync post: a", "f00")
	s.NoError(err)
}

func (s *ClientTestSuite) TestListDirectory_AbsentIsEmpty() {
	repo := newFakeRepo()
	server := httptest.NewServer(repo)
	defer server.Close()

	entries, err := s.newClient(server.URL).ListDirectory(s.ctx, "static/images/posts/42")
	s.NoError(err)
	s.Empty(entries)
}

// commitFixture wires the whole git data API happy path for one commit.
func (s *ClientTestSuite) commitFixture(repo *fakeRepo) {
	repo.on(http.MethodGet, "/repos/acme/site/git/ref/heads/main",
		jsonResponse(200, `{"ref":"refs/heads/main","object":{"sha":"base-commit","type":"commit"}}`))
	repo.on(http.MethodGet, "/repos/acme/site/git/commits/base-commit",
		jsonResponse(200, `{"sha":"base-commit","tree":{"sha":"base-tree"}}`))
	repo.on(http.MethodPost, "/repos/acme/site/git/blobs",
		jsonResponse(201, `{"sha":"blob-sha"}`))
	repo.on(http.MethodPost, "/repos/acme/site/git/trees",
		jsonResponse(201, `{"sha":"new-tree"}`))
	repo.on(http.MethodPost, "/repos/acme/site/git/commits",
		jsonResponse(201, `{"sha":"new-commit","html_url":"https://github.com/acme/site/commit/new-commit"}`))
	repo.on(http.MethodPatch, "/repos/acme/site/git/refs/heads/main",
		jsonResponse(200, `{"ref":"refs/heads/main","object":{"sha":"new-commit","type":"commit"}}`))
}

func (s *ClientTestSuite) TestCreateAtomicCommit_HappyPath() {
	repo := newFakeRepo()
	s.commitFixture(repo)

	var treeReq treeCreateRequest
	repo.on(http.MethodPost, "/repos/acme/site/git/trees",
		func(w http.ResponseWriter, r *http.Request) {
			s.NoError(json.NewDecoder(r.Body).Decode(&treeReq))
			w.WriteHeader(201)
			fmt.Fprint(w, `{"sha":"new-tree"}`)
		})
	var refReq refUpdateRequest
	repo.on(http.MethodPatch, "/repos/acme/site/git/refs/heads/main",
		func(w http.ResponseWriter, r *http.Request) {
			s.NoError(json.NewDecoder(r.Body).Decode(&refReq))
			w.WriteHeader(200)
			fmt.Fprint(w, `{}`)
		})

	server := httptest.NewServer(repo)
	defer server.Close()

	payload := map[string][]byte{
		"content/posts/a.md":              []byte("doc"),
		"static/images/posts/42/img.webp": []byte("img"),
	}
	result, err := s.newClient(server.URL).CreateAtomicCommit(s.ctx, payload, "Sync post: A")
	s.NoError(err)
	s.Equal("new-commit", result.SHA)

	s.Equal(2, repo.count(http.MethodPost, "/repos/acme/site/git/blobs"))
	s.Equal("base-tree", treeReq.BaseTree)
	s.Require().Len(treeReq.Tree, 2)
	// Stable ordering across retries.
	s.Equal("content/posts/a.md", treeReq.Tree[0].Path)
	s.Equal("static/images/posts/42/img.webp", treeReq.Tree[1].Path)
	s.Equal("new-commit", refReq.SHA)
	s.False(refReq.Force)
}

func (s *ClientTestSuite) TestCreateAtomicCommit_RetriesOnRefConflict() {
	repo := newFakeRepo()
	s.commitFixture(repo)

	attempts := 0
	repo.on(http.MethodPatch, "/repos/acme/site/git/refs/heads/main",
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusUnprocessableEntity)
				fmt.Fprint(w, `{"message":"Update is not a fast forward"}`)
				return
			}
			w.WriteHeader(200)
			fmt.Fprint(w, `{}`)
		})

	server := httptest.NewServer(repo)
	defer server.Close()

	result, err := s.newClient(server.URL).CreateAtomicCommit(s.ctx,
		map[string][]byte{"content/posts/a.md": []byte("doc")}, "Sync post: A")
	s.NoError(err)
	s.Equal("new-commit", result.SHA)
	s.Equal(2, attempts)
	// Each attempt re-snapshots the branch tip.
	s.Equal(2, repo.count(http.MethodGet, "/repos/acme/site/git/ref/heads/main"))
}

func (s *ClientTestSuite) TestCreateAtomicCommit_GivesUpAfterRepeatedConflicts() {
	repo := newFakeRepo()
	s.commitFixture(repo)
	repo.on(http.MethodPatch, "/repos/acme/site/git/refs/heads/main",
		jsonResponse(http.StatusConflict, `{"message":"conflict"}`))

	server := httptest.NewServer(repo)
	defer server.Close()

	_, err := s.newClient(server.URL).CreateAtomicCommit(s.ctx,
		map[string][]byte{"content/posts/a.md": []byte("doc")}, "Sync post: A")
	s.ErrorIs(err, ErrConflict)
	s.Equal(maxCommitAttempts, repo.count(http.MethodPatch, "/repos/acme/site/git/refs/heads/main"))
}

func (s *ClientTestSuite) TestCreateAtomicCommit_TreeFailureLeavesRefUntouched() {
	repo := newFakeRepo()
	s.commitFixture(repo)
	repo.on(http.MethodPost, "/repos/acme/site/git/trees",
		jsonResponse(http.StatusUnprocessableEntity, `{"message":"Tree SHA does not exist"}`))

	server := httptest.NewServer(repo)
	defer server.Close()

	_, err := s.newClient(server.URL).CreateAtomicCommit(s.ctx,
		map[string][]byte{"content/posts/a.md": []byte("doc")}, "Sync post: A")
	s.Error(err)
	// The branch pointer must never move on a failed attempt.
	s.Equal(0, repo.count(http.MethodPatch, "/repos/acme/site/git/refs/heads/main"))
}

func (s *ClientTestSuite) TestCreateAtomicCommit_EmptyPayloadRejected() {
	_, err := s.newClient("http://unused").CreateAtomicCommit(s.ctx, nil, "empty")
	s.Error(err)
}

func (s *ClientTestSuite) TestStatusErrors() {
	repo := newFakeRepo()
	repo.on(http.MethodGet, "/repos/acme/site/contents/unauthorized",
		jsonResponse(http.StatusUnauthorized, `{"message":"Bad credentials"}`))
	repo.on(http.MethodGet, "/repos/acme/site/contents/ratelimited",
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", "1700000000")
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
		})
	repo.on(http.MethodGet, "/repos/acme/site/contents/forbidden",
		jsonResponse(http.StatusForbidden, `{"message":"Resource not accessible"}`))

	server := httptest.NewServer(repo)
	defer server.Close()
	client := s.newClient(server.URL)

	_, err := client.GetFile(s.ctx, "unauthorized")
	s.ErrorIs(err, ErrUnauthorized)

	_, err = client.GetFile(s.ctx, "ratelimited")
	var rateErr *RateLimitError
	s.ErrorAs(err, &rateErr)
	s.Equal(time.Unix(1700000000, 0), rateErr.ResetAt)

	_, err = client.GetFile(s.ctx, "forbidden")
	s.ErrorIs(err, ErrPermissionDenied)
}

func (s *ClientTestSuite) TestTestConnection_MissingConfig() {
	client := New(Config{
		BaseURL: "http://unused",
		Timeout: time.Second,
	}, s.logger)
	s.ErrorIs(client.TestConnection(s.ctx), ErrConfigMissing)
}

func (s *ClientTestSuite) TestTestConnection_BadRepositoryName() {
	client := New(Config{
		Repository: "not-a-repo",
		Token:      "t",
		BaseURL:    "http://unused",
		Timeout:    time.Second,
	}, s.logger)
	s.Error(client.TestConnection(s.ctx))
}

func (s *ClientTestSuite) TestTestConnection_NoPushPermission() {
	repo := newFakeRepo()
	repo.on(http.MethodGet, "/repos/acme/site",
		jsonResponse(200, `{"full_name":"acme/site","permissions":{"push":false}}`))

	server := httptest.NewServer(repo)
	defer server.Close()

	err := s.newClient(server.URL).TestConnection(s.ctx)
	s.ErrorIs(err, ErrPermissionDenied)
}

func (s *ClientTestSuite) TestTestConnection_OK() {
	repo := newFakeRepo()
	repo.on(http.MethodGet, "/repos/acme/site",
		jsonResponse(200, `{"full_name":"acme/site","permissions":{"push":true}}`))
	repo.on(http.MethodGet, "/rate_limit",
		jsonResponse(200, `{"resources":{"core":{"remaining":4999,"reset":1700000000}}}`))

	server := httptest.NewServer(repo)
	defer server.Close()

	s.NoError(s.newClient(server.URL).TestConnection(s.ctx))
}
