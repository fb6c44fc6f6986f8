package github

// FileRecord is a decoded repository file with its revision token (blob SHA).
type FileRecord struct {
	Path    string
	SHA     string
	Content []byte
}

// DirEntry is a single listing entry from the contents API.
type DirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Type string `json:"type"`
}

// CommitResult identifies the commit produced by CreateAtomicCommit.
type CommitResult struct {
	SHA string
	URL string
}

// Wire types.

type contentResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type contentWriteRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type contentDeleteRequest struct {
	Message string `json:"message"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch"`
}

type refResponse struct {
	Ref    string `json:"ref"`
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

type refUpdateRequest struct {
	SHA   string `json:"sha"`
	Force bool   `json:"force"`
}

type commitResponse struct {
	SHA  string `json:"sha"`
	URL  string `json:"html_url"`
	Tree struct {
		SHA string `json:"sha"`
	} `json:"tree"`
}

type blobCreateRequest struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type blobCreateResponse struct {
	SHA string `json:"sha"`
}

type treeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
}

type treeCreateRequest struct {
	BaseTree string      `json:"base_tree"`
	Tree     []treeEntry `json:"tree"`
}

type treeCreateResponse struct {
	SHA string `json:"sha"`
}

type commitCreateRequest struct {
	Message string   `json:"message"`
	Tree    string   `json:"tree"`
	Parents []string `json:"parents"`
}

type repoResponse struct {
	FullName    string `json:"full_name"`
	Permissions struct {
		Push bool `json:"push"`
	} `json:"permissions"`
}

type rateLimitResponse struct {
	Resources struct {
		Core struct {
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}

type apiErrorBody struct {
	Message string `json:"message"`
}
