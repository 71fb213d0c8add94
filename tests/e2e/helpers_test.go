package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

// BASE_URL が設定されているときだけ動く黒箱テスト。
// 起動済みのサーバーとDBが前提。

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; skipping e2e")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Envelope は全エンドポイント共通のレスポンス形
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bearer string,
	bodyBytes []byte,
) (*http.Response, Envelope) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}
	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("json.Unmarshal(Envelope) failed: %v body=%s", err, string(raw))
	}

	return resp, env
}

func requireStatus(t *testing.T, resp *http.Response, want int, env Envelope) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status want=%d got=%d message=%q error=%q", want, resp.StatusCode, env.Message, env.Error)
	}
}

func mustUnmarshal(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("json.Unmarshal failed: %v data=%s", err, string(raw))
	}
}

func toStr(id int64) string {
	return strconv.FormatInt(id, 10)
}

// 管理者でログインしてアクセストークンを返す（ADMIN_EMAIL/ADMIN_PASSWORD前提）
func adminLogin(t *testing.T, c *TestClient, ctx context.Context) string {
	t.Helper()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		t.Skip("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin e2e")
	}

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, env := c.doJSON(ctx, t, http.MethodPost, "/api/auth/login", "", body)
	requireStatus(t, resp, http.StatusOK, env)

	var out struct {
		Token struct {
			AccessToken string `json:"accessToken"`
		} `json:"token"`
	}
	mustUnmarshal(t, env.Data, &out)
	if out.Token.AccessToken == "" {
		t.Fatalf("empty access token: data=%s", string(env.Data))
	}
	return out.Token.AccessToken
}
