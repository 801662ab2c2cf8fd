package endpoint

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type requestSpec struct {
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

// apiResp mirrors util.APIResponse with Data left raw for typed decoding.
type apiResp struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func performRequest(t *testing.T, r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	var reader *strings.Reader
	setJSONHeader := false
	switch v := spec.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, err := json.Marshal(spec.body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(spec.method, spec.path, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response failed: %v; body: %s", err, w.Body.String())
		}
	}
	return w, resp
}

// decodeData unmarshals the response data into dst, failing the test on error.
func decodeData(t *testing.T, resp apiResp, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, dst); err != nil {
		t.Fatalf("parse data failed: %v; data: %s", err, resp.Data)
	}
}
