package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandler_IndexHandler(t *testing.T) {
	tests := []struct {
		name            string
		request         func() *http.Request
		setupMocks      func(*MockAnswerer)
		wantStatus      int
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:       "GET renders empty form",
			request:    func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
			setupMocks: func(*MockAnswerer) {},
			wantStatus: http.StatusOK,
			wantContains: []string{
				`<textarea id="question" name="question" required></textarea>`,
			},
			wantNotContains: []string{`id="result"`},
		},
		{
			name: "POST answers question",
			request: func() *http.Request {
				return postForm(url.Values{"question": {"What is 2+2?"}})
			},
			setupMocks: func(m *MockAnswerer) {
				m.EXPECT().Answer(gomock.Any(), "what is").Return("4")
			},
			wantStatus: http.StatusOK,
			wantContains: []string{
				`<p id="normalized">what is</p>`,
				`<pre id="answer">4</pre>`,
			},
		},
		{
			name: "POST echoes question escaped",
			request: func() *http.Request {
				return postForm(url.Values{"question": {"Is <script> safe?"}})
			},
			setupMocks: func(m *MockAnswerer) {
				m.EXPECT().Answer(gomock.Any(), "is script safe").Return("No.")
			},
			wantStatus: http.StatusOK,
			wantContains: []string{
				"Is &lt;script&gt; safe?",
				`<p id="normalized">is script safe</p>`,
				`<pre id="answer">No.</pre>`,
			},
			wantNotContains: []string{"<script>"},
		},
		{
			name: "POST without question skips fetch",
			request: func() *http.Request {
				return postForm(url.Values{"other": {"x"}})
			},
			setupMocks:      func(*MockAnswerer) {},
			wantStatus:      http.StatusOK,
			wantNotContains: []string{`id="result"`},
		},
		{
			name: "POST with empty question skips fetch",
			request: func() *http.Request {
				return postForm(url.Values{"question": {""}})
			},
			setupMocks:      func(*MockAnswerer) {},
			wantStatus:      http.StatusOK,
			wantNotContains: []string{`id="result"`},
		},
		{
			name: "malformed form body still renders",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("question=%zz"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			setupMocks: func(*MockAnswerer) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "sanitized failure text is shown as answer",
			request: func() *http.Request {
				return postForm(url.Values{"question": {"Hello?"}})
			},
			setupMocks: func(m *MockAnswerer) {
				m.EXPECT().Answer(gomock.Any(), "hello").
					Return("An error occurred while communicating with the LLM API.")
			},
			wantStatus:   http.StatusOK,
			wantContains: []string{"An error occurred while communicating with the LLM API."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnswerer := NewMockAnswerer(ctrl)
			tt.setupMocks(mockAnswerer)

			router := NewRouter(NewHandlers(mockAnswerer, nil))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.request())

			if w.Code != tt.wantStatus {
				t.Errorf("IndexHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("IndexHandler() Content-Type = %q, want text/html", ct)
			}

			body := w.Body.String()
			for _, s := range tt.wantContains {
				if !strings.Contains(body, s) {
					t.Errorf("IndexHandler() body = %s, want containing %q", body, s)
				}
			}
			for _, s := range tt.wantNotContains {
				if strings.Contains(body, s) {
					t.Errorf("IndexHandler() body contains %q, want absent", s)
				}
			}
		})
	}
}

func TestRouter_RejectsOtherMethodsAndPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(NewHandlers(NewMockAnswerer(ctrl), nil))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodPut, "/", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/answer", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.wantStatus {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
		}
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	errorResponse(w, http.StatusInternalServerError)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("errorResponse() status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "Internal Server Error") {
		t.Errorf("errorResponse() body = %q, want status text", w.Body.String())
	}
}
