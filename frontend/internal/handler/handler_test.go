package handler

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/breadit-dev/breadit/frontend/internal/markdown"
	"github.com/breadit-dev/breadit/frontend/internal/toast"
	"github.com/breadit-dev/breadit/frontend/internal/usernameform"
	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/domain"
	mw "github.com/breadit-dev/breadit/shared/middleware"
	"github.com/breadit-dev/breadit/shared/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPIClient struct {
	MockGetFeed        func(r *http.Request, page int) (*api.FeedResponse, error)
	MockGetMe          func(r *http.Request) (*domain.User, error)
	MockUpdateUsername func(r *http.Request, name string) error
	updateCalls        []string
}

func (m *mockAPIClient) GetFeed(r *http.Request, page int) (*api.FeedResponse, error) {
	if m.MockGetFeed != nil {
		return m.MockGetFeed(r, page)
	}
	return &api.FeedResponse{Posts: []domain.Post{}, Page: page}, nil
}

func (m *mockAPIClient) GetMe(r *http.Request) (*domain.User, error) {
	if m.MockGetMe != nil {
		return m.MockGetMe(r)
	}
	return &domain.User{}, nil
}

func (m *mockAPIClient) UpdateUsername(r *http.Request, name string) error {
	m.updateCalls = append(m.updateCalls, name)
	if m.MockUpdateUsername != nil {
		return m.MockUpdateUsername(r, name)
	}
	return nil
}

const toastsTmpl = `{{range .Common.Toasts}}[toast:{{.Title}}|{{.Description}}|{{.Variant}}]{{end}}`

var testTemplates = map[string]string{
	"feed.html": toastsTmpl + `{{range .Data.Posts}}<article>{{.Title}} r/{{.Subreddit.Name}} by {{.Author.DisplayName}} score={{.Score}} comments={{.CommentCount}} vote={{.UserVote}}{{.Content}}</article>{{end}}` +
		`{{if .Data.HasMore}}<a href="/?page={{.Data.NextPage}}">more</a>{{end}}`,
	"settings.html": toastsTmpl + `<input name="name" value="{{.Data.Username}}" maxlength="{{.Common.Validation.UsernameMaxLen}}">{{with .Data.FieldError}}<p class="field-error">{{.}}</p>{{end}}`,
	"error.html":    toastsTmpl + `<h1>{{.Data.Title}}</h1>`,
}

func newTestHandler(t *testing.T, client *mockAPIClient) *Handler {
	t.Helper()
	templates := make(map[string]*template.Template, len(testTemplates))
	for name, src := range testTemplates {
		templates[name] = template.Must(template.New(name).Parse(src))
	}
	public := config.Public{UsernameMinLen: 3, UsernameMaxLen: 32}
	editor := usernameform.New(validation.NewUsernameValidator(3, 32).Func(), client)
	return New(templates, public, markdown.New(), client, editor)
}

func withUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(mw.WithUser(r.Context(), user))
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// followToasts replays the cookies set by rr on a new request and pops them.
func followToasts(t *testing.T, rr *httptest.ResponseRecorder) []toast.Toast {
	t.Helper()
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		next.AddCookie(c)
	}
	return toast.Pop(httptest.NewRecorder(), next, false)
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	h := newTestHandler(t, &mockAPIClient{})
	rr := httptest.NewRecorder()

	h.renderTemplate(rr, httptest.NewRequest(http.MethodGet, "/", nil), "nope.html", nil)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSetTemplates_WhileRendering(t *testing.T) {
	h := newTestHandler(t, &mockAPIClient{})
	replacement := map[string]*template.Template{
		"error.html": template.Must(template.New("error.html").Parse(`<h1>reloaded {{.Data.Title}}</h1>`)),
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.SetTemplates(replacement)
		}()
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			h.renderError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadGateway, "Oops", "")
			assert.Equal(t, http.StatusBadGateway, rr.Code)
		}()
	}
	wg.Wait()

	rr := httptest.NewRecorder()
	h.renderError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, "Gone", "")
	assert.Equal(t, "<h1>reloaded Gone</h1>", rr.Body.String())
}
