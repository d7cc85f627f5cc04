package setup

import (
	"html/template"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/breadit-dev/breadit/frontend/internal/apiclient"
	"github.com/breadit-dev/breadit/frontend/internal/handler"
	"github.com/breadit-dev/breadit/frontend/internal/markdown"
	frontend_mw "github.com/breadit-dev/breadit/frontend/internal/middleware"
	"github.com/breadit-dev/breadit/frontend/internal/usernameform"
	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/jwt"
	"github.com/breadit-dev/breadit/shared/logger"
	mw "github.com/breadit-dev/breadit/shared/middleware"
	"github.com/breadit-dev/breadit/shared/middleware/metrics"
	"github.com/breadit-dev/breadit/shared/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	baseTemplate           = "base.html"
	partialsTemplate       = "partials.html"
	tmplPath               = "templates"
	staticPath             = "static"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler    *handler.Handler
	Auth       *frontend_mw.Auth
	Public     config.Public
	Metrics    *metrics.Metrics
	StaticPath string
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates, err := loadTemplates(tmplPath)
	if err != nil {
		return nil, err
	}
	textProcessor := markdown.New()
	apiClient := apiclient.New(cfg.Public.ApiBaseURL)

	usernames := validation.NewUsernameValidator(cfg.Public.UsernameMinLen, cfg.Public.UsernameMaxLen)
	editor := usernameform.New(usernames.Func(), apiClient)

	h := handler.New(templates, cfg.Public, textProcessor, apiClient, editor)
	startTemplateReloader(h, tmplPath)

	jwtSvc := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	auth := frontend_mw.NewAuth(mw.NewAuth(jwtSvc), cfg.Public.SecureCookies)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	logger.Log.Info("frontend dependencies ready", "api", cfg.Public.ApiBaseURL, "templates", len(templates))

	return &Dependencies{
		Handler:    h,
		Auth:       auth,
		Public:     cfg.Public,
		Metrics:    metrics.New("frontend", reg),
		StaticPath: staticPath,
	}, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"timeAgo": timeAgo,
	}
}

// loadTemplates parses every page in dir together with the base layout and
// the shared partials.
func loadTemplates(dir string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) != ".html" || f.Name() == baseTemplate || f.Name() == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(funcMap()).ParseFiles(
			path.Join(dir, baseTemplate),
			path.Join(dir, f.Name()),
			path.Join(dir, partialsTemplate),
		)
		if err != nil {
			return nil, err
		}
		templates[f.Name()] = tmpl
	}
	return templates, nil
}

func startTemplateReloader(h *handler.Handler, dir string) {
	if os.Getenv("ENV") != "development" {
		return
	}
	ticker := time.NewTicker(templateReloadInterval)
	go func() {
		for range ticker.C {
			templates, err := loadTemplates(dir)
			if err != nil {
				logger.Log.Error("failed to reload templates", "error", err)
				continue
			}
			h.SetTemplates(templates)
		}
	}()
}
