package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kabs-design-api/internal/application/auth"
	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/application/usecase"
	infraai "github.com/jhoicas/kabs-design-api/internal/infrastructure/ai"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/kabs-design-api/internal/infrastructure/pdf"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/kabs-design-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/kabs-design-api/pkg/jwt"
)

type testServer struct {
	app    *fiber.App
	tokens *pkgjwt.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.New()
	tokens := testManager(t)

	authUC := auth.NewAuthUseCase(store.Users(), store.Companies(), store, tokens).WithHashCost(bcrypt.MinCost)
	projectUC := project.NewProjectUseCase(
		store.Projects(), store.ProjectData(), store.PdfBackgrounds(), store,
		xlsx.NewProjectExporter(), infrapdf.NewMarotoSummaryRenderer(),
	)
	catalogUC := catalog.NewCatalogUseCase(catalog.NewRegistry(nil), store.Catalog())
	_, err := catalogUC.Load(context.Background())
	require.NoError(t, err)
	aiUC := usecase.NewAIUseCase(infraai.NewHeuristicNormalizer(), false, false)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(false)})
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:   "kabs-test",
		AuthUC:    authUC,
		ProjectUC: projectUC,
		CatalogUC: catalogUC,
		AIUC:      aiUC,
		Tokens:    tokens,
		Store:     store,
	})
	return &testServer{app: app, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

type session struct {
	Token   string `json:"token"`
	User    struct{ ID, Role string }
	Company struct{ ID, Slug string }
}

func (s *testServer) register(t *testing.T, email, company string) session {
	t.Helper()
	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": email, "password": "secreto1", "company_name": company,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out session
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestAuth_RegistroLoginYMe(t *testing.T) {
	s := newTestServer(t)
	sess := s.register(t, "ana@acme.test", "Acme Kitchens")
	assert.Equal(t, "acme-kitchens", sess.Company.Slug)
	assert.Equal(t, "admin", sess.User.Role)

	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "ANA@acme.test", "password": "secreto1", "company_name": "Otra",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "ana@acme.test", "password": "mala-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPassword := decode[map[string]any](t, body)

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "nadie@acme.test", "password": "mala-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, wrongPassword, decode[map[string]any](t, body))

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "ana@acme.test", "password": "secreto1"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	login := decode[session](t, body)

	resp, body = s.do(t, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[map[string]string](t, body)
	assert.Equal(t, sess.Company.ID, me["company_id"])
	assert.Equal(t, "admin", me["role"])
}

func TestAuth_ValidacionDevuelveDetalles(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{"email": "no-es-email", "password": "123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[struct {
		Code    string
		Details []struct{ Field string }
	}](t, body)
	assert.Equal(t, "VALIDATION", out.Code)
	fields := make([]string, 0, len(out.Details))
	for _, d := range out.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"email", "password", "company_name"}, fields)
}

func TestProjects_SinToken(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProjects_CicloDeVersiones(t *testing.T) {
	s := newTestServer(t)
	sess := s.register(t, "ana@acme.test", "Acme")

	resp, body := s.do(t, http.MethodPost, "/api/projects", sess.Token, fiber.Map{
		"name": "Cocina", "data": fiber.Map{"rooms": []any{}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[struct {
		Project struct{ ID string }
	}](t, body)
	id := created.Project.ID

	resp, body = s.do(t, http.MethodGet, "/api/projects/"+id, sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[struct {
		Project struct {
			Version int             `json:"version"`
			Data    json.RawMessage `json:"data"`
		}
	}](t, body)
	assert.Equal(t, 1, detail.Project.Version)
	assert.JSONEq(t, `{"rooms":[]}`, string(detail.Project.Data))

	resp, body = s.do(t, http.MethodPost, "/api/projects/"+id+"/data", sess.Token, fiber.Map{"data": fiber.Map{"rooms": []any{"a"}}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, 2, decode[struct{ Version int }](t, body).Version)

	resp, body = s.do(t, http.MethodGet, "/api/projects", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		Projects []struct {
			ID           string `json:"id"`
			VersionCount int    `json:"version_count"`
		}
	}](t, body)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, 2, list.Projects[0].VersionCount)

	resp, body = s.do(t, http.MethodGet, "/api/projects/"+id+"/data", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"rooms":["a"]}`, string(decode[struct {
		Data json.RawMessage `json:"data"`
	}](t, body).Data))

	resp, _ = s.do(t, http.MethodDelete, "/api/projects/"+id, sess.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/projects/"+id, sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/projects/"+id+"/data", sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjects_AislamientoEntreEmpresas(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "a@a.test", "A")
	b := s.register(t, "b@b.test", "B")

	resp, body := s.do(t, http.MethodPost, "/api/projects", a.Token, fiber.Map{"name": "Privado"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[struct{ Project struct{ ID string } }](t, body).Project.ID

	resp, missing := s.do(t, http.MethodGet, "/api/projects/"+uuid.NewString(), b.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, foreign := s.do(t, http.MethodGet, "/api/projects/"+id, b.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, string(missing), string(foreign))

	resp, _ = s.do(t, http.MethodPost, "/api/projects/"+id+"/data", b.Token, fiber.Map{"data": fiber.Map{}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = s.do(t, http.MethodDelete, "/api/projects/"+id, b.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/api/projects", b.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"projects":[]}`, string(body))

	resp, _ = s.do(t, http.MethodGet, "/api/projects/no-es-uuid", a.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjects_FondosPDFYResumen(t *testing.T) {
	s := newTestServer(t)
	sess := s.register(t, "ana@acme.test", "Acme")
	resp, body := s.do(t, http.MethodPost, "/api/projects", sess.Token, fiber.Map{"name": "Baño"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[struct{ Project struct{ ID string } }](t, body).Project.ID

	resp, body = s.do(t, http.MethodPost, "/api/projects/"+id+"/pdf-backgrounds", sess.Token, fiber.Map{
		"file_url": "https://files.test/plano.pdf", "file_name": "plano.pdf", "page_count": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/api/projects/"+id+"/pdf-backgrounds", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		PdfBackgrounds []struct {
			FileName string `json:"file_name"`
		} `json:"pdf_backgrounds"`
	}](t, body)
	require.Len(t, list.PdfBackgrounds, 1)
	assert.Equal(t, "plano.pdf", list.PdfBackgrounds[0].FileName)

	resp, body = s.do(t, http.MethodGet, "/api/projects/"+id+"/summary.pdf", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestProjects_ExportSoloAdmin(t *testing.T) {
	s := newTestServer(t)
	sess := s.register(t, "ana@acme.test", "Acme")

	resp, body := s.do(t, http.MethodGet, "/api/projects/export.xlsx", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "proyectos.xlsx")
	assert.NotEmpty(t, body)

	member, _, err := s.tokens.Issue(uuid.NewString(), sess.Company.ID, "member")
	require.NoError(t, err)
	resp, _ = s.do(t, http.MethodGet, "/api/projects/export.xlsx", member, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t)
	sess := s.register(t, "ana@acme.test", "Acme")

	resp, body := s.do(t, http.MethodGet, "/api/catalog/blocks", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		Blocks []struct {
			ID          string            `json:"id"`
			Width       float64           `json:"width"`
			PlanSymbols []json.RawMessage `json:"planSymbols"`
		}
	}](t, body)
	require.Len(t, list.Blocks, 8)
	assert.Positive(t, list.Blocks[0].Width)
	assert.NotEmpty(t, list.Blocks[0].PlanSymbols)

	first := list.Blocks[0].ID
	resp, body = s.do(t, http.MethodGet, "/api/catalog/blocks/"+first+"/symbol.svg", sess.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "<svg")

	resp, _ = s.do(t, http.MethodGet, "/api/catalog/blocks/no-existe", sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	block := fiber.Map{
		"id": "pantry-600", "name": "Pantry", "category": "kitchen", "width": 600, "height": 600,
		"planSymbols": []fiber.Map{{"kind": "rect", "x": 0, "y": 0, "width": 1, "height": 1}},
	}
	member, _, err := s.tokens.Issue(uuid.NewString(), sess.Company.ID, "member")
	require.NoError(t, err)
	resp, _ = s.do(t, http.MethodPost, "/api/catalog/blocks", member, block)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/catalog/blocks", sess.Token, block)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = s.do(t, http.MethodGet, "/api/catalog/blocks/pantry-600", sess.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/catalog/blocks", sess.Token, fiber.Map{"id": "x", "name": "X", "category": "garage"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/catalog/blocks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAI(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/ai/config", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"has_openai_key":false,"has_anthropic_key":false,"provider":"heuristic"}`, string(body))

	resp, body = s.do(t, http.MethodPost, "/api/ai/interpret", "", fiber.Map{"prompt": "Build a kitchen island"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "create a island", decode[struct {
		NormalizedPrompt string `json:"normalized_prompt"`
	}](t, body).NormalizedPrompt)

	resp, _ = s.do(t, http.MethodPost, "/api/ai/interpret", "", fiber.Map{"prompt": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestErrorHandler_CuerpoInvalido(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{no json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
