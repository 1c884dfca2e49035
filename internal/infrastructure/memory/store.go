// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory).
// Todas las transacciones se serializan con un único mutex: se clona el estado al empezar
// y se publica el clon solo si fn termina sin error.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/application/auth"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/domain"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

var (
	_ auth.TxRunner    = (*Store)(nil)
	_ project.TxRunner = (*Store)(nil)

	_ repository.CompanyRepository       = (*CompanyRepo)(nil)
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.ProjectRepository       = (*ProjectRepo)(nil)
	_ repository.ProjectDataRepository   = (*ProjectDataRepo)(nil)
	_ repository.PdfBackgroundRepository = (*PdfBackgroundRepo)(nil)
	_ repository.CatalogRepository       = (*CatalogRepo)(nil)
)

type state struct {
	companies   map[string]entity.Company
	users       map[string]entity.User
	projects    map[string]entity.Project
	versions    map[string][]entity.ProjectDataVersion // por project_id, en orden de versión
	backgrounds map[string][]entity.PdfBackground      // por project_id, en orden de inserción
	blocks      map[string]entity.Block
}

func newState() *state {
	return &state{
		companies:   map[string]entity.Company{},
		users:       map[string]entity.User{},
		projects:    map[string]entity.Project{},
		versions:    map[string][]entity.ProjectDataVersion{},
		backgrounds: map[string][]entity.PdfBackground{},
		blocks:      map[string]entity.Block{},
	}
}

// clone copia los mapas y slices; los valores son structs inmutables una vez guardados.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.companies {
		c.companies[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.projects {
		c.projects[k] = v
	}
	for k, v := range s.versions {
		c.versions[k] = append([]entity.ProjectDataVersion(nil), v...)
	}
	for k, v := range s.backgrounds {
		c.backgrounds[k] = append([]entity.PdfBackground(nil), v...)
	}
	for k, v := range s.blocks {
		c.blocks[k] = v
	}
	return c
}

// Store base de datos en proceso. El valor cero no es usable: usar New.
type Store struct {
	mu    sync.Mutex
	state *state
}

// New crea un store vacío.
func New() *Store {
	return &Store{state: newState()}
}

// Ping siempre responde; existe para que /health trate igual a ambos drivers.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Companies repositorio de empresas fuera de transacción.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{view{store: s}} }

// Users repositorio de usuarios fuera de transacción.
func (s *Store) Users() *UserRepo { return &UserRepo{view{store: s}} }

// Projects repositorio de proyectos fuera de transacción.
func (s *Store) Projects() *ProjectRepo { return &ProjectRepo{view{store: s}} }

// ProjectData repositorio de versiones fuera de transacción.
func (s *Store) ProjectData() *ProjectDataRepo { return &ProjectDataRepo{view{store: s}} }

// PdfBackgrounds repositorio de fondos PDF fuera de transacción.
func (s *Store) PdfBackgrounds() *PdfBackgroundRepo { return &PdfBackgroundRepo{view{store: s}} }

// Catalog repositorio de bloques del catálogo.
func (s *Store) Catalog() *CatalogRepo { return &CatalogRepo{view{store: s}} }

// RunRegistration ejecuta fn dentro de una transacción.
func (s *Store) RunRegistration(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	return s.run(ctx, func(v view) error {
		return fn(&CompanyRepo{v}, &UserRepo{v})
	})
}

// RunProject ejecuta fn dentro de una transacción. Mientras dura, ninguna otra operación avanza,
// así que el par NextVersion + Create es atómico por construcción.
func (s *Store) RunProject(ctx context.Context, fn func(
	projects repository.ProjectRepository,
	versions repository.ProjectDataRepository,
) error) error {
	return s.run(ctx, func(v view) error {
		return fn(&ProjectRepo{v}, &ProjectDataRepo{v})
	})
}

func (s *Store) run(ctx context.Context, fn func(v view) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.state.clone()
	if err := fn(view{store: s, tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = tx
	return nil
}

// view da acceso al estado: el de la transacción si tx != nil, o el compartido bajo el mutex.
type view struct {
	store *Store
	tx    *state
}

func (v view) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.state)
}

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ v view }

// Create inserta la empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	return r.v.read(ctx, func(st *state) error {
		if _, ok := st.companies[c.ID]; ok {
			return domain.ErrConflict
		}
		st.companies[c.ID] = *c
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var out *entity.Company
	err := r.v.read(ctx, func(st *state) error {
		if c, ok := st.companies[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

// UserRepo usuarios en memoria. El email es único global.
type UserRepo struct{ v view }

// Create inserta el usuario; email repetido -> ErrConflict.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return r.v.read(ctx, func(st *state) error {
		if _, ok := st.companies[u.CompanyID]; !ok {
			return domain.ErrNotFound
		}
		for _, existing := range st.users {
			if existing.Email == u.Email {
				return domain.ErrConflict
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

// GetByEmail busca por email exacto.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.v.read(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Email == email {
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// GetByID busca por id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.v.read(ctx, func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

// ProjectRepo proyectos en memoria, siempre filtrados por company.
type ProjectRepo struct{ v view }

// Create inserta el proyecto.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	return r.v.read(ctx, func(st *state) error {
		if _, ok := st.companies[p.CompanyID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := st.projects[p.ID]; ok {
			return domain.ErrConflict
		}
		st.projects[p.ID] = *p
		return nil
	})
}

// ListByCompany proyectos del tenant por updated_at descendente.
func (r *ProjectRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ProjectSummary, error) {
	list := make([]*entity.ProjectSummary, 0)
	err := r.v.read(ctx, func(st *state) error {
		for _, p := range st.projects {
			if p.CompanyID != companyID {
				continue
			}
			s := &entity.ProjectSummary{Project: p, VersionCount: len(st.versions[p.ID])}
			if p.UserID != nil {
				if u, ok := st.users[*p.UserID]; ok {
					email := u.Email
					s.CreatedByEmail = &email
				}
			}
			list = append(list, s)
		}
		return nil
	})
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

// GetByID devuelve (nil, nil) si no existe o es de otro tenant.
func (r *ProjectRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Project, error) {
	var out *entity.Project
	err := r.v.read(ctx, func(st *state) error {
		if p, ok := st.projects[id]; ok && p.CompanyID == companyID {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: la transacción ya tiene el store en exclusiva.
func (r *ProjectRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Project, error) {
	return r.GetByID(ctx, companyID, id)
}

// Update reemplaza nombre, descripción y updated_at.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	return r.v.read(ctx, func(st *state) error {
		cur, ok := st.projects[p.ID]
		if !ok || cur.CompanyID != p.CompanyID {
			return nil
		}
		cur.Name = p.Name
		cur.Description = p.Description
		cur.UpdatedAt = p.UpdatedAt
		st.projects[p.ID] = cur
		return nil
	})
}

// Touch actualiza updated_at.
func (r *ProjectRepo) Touch(ctx context.Context, companyID, id string, at time.Time) error {
	return r.v.read(ctx, func(st *state) error {
		cur, ok := st.projects[id]
		if !ok || cur.CompanyID != companyID {
			return nil
		}
		cur.UpdatedAt = at
		st.projects[id] = cur
		return nil
	})
}

// Delete borra el proyecto y en cascada sus versiones y fondos PDF.
func (r *ProjectRepo) Delete(ctx context.Context, companyID, id string) (bool, error) {
	var deleted bool
	err := r.v.read(ctx, func(st *state) error {
		cur, ok := st.projects[id]
		if !ok || cur.CompanyID != companyID {
			return nil
		}
		delete(st.projects, id)
		delete(st.versions, id)
		delete(st.backgrounds, id)
		deleted = true
		return nil
	})
	return deleted, err
}

// ProjectDataRepo log de versiones en memoria.
type ProjectDataRepo struct{ v view }

// NextVersion MAX(version)+1.
func (r *ProjectDataRepo) NextVersion(ctx context.Context, projectID string) (int, error) {
	next := 1
	err := r.v.read(ctx, func(st *state) error {
		for _, v := range st.versions[projectID] {
			if v.Version >= next {
				next = v.Version + 1
			}
		}
		return nil
	})
	return next, err
}

// Create agrega la versión; (project_id, version) repetido -> ErrConflict.
func (r *ProjectDataRepo) Create(ctx context.Context, v *entity.ProjectDataVersion) error {
	return r.v.read(ctx, func(st *state) error {
		if _, ok := st.projects[v.ProjectID]; !ok {
			return domain.ErrNotFound
		}
		for _, existing := range st.versions[v.ProjectID] {
			if existing.Version == v.Version {
				return domain.ErrConflict
			}
		}
		cp := *v
		cp.Data = append(json.RawMessage(nil), v.Data...)
		st.versions[v.ProjectID] = append(st.versions[v.ProjectID], cp)
		return nil
	})
}

// Latest versión más alta del proyecto del tenant; (nil, nil) si no hay.
func (r *ProjectDataRepo) Latest(ctx context.Context, companyID, projectID string) (*entity.ProjectDataVersion, error) {
	var out *entity.ProjectDataVersion
	err := r.v.read(ctx, func(st *state) error {
		p, ok := st.projects[projectID]
		if !ok || p.CompanyID != companyID {
			return nil
		}
		for _, v := range st.versions[projectID] {
			if out == nil || v.Version > out.Version {
				out = &v
			}
		}
		if out != nil {
			out.Data = append(json.RawMessage(nil), out.Data...)
		}
		return nil
	})
	return out, err
}

// PdfBackgroundRepo referencias a fondos PDF en memoria.
type PdfBackgroundRepo struct{ v view }

// Create agrega la referencia.
func (r *PdfBackgroundRepo) Create(ctx context.Context, bg *entity.PdfBackground) error {
	return r.v.read(ctx, func(st *state) error {
		if _, ok := st.projects[bg.ProjectID]; !ok {
			return domain.ErrNotFound
		}
		st.backgrounds[bg.ProjectID] = append(st.backgrounds[bg.ProjectID], *bg)
		return nil
	})
}

// ListByProject más recientes primero; empates por orden de inserción inverso.
func (r *PdfBackgroundRepo) ListByProject(ctx context.Context, companyID, projectID string) ([]*entity.PdfBackground, error) {
	list := make([]*entity.PdfBackground, 0)
	err := r.v.read(ctx, func(st *state) error {
		p, ok := st.projects[projectID]
		if !ok || p.CompanyID != companyID {
			return nil
		}
		rows := st.backgrounds[projectID]
		for i := len(rows) - 1; i >= 0; i-- {
			bg := rows[i]
			list = append(list, &bg)
		}
		return nil
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, err
}

// CatalogRepo bloques publicados en memoria.
type CatalogRepo struct{ v view }

// List bloques ordenados por id.
func (r *CatalogRepo) List(ctx context.Context) ([]*entity.Block, error) {
	list := make([]*entity.Block, 0)
	err := r.v.read(ctx, func(st *state) error {
		for _, b := range st.blocks {
			list = append(list, &b)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

// Upsert reemplaza por id.
func (r *CatalogRepo) Upsert(ctx context.Context, b *entity.Block) error {
	return r.v.read(ctx, func(st *state) error {
		st.blocks[b.ID] = *b
		return nil
	})
}
