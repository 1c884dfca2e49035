package catalog

import (
	"sync"
	"sync/atomic"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// snapshot vista inmutable del catálogo. Nunca se modifica después de publicarse.
type snapshot struct {
	blocks []entity.Block
	byID   map[string]int
}

func newSnapshot(blocks []entity.Block) *snapshot {
	s := &snapshot{blocks: blocks, byID: make(map[string]int, len(blocks))}
	for i, b := range blocks {
		s.byID[b.ID] = i
	}
	return s
}

// Registry catálogo de bloques del proceso con copy-on-write: los lectores toman el snapshot
// vigente sin bloquear; los escritores se serializan con mu y publican un snapshot nuevo.
// Los slices devueltos comparten memoria con el snapshot: no deben modificarse.
type Registry struct {
	mu      sync.Mutex
	current atomic.Pointer[snapshot]
}

// NewRegistry crea el registro con el catálogo inicial (ids repetidos: gana el último).
func NewRegistry(blocks []entity.Block) *Registry {
	r := &Registry{}
	r.Replace(blocks)
	return r
}

// List devuelve el catálogo vigente en orden de publicación.
func (r *Registry) List() []entity.Block {
	s := r.current.Load()
	out := make([]entity.Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Get busca un bloque por id.
func (r *Registry) Get(id string) (entity.Block, bool) {
	s := r.current.Load()
	i, ok := s.byID[id]
	if !ok {
		return entity.Block{}, false
	}
	return s.blocks[i], true
}

// Len cantidad de bloques vigentes.
func (r *Registry) Len() int {
	return len(r.current.Load().blocks)
}

// Upsert publica b reemplazando cualquier bloque con el mismo id (last-write-wins).
// El bloque reemplazado sale de su posición y b queda al final. Devuelve true si reemplazó.
func (r *Registry) Upsert(b entity.Block) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load()
	_, replaced := old.byID[b.ID]
	next := make([]entity.Block, 0, len(old.blocks)+1)
	for _, existing := range old.blocks {
		if existing.ID != b.ID {
			next = append(next, existing)
		}
	}
	next = append(next, b)
	r.current.Store(newSnapshot(next))
	return replaced
}

// Replace reemplaza el catálogo completo.
func (r *Registry) Replace(blocks []entity.Block) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]entity.Block, 0, len(blocks))
	seen := make(map[string]int, len(blocks))
	for _, b := range blocks {
		if i, ok := seen[b.ID]; ok {
			next[i] = b
			continue
		}
		seen[b.ID] = len(next)
		next = append(next, b)
	}
	r.current.Store(newSnapshot(next))
}
