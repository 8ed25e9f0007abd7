package profile

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// TemplateSource supplies the bootstrap document for a profile id.
// Implementations must reject ids outside the known whitelist; the profile
// id reaches this layer straight from the request path, so template lookup
// is a security boundary, not a convenience.
type TemplateSource interface {
	Template(profileID string) (*domain.Profile, error)
}

// DirTemplates loads templates from one JSON file per profile id inside a
// directory. Only whitelisted profile ids are ever turned into file paths.
type DirTemplates struct {
	dir     string
	allowed map[string]bool

	mu    sync.Mutex
	cache map[string]*domain.Profile
}

// NewDirTemplates creates a DirTemplates over dir with the engine's
// profile-id whitelist.
func NewDirTemplates(dir string) *DirTemplates {
	allowed := make(map[string]bool)
	for _, id := range domain.ProfileIDs() {
		allowed[id] = true
	}
	return &DirTemplates{
		dir:     dir,
		allowed: allowed,
		cache:   make(map[string]*domain.Profile),
	}
}

// Template returns the parsed template document for profileID.
func (t *DirTemplates) Template(profileID string) (*domain.Profile, error) {
	if !t.allowed[profileID] {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if cached, ok := t.cache[profileID]; ok {
		return cached, nil
	}

	var p domain.Profile
	if err := utils.LoadJSON(filepath.Join(t.dir, profileID+".json"), &p); err != nil {
		return nil, fmt.Errorf("%w: template for %s: %v", domain.ErrStoreUnavailable, profileID, err)
	}
	p.ProfileID = profileID
	t.cache[profileID] = &p
	return &p, nil
}

// StaticTemplates serves templates from an in-memory map. Test helper and
// dev-mode source.
type StaticTemplates map[string]*domain.Profile

// Template returns the mapped template or ErrProfileNotFound.
func (t StaticTemplates) Template(profileID string) (*domain.Profile, error) {
	p, ok := t[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return p, nil
}
