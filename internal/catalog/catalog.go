package catalog

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Aorux01/Neodyme-sub003/internal/domain"
	"github.com/Aorux01/Neodyme-sub003/internal/utils"
)

// Price is the advertised cost of an offer.
type Price struct {
	CurrencyTemplate string `json:"currencyTemplate"`
	FinalPrice       int    `json:"finalPrice"`
}

// Grant is one item credited by a purchase. ProfileID routes the grant into
// a specific profile; empty means the operation's primary profile.
type Grant struct {
	TemplateID string `json:"templateId"`
	Quantity   int    `json:"quantity"`
	ProfileID  string `json:"profileId,omitempty"`
}

// Offer is one purchasable catalog entry.
type Offer struct {
	OfferID         string  `json:"offerId"`
	DevName         string  `json:"devName"`
	Price           Price   `json:"price"`
	Grants          []Grant `json:"itemGrants"`
	DenyOnOwnership bool    `json:"denyOnOwnership"`
}

// Provider resolves an offer id to its price and grants. The engine
// consumes this as an external collaborator and never mutates offers.
type Provider interface {
	GetOffer(ctx context.Context, offerID string) (*Offer, error)
}

// FileProvider reads offers from a JSON document keyed by offer id. The
// file is re-read on every lookup so catalog edits apply without a restart;
// wrap it in Cached for production traffic.
type FileProvider struct {
	path string
}

// NewFileProvider creates a FileProvider over the given catalog file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// GetOffer returns the named offer or ErrOfferNotFound.
func (p *FileProvider) GetOffer(ctx context.Context, offerID string) (*Offer, error) {
	var offers map[string]Offer
	if err := utils.LoadJSON(p.path, &offers); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	offer, ok := offers[offerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, offerID)
	}
	offer.OfferID = offerID
	return &offer, nil
}

// Cached wraps a Provider with an LRU cache of resolved offers.
type Cached struct {
	inner Provider
	cache *lru.Cache[string, *Offer]
}

// NewCached creates a caching wrapper holding up to size offers.
func NewCached(inner Provider, size int) (*Cached, error) {
	cache, err := lru.New[string, *Offer](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create offer cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// GetOffer serves from cache, falling back to the wrapped provider.
func (c *Cached) GetOffer(ctx context.Context, offerID string) (*Offer, error) {
	if offer, ok := c.cache.Get(offerID); ok {
		return offer, nil
	}
	offer, err := c.inner.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(offerID, offer)
	return offer, nil
}

// Static serves offers from an in-memory map. Test helper.
type Static map[string]*Offer

// GetOffer returns the mapped offer or ErrOfferNotFound.
func (s Static) GetOffer(ctx context.Context, offerID string) (*Offer, error) {
	offer, ok := s[offerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, offerID)
	}
	return offer, nil
}
