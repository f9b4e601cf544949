package view

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"pricecompare/internal/product"
)

const DefaultMinSearchDisplay = 500 * time.Millisecond

// API is the part of the comparison API the controller calls.
// *client.Client implements it.
type API interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	SearchProducts(ctx context.Context, query string) ([]product.Product, error)
}

type Option func(*Controller)

func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithMinSearchDisplay sets how long the search indicator stays up at least.
func WithMinSearchDisplay(d time.Duration) Option {
	return func(c *Controller) { c.minSearchDisplay = d }
}

// OnChange registers fn to receive a snapshot after every state change.
func OnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller owns the view state and drives API requests.
//
// Request failures are logged and never surfaced: the product list keeps
// its previous value and the status goes back to Idle. Overlapping requests
// are not sequenced, so whichever response arrives last wins.
type Controller struct {
	api              API
	clock            Clock
	logger           *zap.Logger
	minSearchDisplay time.Duration
	onChange         func(State)

	mu    sync.Mutex
	state State
}

func NewController(api API, opts ...Option) *Controller {
	c := &Controller{
		api:              api,
		clock:            SystemClock{},
		logger:           zap.NewNop(),
		minSearchDisplay: DefaultMinSearchDisplay,
		state:            State{Filters: DefaultFilters(), Status: Idle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state.clone()
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(snapshot)
	}
}

// Mount loads the full catalog for the first render.
func (c *Controller) Mount(ctx context.Context) {
	c.fetchAll(ctx, LoadingInitial)
}

func (c *Controller) SetQuery(q string) {
	c.update(func(s *State) { s.Query = q })
}

// Submit searches for the current query. A blank query lists everything.
func (c *Controller) Submit(ctx context.Context) {
	query := c.State().Query
	if strings.TrimSpace(query) == "" {
		c.fetchAll(ctx, LoadingInitial)
		return
	}
	c.search(ctx, query)
}

// Clear resets the query and reloads the full catalog.
func (c *Controller) Clear(ctx context.Context) {
	c.update(func(s *State) { s.Query = "" })
	c.fetchAll(ctx, LoadingSearch)
}

func (c *Controller) SetBrand(brand string) {
	c.update(func(s *State) { s.Filters.Brand = brand })
}

func (c *Controller) SetPriceRange(priceRange string) {
	c.update(func(s *State) { s.Filters.PriceRange = priceRange })
}

func (c *Controller) SetRating(rating string) {
	c.update(func(s *State) { s.Filters.Rating = rating })
}

func (c *Controller) fetchAll(ctx context.Context, status Status) {
	c.update(func(s *State) { s.Status = status })

	products, err := c.api.ListProducts(ctx)
	if err != nil {
		c.logger.Error("error fetching products", zap.Error(err))
	}

	c.update(func(s *State) {
		if err == nil {
			s.Products = products
		}
		s.Status = Idle
	})
}

func (c *Controller) search(ctx context.Context, query string) {
	c.update(func(s *State) { s.Status = LoadingSearch })
	start := c.clock.Now()

	products, err := c.api.SearchProducts(ctx, query)
	if err != nil {
		c.logger.Error("error searching products", zap.String("query", query), zap.Error(err))
		c.update(func(s *State) { s.Status = Idle })
		return
	}

	// Hold LoadingSearch for at least minSearchDisplay. Only the state
	// transition waits; the request is not repeated.
	if err := DelayUntilElapsed(ctx, c.clock, start, c.minSearchDisplay); err != nil {
		c.logger.Debug("search display delay interrupted", zap.Error(err))
	}

	c.update(func(s *State) {
		s.Products = products
		s.Status = Idle
	})
}
