package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/generator"
)

// SchemaVersion is part of every key; bump it when the record layout changes.
const SchemaVersion = 1

// ErrBadRecord indicates a stored record that does not decode or validate.
var ErrBadRecord = errors.New("catalog: bad record")

// record is the stored form of one order's enumeration.
type record struct {
	Version int             `json:"version"`
	Order   int             `json:"order"`
	Tables  [][][]int       `json:"tables"`
	Stats   generator.Stats `json:"stats"`
	Created time.Time       `json:"created"`
}

// Lookup is the outcome of Catalog.Fetch.
type Lookup struct {
	Groups []*fingroup.Group
	Stats  generator.Stats // of the enumeration that produced the entry
	Hit    bool            // served from the store
}

// Catalog serves enumeration results through a Store.
type Catalog struct {
	store  Store
	ttl    time.Duration
	logger *log.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithTTL sets the entry lifetime; 0 (the default) keeps entries forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) { c.ttl = ttl }
}

// WithLogger sets the logger, also handed to the generator. A nil logger
// is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a catalog over store. A nil store disables caching.
func New(store Store, opts ...Option) *Catalog {
	if store == nil {
		store = NewNullStore()
	}
	c := &Catalog{
		store:  store,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, fn := range opts {
		fn(c)
	}

	return c
}

// Key returns the store key of an order.
func Key(order int) string {
	return hashKey("groups", SchemaVersion, order)
}

// Groups returns the groups of the given order, from the store if possible.
func (c *Catalog) Groups(ctx context.Context, order int) ([]*fingroup.Group, error) {
	l, err := c.Fetch(ctx, order)
	if err != nil {
		return nil, err
	}

	return l.Groups, nil
}

// Fetch is Groups with provenance. Store read errors are logged and treated
// as misses; a store write error is logged and the computed result still
// returned.
func (c *Catalog) Fetch(ctx context.Context, order int) (*Lookup, error) {
	key := Key(order)

	data, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		c.logger.Warn("catalog read failed", "order", order, "err", err)
	case ok:
		l, derr := decode(data, order)
		if derr == nil {
			c.logger.Debug("catalog hit", "order", order, "groups", len(l.Groups))
			return l, nil
		}
		c.logger.Warn("dropping bad catalog entry", "order", order, "err", derr)
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("catalog delete failed", "order", order, "err", err)
		}
	}

	res, err := generator.Generate(order, generator.WithContext(ctx), generator.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	if data, err = encode(order, res); err != nil {
		return nil, fmt.Errorf("catalog: encode order %d: %w", order, err)
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("catalog write failed", "order", order, "err", err)
	}

	return &Lookup{Groups: res.Groups, Stats: res.Stats}, nil
}

// Invalidate removes the entry of an order.
func (c *Catalog) Invalidate(ctx context.Context, order int) error {
	return c.store.Delete(ctx, Key(order))
}

// Close closes the underlying store.
func (c *Catalog) Close() error {
	return c.store.Close()
}

func encode(order int, res generator.Result) ([]byte, error) {
	rec := record{
		Version: SchemaVersion,
		Order:   order,
		Tables:  make([][][]int, len(res.Groups)),
		Stats:   res.Stats,
		Created: time.Now().UTC(),
	}
	for i, g := range res.Groups {
		rec.Tables[i] = g.Table()
	}

	return json.Marshal(rec)
}

func decode(data []byte, order int) (*Lookup, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	if rec.Version != SchemaVersion || rec.Order != order {
		return nil, fmt.Errorf("%w: version %d order %d", ErrBadRecord, rec.Version, rec.Order)
	}
	if len(rec.Tables) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrBadRecord)
	}

	groups := make([]*fingroup.Group, len(rec.Tables))
	for i, t := range rec.Tables {
		g, err := fingroup.New(t)
		if err != nil {
			return nil, fmt.Errorf("%w: table %d: %w", ErrBadRecord, i, err)
		}
		if g.Order() != order {
			return nil, fmt.Errorf("%w: table %d has order %d", ErrBadRecord, i, g.Order())
		}
		groups[i] = g
	}

	return &Lookup{Groups: groups, Stats: rec.Stats, Hit: true}, nil
}
