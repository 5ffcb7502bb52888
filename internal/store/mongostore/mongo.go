// Package mongostore keeps products, purchases and sales in MongoDB collections.
package mongostore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/stockroom/internal/dependency"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	collectionProducts  = "products"
	collectionPurchases = "purchases"
	collectionSales     = "sales"
)

// Config defines how to reach the database.
type Config struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// Store implements dependency.Repository on top of a single shared client.
// The client is dialled on first use and reused by every request afterwards.
type Store struct {
	c   *Config
	now func() time.Time

	mu     sync.Mutex
	client *mongo.Client
}

// New returns a store without connecting, the first query dials the server.
func New(c *Config) (*Store, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if c.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}
	return &Store{c: c, now: time.Now}, nil
}

func (s *Store) database() (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		client, err := mongo.Connect(options.Client().ApplyURI(s.c.URI))
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		slog.Default().Info("mongo client created", slog.String("database", s.c.Database))
		s.client = client
	}
	return s.client.Database(s.c.Database), nil
}

func (s *Store) collection(name string) (*mongo.Collection, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

func (s *Store) Products() dependency.Products {
	return &productStore{s}
}

func (s *Store) Purchases() dependency.Purchases {
	return &purchaseStore{s}
}

func (s *Store) Sales() dependency.Sales {
	return &saleStore{s}
}

func (s *Store) Ping(ctx context.Context) error {
	db, err := s.database()
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, nil)
}

func (s *Store) Now() time.Time {
	return s.now()
}

// Close disconnects the client if it was ever created.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		slog.Default().Error("can't disconnect mongo client", slog.String("err", err.Error()))
	}
	s.client = nil
}
