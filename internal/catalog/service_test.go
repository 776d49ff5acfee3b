package catalog

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubRepository struct {
	products []Product
	listErr  error
	migrated bool
	created  []Product
	countVal int64
	countErr error
}

func (s *stubRepository) Migrate(context.Context) error {
	s.migrated = true
	return nil
}

func (s *stubRepository) Count(context.Context) (int64, error) {
	return s.countVal, s.countErr
}

func (s *stubRepository) List(context.Context) ([]Product, error) {
	return s.products, s.listErr
}

func (s *stubRepository) GetByID(_ context.Context, id string) (*Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepository) CreateBatch(_ context.Context, products []Product) error {
	s.created = append(s.created, products...)
	return nil
}

func TestServiceGetMapsNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepository{})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.Get(context.Background(), "ghost")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestServiceGetRequiresID(t *testing.T) {
	t.Parallel()

	svc, _ := NewService(&stubRepository{})
	_, err := svc.Get(context.Background(), "")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceListWrapsRepositoryFailure(t *testing.T) {
	t.Parallel()

	svc, _ := NewService(&stubRepository{listErr: errors.New("disk gone")})
	_, err := svc.List(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestServiceGetReturnsProduct(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{products: []Product{
		{ID: "p-3", Title: "Kit C", Price: decimal.NewFromInt(780)},
	}}
	svc, _ := NewService(repo)

	product, err := svc.Get(context.Background(), "p-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Title != "Kit C" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestSeedLoadsFixtureOnlyWhenEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubRepository{}
	if err := Seed(ctx, repo, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !repo.migrated {
		t.Fatal("seed must migrate first")
	}
	if len(repo.created) != 4 {
		t.Fatalf("expected 4 seeded products, got %d", len(repo.created))
	}
	for _, p := range repo.created {
		if !p.IsActive {
			t.Fatalf("seeded product %s should be active", p.ID)
		}
		if p.Price.IsNegative() || p.Price.IsZero() {
			t.Fatalf("seeded product %s has bad price %s", p.ID, p.Price)
		}
	}

	populated := &stubRepository{countVal: 4}
	if err := Seed(ctx, populated, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(populated.created) != 0 {
		t.Fatal("seed must not overwrite an existing catalog")
	}
}
