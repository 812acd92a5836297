package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
)

// fakeProductRepo only implements the search path; the rest of the interface
// is unused here.
type fakeProductRepo struct {
	nameMatches  []model.Product
	otherMatches []model.Product
}

func (f *fakeProductRepo) Create(context.Context, *model.Product, []string) error { return nil }
func (f *fakeProductRepo) FindByID(context.Context, string) (*model.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindAll(context.Context) ([]model.Product, error)        { return nil, nil }
func (f *fakeProductRepo) Update(context.Context, *model.Product, []string) error  { return nil }
func (f *fakeProductRepo) Delete(context.Context, string) error                    { return nil }
func (f *fakeProductRepo) CountByIDs(context.Context, []string) (int, error)       { return 0, nil }
func (f *fakeProductRepo) CountCategoriesByIDs(context.Context, []string) (int, error) {
	return 0, nil
}
func (f *fakeProductRepo) FindCategories(context.Context, string) ([]model.Category, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindActiveByCategory(context.Context, string, int) ([]model.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindActiveByIDs(context.Context, []string) ([]model.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindDiscounted(context.Context, int) ([]model.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindCreatedSince(context.Context, time.Time, int) ([]model.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) SearchActive(context.Context, string) ([]model.Product, []model.Product, error) {
	return f.nameMatches, f.otherMatches, nil
}

func activeProduct(id string) model.Product {
	return model.Product{BaseModel: model.BaseModel{ID: id}, Name: id, Active: true}
}

func newTestUseCase(products *fakeProductRepo) *searchUseCase {
	return &searchUseCase{
		products: products,
		logger:   logger.NewNop(),
	}
}

func TestSearchProductsRejectsEmptyQuery(t *testing.T) {
	uc := newTestUseCase(&fakeProductRepo{})

	_, err := uc.SearchProducts(context.Background(), "", 1, 10)
	appErr := apperror.As(err)
	if appErr == nil || appErr.Kind != apperror.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearchProductsRanksNameMatchesFirst(t *testing.T) {
	uc := newTestUseCase(&fakeProductRepo{
		nameMatches:  []model.Product{activeProduct("n1"), activeProduct("n2")},
		otherMatches: []model.Product{activeProduct("o1")},
	})

	resp, err := uc.SearchProducts(context.Background(), "brigadeiro", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := resp.Data.([]model.Product)
	if !ok {
		t.Fatalf("unexpected data type %T", resp.Data)
	}
	want := []string{"n1", "n2", "o1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if resp.Pagination.Total != 3 || resp.Pagination.TotalPages != 1 {
		t.Errorf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestSearchProductsPaginatesCombinedList(t *testing.T) {
	uc := newTestUseCase(&fakeProductRepo{
		nameMatches:  []model.Product{activeProduct("n1"), activeProduct("n2"), activeProduct("n3")},
		otherMatches: []model.Product{activeProduct("o1"), activeProduct("o2")},
	})

	resp, err := uc.SearchProducts(context.Background(), "bolo", 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := resp.Data.([]model.Product)
	if len(got) != 2 || got[0].ID != "n3" || got[1].ID != "o1" {
		t.Fatalf("expected page 2 to span the rank boundary [n3 o1], got %+v", got)
	}
	if resp.Pagination.Total != 5 || resp.Pagination.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", resp.Pagination)
	}

	past, err := uc.SearchProducts(context.Background(), "bolo", 9, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(past.Data.([]model.Product)) != 0 {
		t.Error("page beyond the result set should be empty, not an error")
	}
}

func TestSearchProductsNormalizesPaging(t *testing.T) {
	uc := newTestUseCase(&fakeProductRepo{
		nameMatches: []model.Product{activeProduct("n1")},
	})

	resp, err := uc.SearchProducts(context.Background(), "bolo", 0, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Pagination.Page != 1 || resp.Pagination.PerPage != 50 {
		t.Errorf("expected defaults page=1 perPage=50, got %+v", resp.Pagination)
	}
}
