package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"watchstore/internal/domain/model"
	"watchstore/internal/pagination"
	repo "watchstore/internal/repository"

	"golang.org/x/sync/errgroup"
)

type HTTPError struct {
	Status  int
	Message string
	Err     error // 500のとき元エラーをレスポンスのerror欄に載せる
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func WrapHTTPError(status int, message string, err error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /products の入力DTO。
// 数値はハンドラ側でパース済み（パース不能は既定値/nilに落ちていて、ここでは弾かない）。
type ListProductsInput struct {
	Page      int
	Limit     int
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	Search    string
	SortBy    string
	SortOrder string
}

type ProductListOutput struct {
	Products   []model.Product     `json:"products"`
	Pagination pagination.PageInfo `json:"pagination"`
}

// ListProducts は一覧リクエストを最初から最後まで取り仕切る。
// 絞り込み→並び順→ページングを組み立て、一覧と件数を同じ条件で取得して返す。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	pg := pagination.Normalize(in.Page, in.Limit)

	filter := repo.ProductFilter{
		Category: strings.TrimSpace(in.Category),
		Brand:    strings.TrimSpace(in.Brand),
		MinPrice: nonNegative(in.MinPrice),
		MaxPrice: nonNegative(in.MaxPrice),
		Search:   strings.TrimSpace(in.Search),
	}

	q := repo.ProductListQuery{
		Filter: filter,
		Sort:   repo.ResolveSort(in.SortBy, in.SortOrder),
		Offset: pg.Offset(),
		Limit:  pg.Limit,
	}

	// 一覧と件数は互いに依存しないので並行で読む。条件は必ず同じfilter。
	var (
		products []model.Product
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = u.productRepo.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.productRepo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProductListOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}

	return ProductListOutput{
		Products:   products,
		Pagination: pg.PageInfo(total),
	}, nil
}

// 負値の価格指定は未指定として扱う（エラーにしない）
func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return p, nil
}

const (
	defaultFeaturedLimit = 6
	maxFeaturedLimit     = pagination.MaxLimit
)

// おすすめ商品。ページングなし、limitだけ丸める。
func (u *ProductUsecase) FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}
	if limit > maxFeaturedLimit {
		limit = maxFeaturedLimit
	}

	products, err := u.productRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return products, nil
}

func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	values, err := u.productRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return values, nil
}

func (u *ProductUsecase) Brands(ctx context.Context) ([]string, error) {
	values, err := u.productRepo.DistinctBrands(ctx)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return values, nil
}

type AdminProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Rating      float64
	Reviews     int64
	StockCount  int64
	Specs       model.SpecMap
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, adminUserID int64, in AdminProductInput) (model.Product, error) {
	if adminUserID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Brand:       strings.TrimSpace(in.Brand),
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		InStock:     in.StockCount > 0,
		StockCount:  in.StockCount,
		Specs:       in.Specs,
	})
	if err != nil {
		return model.Product{}, WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return p, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, adminUserID int64, productID int64, in AdminProductInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Brand:       strings.TrimSpace(in.Brand),
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		InStock:     in.StockCount > 0,
		StockCount:  in.StockCount,
		Specs:       in.Specs,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, adminUserID int64, productID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return nil
}

func (u *ProductUsecase) AdminSetStock(ctx context.Context, adminUserID int64, productID int64, stockCount int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if stockCount < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	err := u.productRepo.SetStock(ctx, productID, stockCount)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return WrapHTTPError(http.StatusInternalServerError, "internal server error", err)
	}
	return nil
}

func validateProductInput(in AdminProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.StockCount < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return NewHTTPError(http.StatusBadRequest, "rating must be between 0 and 5")
	}
	return nil
}
