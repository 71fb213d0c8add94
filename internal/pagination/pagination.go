package pagination

// 一覧系エンドポイント共通のページング既定値
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params は正規化済みの page/limit
type Params struct {
	Page  int
	Limit int
}

// Normalize は生のpage/limitを安全な範囲に丸める。
// page は最小1、limit は [1, MaxLimit]。エラーにはしない（丸めるだけ）。
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset は (page-1)*limit
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo は一覧レスポンスに載せるページングメタデータ
type PageInfo struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// PageInfo は件数確定後のメタデータを計算する。
// totalPages = ceil(total/limit)。total=0 なら totalPages=0。
// 範囲外ページ（page > totalPages）は空ページとして扱い、エラーにしない。
func (p Params) PageInfo(total int64) PageInfo {
	limit := int64(p.Limit)
	totalPages := int((total + limit - 1) / limit)

	return PageInfo{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
		HasNextPage:  p.Page < totalPages,
		HasPrevPage:  p.Page > 1,
	}
}
