package repository

// Sort は解決済みの並び順（内部カラム名＋方向）
type Sort struct {
	Field string
	Desc  bool
}

// 外部のsortByキー → 内部カラム名の許可リスト。
// ここに無いキーで並び替えさせない（内部カラム名を外に晒さないため）。
var sortFields = map[string]string{
	"price":      "price",
	"rating":     "rating",
	"createdAt":  "created_at",
	"name":       "name",
	"reviews":    "reviews",
	"stockCount": "stock_count",
}

// ResolveSort はリクエストのsortBy/sortOrderを安全な並び順に解決する。
// 未知のsortByは created_at にフォールバック。
// sortOrder は "asc" ちょうどのときだけ昇順、それ以外（空・不正含む）は降順。
func ResolveSort(sortBy, sortOrder string) Sort {
	field, ok := sortFields[sortBy]
	if !ok {
		field = "created_at"
	}
	return Sort{
		Field: field,
		Desc:  sortOrder != "asc",
	}
}
