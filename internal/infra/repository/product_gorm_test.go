package repository

import (
	"testing"

	"watchstore/internal/config"
	"watchstore/internal/domain/model"
	repo "watchstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DryRunでSQLを組み立てるだけのセッション（DBへは接続しない）
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=dryrun dbname=dryrun"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}
	return db
}

func buildListSQL(t *testing.T, mode string, f repo.ProductFilter) (string, []interface{}) {
	t.Helper()
	r := NewProductGormRepository(newDryRunDB(t), mode)

	var products []model.Product
	stmt := r.applyFilter(r.db.Model(&model.Product{}), f).Find(&products).Statement
	return stmt.SQL.String(), stmt.Vars
}

// substringモードは name/description への ILIKE 部分一致になる
func Test_ApplyFilter_Search_Substring(t *testing.T) {
	sql, vars := buildListSQL(t, config.SearchModeSubstring, repo.ProductFilter{Search: "diver"})

	assert.Contains(t, sql, "name ILIKE")
	assert.Contains(t, sql, "description ILIKE")
	assert.Contains(t, sql, " OR ")
	assert.NotContains(t, sql, "to_tsvector")
	assert.Contains(t, vars, "%diver%")
}

// fulltextモードはPostgresの全文検索述語になる（部分一致とは別のヒット集合）
func Test_ApplyFilter_Search_Fulltext(t *testing.T) {
	sql, vars := buildListSQL(t, config.SearchModeFulltext, repo.ProductFilter{Search: "diver"})

	assert.Contains(t, sql, "to_tsvector('english', name || ' ' || description) @@ plainto_tsquery('english',")
	assert.NotContains(t, sql, "ILIKE")
	assert.Contains(t, vars, "diver")
	assert.NotContains(t, vars, "%diver%")
}

// 空白だけのsearchはどちらのモードでも述語を足さない
func Test_ApplyFilter_Search_Blank(t *testing.T) {
	for _, mode := range []string{config.SearchModeSubstring, config.SearchModeFulltext} {
		sql, _ := buildListSQL(t, mode, repo.ProductFilter{Search: "   "})

		assert.NotContains(t, sql, "ILIKE")
		assert.NotContains(t, sql, "to_tsvector")
	}
}

// 全条件はANDで結合され、バインド値は指定順に並ぶ
func Test_ApplyFilter_Conjunction(t *testing.T) {
	min, max := 100.0, 500.0
	sql, vars := buildListSQL(t, config.SearchModeSubstring, repo.ProductFilter{
		Category: "Sport",
		Brand:    "Seiko",
		MinPrice: &min,
		MaxPrice: &max,
		Search:   "diver",
	})

	assert.Contains(t, sql, "category = $")
	assert.Contains(t, sql, "brand = $")
	assert.Contains(t, sql, "price >= $")
	assert.Contains(t, sql, "price <= $")
	assert.Contains(t, sql, "ILIKE")
	assert.Equal(t, []interface{}{"Sport", "Seiko", 100.0, 500.0, "%diver%", "%diver%"}, vars)
}
