package utils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type paginationRow struct {
	ID   uint
	Name string
}

func TestApplyPagination(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:pagination_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&paginationRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		if err := db.Create(&paginationRow{Name: name}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var rows []paginationRow
	if err := ApplyPagination(db.Model(&paginationRow{}), Ptr(2), Ptr(2)).
		Order("id ASC").Find(&rows).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "c" || rows[1].Name != "d" {
		t.Errorf("page 2 = %q,%q, want c,d", rows[0].Name, rows[1].Name)
	}

	// không truyền limit/page thì trả toàn bộ
	rows = nil
	if err := ApplyPagination(db.Model(&paginationRow{}), nil, nil).
		Find(&rows).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 5 {
		t.Errorf("rows = %d, want 5", len(rows))
	}

	// page 0 không hợp lệ, bỏ qua phân trang
	rows = nil
	if err := ApplyPagination(db.Model(&paginationRow{}), Ptr(2), Ptr(0)).
		Find(&rows).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 5 {
		t.Errorf("rows = %d, want 5", len(rows))
	}
}
