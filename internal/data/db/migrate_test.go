package db

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type foreignKeyRow struct {
	Table    string `gorm:"column:table"`
	From     string `gorm:"column:from"`
	To       string `gorm:"column:to"`
	OnDelete string `gorm:"column:on_delete"`
}

func migratedSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	name := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Open(sqlite.Open(SQLiteDSN(name)), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrateAll(db); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	return db
}

func foreignKeys(t *testing.T, db *gorm.DB, table string) []foreignKeyRow {
	t.Helper()
	var rows []foreignKeyRow
	if err := db.Raw(fmt.Sprintf("PRAGMA foreign_key_list(%s)", table)).Scan(&rows).Error; err != nil {
		t.Fatalf("foreign_key_list(%s): %v", table, err)
	}
	return rows
}

func TestAutoMigrateAllForeignKeysPointAtOwners(t *testing.T) {
	db := migratedSQLite(t)

	cases := []struct {
		table    string
		want     foreignKeyRow
		onDelete string
	}{
		{
			table:    "rei_registro_institucional",
			want:     foreignKeyRow{Table: "cat_catalogo_universidad", From: "rei_cat_id", To: "cat_id"},
			onDelete: "RESTRICT",
		},
		{
			table:    "uni_unidad_investigacion",
			want:     foreignKeyRow{Table: "rei_registro_institucional", From: "uni_rei_id", To: "rei_id"},
			onDelete: "CASCADE",
		},
		{
			table:    "pry_proyecto_investigacion",
			want:     foreignKeyRow{Table: "rei_registro_institucional", From: "pry_rei_id", To: "rei_id"},
			onDelete: "CASCADE",
		},
	}
	for _, tc := range cases {
		rows := foreignKeys(t, db, tc.table)
		if len(rows) != 1 {
			t.Fatalf("%s: expected exactly one foreign key, got %+v", tc.table, rows)
		}
		got := rows[0]
		if got.Table != tc.want.Table || got.From != tc.want.From || got.To != tc.want.To {
			t.Fatalf("%s: foreign key %+v, want %+v", tc.table, got, tc.want)
		}
		if !strings.EqualFold(got.OnDelete, tc.onDelete) {
			t.Fatalf("%s: on_delete %q, want %q", tc.table, got.OnDelete, tc.onDelete)
		}
	}

	if rows := foreignKeys(t, db, "cat_catalogo_universidad"); len(rows) != 0 {
		t.Fatalf("catalog table must not reference other tables, got %+v", rows)
	}
}

func TestAutoMigrateAllAcceptsCatalogRowOnEmptyDatabase(t *testing.T) {
	db := migratedSQLite(t)
	if err := db.Exec(
		"INSERT INTO cat_catalogo_universidad (cat_nombre_oficial, cat_siglas, cat_ciudad, cat_activa) VALUES (?, ?, ?, ?)",
		"Universidad de Ingenieria y Tecnologia", "UTEC", "Lima", true,
	).Error; err != nil {
		t.Fatalf("insert catalog row: %v", err)
	}
}
