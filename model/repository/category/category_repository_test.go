package category_test

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
	categoryRepo "gudang.GO/model/repository/category"
)

func categoryRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Category{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCategoryRepository_CreateAndFindAll(t *testing.T) {
	db := categoryRepoTestDB(t)
	repo := categoryRepo.NewCategoryRepository(db)

	cats, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll empty: %v", err)
	}
	if len(cats) != 0 {
		t.Errorf("expected 0 categories, got %d", len(cats))
	}

	for _, nama := range []string{"Alat Kantor", "Dapur"} {
		if err := repo.Create(&entity.Category{Nama: nama}); err != nil {
			t.Fatalf("Create %s: %v", nama, err)
		}
	}

	cats, err = repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Nama != "Alat Kantor" {
		t.Errorf("first category = %q, want Alat Kantor", cats[0].Nama)
	}
}

func TestCategoryRepository_FindByID(t *testing.T) {
	db := categoryRepoTestDB(t)
	repo := categoryRepo.NewCategoryRepository(db)

	cat := entity.Category{Nama: "Alat Kantor"}
	if err := repo.Create(&cat); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByID(cat.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Nama != "Alat Kantor" {
		t.Errorf("nama = %q, want Alat Kantor", found.Nama)
	}
}

func TestCategoryRepository_FindByID_NotFound(t *testing.T) {
	db := categoryRepoTestDB(t)
	repo := categoryRepo.NewCategoryRepository(db)

	_, err := repo.FindByID(42)
	var nf *categoryRepo.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if err.Error() != "Category with id 42 not found" {
		t.Errorf("message = %q", err.Error())
	}
}
