package usecase

import (
	"errors"
	"testing"

	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"gorm.io/gorm"
)

func newTestUserUsecase(t *testing.T) (*UserUsecase, *gorm.DB) {
	db := setupTestDB(t)
	return NewUserUsecase(repository.NewUserRepository(db), repository.NewActivityLogRepository(db)), db
}

func hitungLogAuth(db *gorm.DB, aksi string, tanpaAktor bool) int64 {
	var n int64
	q := db.Model(&model.ActivityLog{}).Where("modul = ? AND aksi = ?", model.ModulAuth, aksi)
	if tanpaAktor {
		q = q.Where("user_id IS NULL")
	}
	q.Count(&n)
	return n
}

func TestRegisterDanLogin(t *testing.T) {
	uc, db := newTestUserUsecase(t)

	user, err := uc.Register("Budi Santoso", "OP-0100", "rahasia123", "budi@pabrik.local", model.RoleOperator)
	if err != nil {
		t.Fatalf("Register gagal: %v", err)
	}
	if user.Password == "rahasia123" {
		t.Error("password tersimpan tanpa hash")
	}

	token, loggedIn, err := uc.Login("OP-0100", "rahasia123", RequestMeta{IPAddress: "10.0.0.5"})
	if err != nil {
		t.Fatalf("Login gagal: %v", err)
	}
	if token == "" {
		t.Error("token kosong setelah login sukses")
	}
	if loggedIn.Nama != "Budi Santoso" {
		t.Errorf("nama user = %s, want Budi Santoso", loggedIn.Nama)
	}

	if n := hitungLogAuth(db, "login", false); n != 1 {
		t.Errorf("activity log login = %d baris, want 1", n)
	}
}

func TestLoginGagalTercatatTanpaAktor(t *testing.T) {
	uc, db := newTestUserUsecase(t)

	if _, _, err := uc.Login("TIDAK-ADA", "apapun", RequestMeta{}); !errors.Is(err, ErrLoginGagal) {
		t.Fatalf("login NIK asing: err = %v, want ErrLoginGagal", err)
	}

	if _, err := uc.Register("Budi", "OP-0100", "rahasia123", "", model.RoleOperator); err != nil {
		t.Fatalf("Register gagal: %v", err)
	}
	if _, _, err := uc.Login("OP-0100", "password-salah", RequestMeta{}); !errors.Is(err, ErrLoginGagal) {
		t.Fatalf("login password salah: err = %v, want ErrLoginGagal", err)
	}

	// Kedua kegagalan tercatat dengan user_id NULL
	if n := hitungLogAuth(db, "login gagal", true); n != 2 {
		t.Errorf("activity log login gagal (tanpa aktor) = %d baris, want 2", n)
	}
}

func TestRegisterRoleTidakDikenal(t *testing.T) {
	uc, _ := newTestUserUsecase(t)

	if _, err := uc.Register("Budi", "OP-0200", "rahasia", "", "supervisor"); !errors.Is(err, ErrRoleTidakDikenal) {
		t.Errorf("register role asing: err = %v, want ErrRoleTidakDikenal", err)
	}
}

func TestLogout(t *testing.T) {
	uc, db := newTestUserUsecase(t)

	uc.Logout(1, RequestMeta{IPAddress: "10.0.0.5"})

	if n := hitungLogAuth(db, "logout", false); n != 1 {
		t.Errorf("activity log logout = %d baris, want 1", n)
	}
}
