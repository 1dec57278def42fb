package usecase

import (
	"errors"
	"time"

	"cutting-floor-backend/config"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginGagal       = errors.New("NIK atau password salah")
	ErrUserNonaktif     = errors.New("akun sudah dinonaktifkan")
	ErrRoleTidakDikenal = errors.New("role tidak dikenal")
)

type UserUsecase struct {
	repo    repository.UserRepository
	logRepo repository.ActivityLogRepository
}

func NewUserUsecase(repo repository.UserRepository, logRepo repository.ActivityLogRepository) *UserUsecase {
	return &UserUsecase{repo: repo, logRepo: logRepo}
}

func (u *UserUsecase) Register(nama, nik, password, email, namaRole string) (*model.User, error) {
	role, err := u.repo.GetRoleByNama(namaRole)
	if err != nil {
		return nil, ErrRoleTidakDikenal
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		RoleID:   role.ID,
		Nama:     nama,
		NIK:      nik,
		Password: string(hashedPassword),
		Email:    email,
		IsActive: true,
	}
	if err := u.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login mengembalikan token JWT. Percobaan gagal tetap dicatat di activity log
// dengan user_id nil (aktor belum terverifikasi); pencatatan best-effort dan
// tidak pernah menggagalkan login itu sendiri.
func (u *UserUsecase) Login(nik, password string, meta RequestMeta) (string, *model.User, error) {
	user, err := u.repo.GetByNIK(nik)
	if err != nil {
		u.logRepo.Record(&model.ActivityLog{
			Aksi:       "login gagal",
			Modul:      model.ModulAuth,
			IPAddress:  meta.IPAddress,
			UserAgent:  meta.UserAgent,
			Keterangan: "NIK tidak terdaftar: " + nik,
		})
		return "", nil, ErrLoginGagal
	}

	if !user.IsActive {
		u.logRepo.Record(&model.ActivityLog{
			UserID:     &user.ID,
			Aksi:       "login gagal",
			Modul:      model.ModulAuth,
			IPAddress:  meta.IPAddress,
			UserAgent:  meta.UserAgent,
			Keterangan: "Akun nonaktif",
		})
		return "", nil, ErrUserNonaktif
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		u.logRepo.Record(&model.ActivityLog{
			Aksi:       "login gagal",
			Modul:      model.ModulAuth,
			IPAddress:  meta.IPAddress,
			UserAgent:  meta.UserAgent,
			Keterangan: "Password salah untuk NIK " + nik,
		})
		return "", nil, ErrLoginGagal
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"nik":     user.NIK,
		"nama":    user.Nama,
		"role":    user.Role.NamaRole,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(JWTSecret())
	if err != nil {
		return "", nil, err
	}

	u.logRepo.Record(&model.ActivityLog{
		UserID:    &user.ID,
		Aksi:      "login",
		Modul:     model.ModulAuth,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return t, user, nil
}

func (u *UserUsecase) Logout(userID uint, meta RequestMeta) {
	u.logRepo.Record(&model.ActivityLog{
		UserID:    &userID,
		Aksi:      "logout",
		Modul:     model.ModulAuth,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})
}

func (u *UserUsecase) GetAll() ([]model.User, error) {
	return u.repo.GetAll()
}

// SetActive mengaktifkan/menonaktifkan akun tanpa menghapus datanya.
func (u *UserUsecase) SetActive(userID uint, active bool) (*model.User, error) {
	user, err := u.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user tidak ditemukan")
		}
		return nil, err
	}
	user.IsActive = active
	if err := u.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// JWTSecret diambil dari env supaya tidak ada secret hardcoded di source.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "ganti-secret-ini-di-env"))
}
