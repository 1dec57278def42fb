package database

import (
	"log"

	"cutting-floor-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Roles
	roles := []model.Role{
		{NamaRole: model.RoleAdmin},
		{NamaRole: model.RoleOperator},
		{NamaRole: model.RoleValidator},
	}
	for _, r := range roles {
		db.FirstOrCreate(&r, model.Role{NamaRole: r.NamaRole})
	}

	// 2. Seed Akun Admin Pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	var adminRole model.Role
	db.Where("nama_role = ?", model.RoleAdmin).First(&adminRole)

	admin := model.User{
		RoleID:   adminRole.ID,
		Nama:     "Administrator",
		NIK:      "ADM-0001",
		Password: string(hashedPassword),
		Email:    "admin@cutting-floor.local",
		IsActive: true,
	}
	db.FirstOrCreate(&admin, model.User{NIK: admin.NIK})

	// 3. Seed Shift Default
	shifts := []model.Shift{
		{NamaShift: "Shift Pagi", JamMulai: "07:00", JamSelesai: "15:00", IsActive: true},
		{NamaShift: "Shift Siang", JamMulai: "15:00", JamSelesai: "23:00", IsActive: true},
		{NamaShift: "Shift Malam", JamMulai: "23:00", JamSelesai: "07:00", IsActive: true},
	}
	for _, s := range shifts {
		db.FirstOrCreate(&s, model.Shift{NamaShift: s.NamaShift})
	}

	// 4. Seed Mesin Contoh
	mesins := []model.Mesin{
		{KodeMesin: "MC-001", NamaMesin: "Cutting Straight Knife 1", TipeMesin: "Straight Knife", StatusMesin: model.MesinAktif},
		{KodeMesin: "MC-002", NamaMesin: "Cutting Band Knife 1", TipeMesin: "Band Knife", StatusMesin: model.MesinAktif},
	}
	for _, m := range mesins {
		db.FirstOrCreate(&m, model.Mesin{KodeMesin: m.KodeMesin})
	}

	// 5. Seed Line Produksi
	lines := []model.LineProduksi{
		{KodeLine: "LINE-A", NamaLine: "Line Cutting A", KapasitasHarian: 2000, IsActive: true},
		{KodeLine: "LINE-B", NamaLine: "Line Cutting B", KapasitasHarian: 1500, IsActive: true},
	}
	for _, l := range lines {
		db.FirstOrCreate(&l, model.LineProduksi{KodeLine: l.KodeLine})
	}

	// 6. Seed Jenis Kain
	kains := []model.JenisKain{
		{KodeKain: "KN-001", NamaKain: "Cotton Combed 30s", Gramasi: 150, LebarStandarCm: 180, IsActive: true},
		{KodeKain: "KN-002", NamaKain: "Polyester PE", Gramasi: 120, LebarStandarCm: 150, IsActive: true},
	}
	for _, k := range kains {
		db.FirstOrCreate(&k, model.JenisKain{KodeKain: k.KodeKain})
	}

	log.Println("Seeding selesai")
}
