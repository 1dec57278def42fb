package notifier

import (
	"fmt"
	"log"

	"cutting-floor-backend/config"
	"cutting-floor-backend/internal/model"
	"cutting-floor-backend/internal/repository"

	"gopkg.in/gomail.v2"
)

// Notifier memberi tahu pihak lain saat laporan disubmit. Sifatnya best-effort
// dan dipanggil SETELAH transaksi commit: gagal kirim tidak mempengaruhi
// laporan yang sudah tersimpan.
type Notifier interface {
	LaporanDisubmit(laporan *model.LaporanCutting)
}

type emailNotifier struct {
	userRepo repository.UserRepository
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailNotifier membuat notifier SMTP untuk para validator. Mengembalikan
// nil kalau SMTP_HOST kosong, dan pemanggil wajib cek nil dulu.
func NewEmailNotifier(userRepo repository.UserRepository) Notifier {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return &emailNotifier{
		userRepo: userRepo,
		host:     host,
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USERNAME", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "no-reply@cutting-floor.local"),
	}
}

func (n *emailNotifier) LaporanDisubmit(laporan *model.LaporanCutting) {
	namaOperator := "operator"
	if op, err := n.userRepo.GetByID(laporan.OperatorID); err == nil {
		namaOperator = op.Nama
	}

	validators, err := n.userRepo.GetUsersByRole(model.RoleValidator)
	if err != nil {
		log.Printf("notifikasi email: gagal ambil daftar validator: %v", err)
		return
	}

	var tujuan []string
	for _, v := range validators {
		if v.Email != "" {
			tujuan = append(tujuan, v.Email)
		}
	}
	if len(tujuan) == 0 {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", tujuan...)
	m.SetHeader("Subject", fmt.Sprintf("Laporan cutting %s menunggu validasi", laporan.NomorLaporan))
	m.SetBody("text/plain", fmt.Sprintf(
		"Laporan %s (order %s, batch %s) telah disubmit oleh %s pada tanggal %s.\n"+
			"Silakan buka dashboard untuk melakukan validasi.",
		laporan.NomorLaporan, laporan.NomorOrder, laporan.NomorBatch, namaOperator, laporan.TanggalLaporan,
	))

	d := gomail.NewDialer(n.host, n.port, n.username, n.password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("notifikasi email: gagal kirim untuk %s: %v", laporan.NomorLaporan, err)
	}
}
