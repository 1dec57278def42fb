package usecase

import "time"

// Fungsi turunan murni: dipanggil saat create/update laporan, hasilnya disimpan
// apa adanya di baris laporan. Pembulatan untuk tampilan urusan client.

// HitungEfisiensi menghitung persentase efisiensi cutting. Target 0 (atau
// negatif) menghasilkan 0, bukan pembagian nol. Nilai di atas 100 tidak
// dipotong.
func HitungEfisiensi(targetPcs, actualPcs int) float64 {
	if targetPcs <= 0 {
		return 0
	}
	return float64(actualPcs) / float64(targetPcs) * 100
}

// HitungTotalArea menghitung total area kain dalam m2. Lebar kain dikonversi
// dari cm ke meter sebelum dikalikan.
func HitungTotalArea(panjangMeter, lebarCm float64, jumlahLayer int) float64 {
	return panjangMeter * (lebarCm / 100) * float64(jumlahLayer)
}

// HitungDurasi menggabungkan tanggal laporan (YYYY-MM-DD) dengan jam mulai dan
// jam selesai (HH:MM) menjadi dua timestamp, lalu menghitung selisihnya dalam
// menit utuh.
//
// Kalau jam selesai tidak lebih besar dari jam mulai, dianggap cutting lewat
// tengah malam dan jam selesai digeser ke hari berikutnya. Shift malam di
// lantai produksi nyata, durasi negatif tidak.
func HitungDurasi(tanggal, jamMulai, jamSelesai string) (mulai, selesai time.Time, menit int, err error) {
	hari, err := time.ParseInLocation("2006-01-02", tanggal, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}

	jm, err := time.Parse("15:04", jamMulai)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	js, err := time.Parse("15:04", jamSelesai)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}

	mulai = time.Date(hari.Year(), hari.Month(), hari.Day(), jm.Hour(), jm.Minute(), 0, 0, time.Local)
	selesai = time.Date(hari.Year(), hari.Month(), hari.Day(), js.Hour(), js.Minute(), 0, 0, time.Local)

	if !selesai.After(mulai) {
		selesai = selesai.Add(24 * time.Hour)
	}

	menit = int(selesai.Sub(mulai).Minutes())
	return mulai, selesai, menit, nil
}
