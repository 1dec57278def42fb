package usecase

import (
	"testing"
	"time"
)

func TestHitungEfisiensi(t *testing.T) {
	tests := []struct {
		name   string
		target int
		actual int
		want   float64
	}{
		{name: "normal", target: 100, actual: 95, want: 95},
		{name: "target nol", target: 0, actual: 50, want: 0},
		{name: "target negatif", target: -10, actual: 50, want: 0},
		{name: "aktual nol", target: 100, actual: 0, want: 0},
		{name: "di atas 100 tidak dipotong", target: 100, actual: 120, want: 120},
		{name: "pecahan", target: 80, actual: 60, want: 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitungEfisiensi(tt.target, tt.actual)
			if got != tt.want {
				t.Errorf("HitungEfisiensi(%d, %d) = %v, want %v", tt.target, tt.actual, got, tt.want)
			}
		})
	}
}

func TestHitungTotalArea(t *testing.T) {
	tests := []struct {
		name    string
		panjang float64
		lebar   float64
		layer   int
		want    float64
	}{
		{name: "contoh laporan", panjang: 50, lebar: 150, layer: 10, want: 750},
		{name: "layer nol", panjang: 50, lebar: 150, layer: 0, want: 0},
		{name: "panjang nol", panjang: 0, lebar: 150, layer: 10, want: 0},
		{name: "satu layer", panjang: 10, lebar: 100, layer: 1, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitungTotalArea(tt.panjang, tt.lebar, tt.layer)
			if got != tt.want {
				t.Errorf("HitungTotalArea(%v, %v, %d) = %v, want %v", tt.panjang, tt.lebar, tt.layer, got, tt.want)
			}
		})
	}
}

func TestHitungDurasi(t *testing.T) {
	tests := []struct {
		name       string
		tanggal    string
		jamMulai   string
		jamSelesai string
		wantMenit  int
		wantErr    bool
	}{
		{name: "pagi normal", tanggal: "2024-01-15", jamMulai: "08:00", jamSelesai: "10:30", wantMenit: 150},
		{name: "shift malam lewat tengah malam", tanggal: "2024-01-15", jamMulai: "23:00", jamSelesai: "07:00", wantMenit: 480},
		{name: "jam sama dianggap 24 jam", tanggal: "2024-01-15", jamMulai: "08:00", jamSelesai: "08:00", wantMenit: 1440},
		{name: "tanggal tidak valid", tanggal: "15-01-2024", jamMulai: "08:00", jamSelesai: "10:00", wantErr: true},
		{name: "jam tidak valid", tanggal: "2024-01-15", jamMulai: "8 pagi", jamSelesai: "10:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mulai, selesai, menit, err := HitungDurasi(tt.tanggal, tt.jamMulai, tt.jamSelesai)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HitungDurasi() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if menit != tt.wantMenit {
				t.Errorf("durasi = %d menit, want %d", menit, tt.wantMenit)
			}
			if !selesai.After(mulai) {
				t.Errorf("waktu selesai %v harus setelah waktu mulai %v", selesai, mulai)
			}
		})
	}
}

func TestHitungDurasiTimestampSesuaiTanggal(t *testing.T) {
	mulai, _, _, err := HitungDurasi("2024-01-15", "08:00", "10:30")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
	if !mulai.Equal(want) {
		t.Errorf("waktu mulai = %v, want %v", mulai, want)
	}
}
