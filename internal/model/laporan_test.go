package model

import "testing"

func TestStatusLaporanValid(t *testing.T) {
	tests := []struct {
		status StatusLaporan
		want   bool
	}{
		{StatusDraft, true},
		{StatusSubmitted, true},
		{StatusLaporan("approved"), false},
		{StatusLaporan(""), false},
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("StatusLaporan(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestKondisiMesinValid(t *testing.T) {
	tests := []struct {
		kondisi KondisiMesin
		want    bool
	}{
		{KondisiBaik, true},
		{KondisiPerluMaintenance, true},
		{KondisiRusak, true},
		{KondisiMesin("hancur"), false},
		{KondisiMesin(""), false},
	}
	for _, tt := range tests {
		if got := tt.kondisi.Valid(); got != tt.want {
			t.Errorf("KondisiMesin(%q).Valid() = %v, want %v", tt.kondisi, got, tt.want)
		}
	}
}

func TestKualitasHasilValid(t *testing.T) {
	tests := []struct {
		kualitas KualitasHasil
		want     bool
	}{
		{KualitasBaik, true},
		{KualitasBagus, true},
		{KualitasCukup, true},
		{KualitasKurang, true},
		{KualitasHasil("jelek"), false},
	}
	for _, tt := range tests {
		if got := tt.kualitas.Valid(); got != tt.want {
			t.Errorf("KualitasHasil(%q).Valid() = %v, want %v", tt.kualitas, got, tt.want)
		}
	}
}
