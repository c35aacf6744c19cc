package constants

import "errors"

// Taksonomi error domain live-class. Controller yang menerjemahkan ke HTTP,
// service cukup mengembalikan sentinel ini (boleh dibungkus fmt.Errorf + %w).
var (
	// Sesi/rekaman/pembelian tidak ada atau sudah soft-delete.
	ErrNotFound = errors.New("resource tidak ditemukan")

	// Resolver menjawab tidak berhak. Bisa dipulihkan dengan membeli/enroll.
	ErrNotEntitled = errors.New("tidak memiliki akses ke sesi ini")

	// Kuota peserta penuh. Tidak bisa di-retry sampai ada yang keluar.
	ErrSessionFull = errors.New("sesi sudah penuh")

	// Sudah punya pembelian pending/aktif (atau sudah berhak lewat sumber lain).
	// Diperlakukan sebagai redirect sukses, bukan hard error.
	ErrAlreadyEntitled = errors.New("sudah memiliki akses atau pembelian aktif")

	// Operasi tidak sah untuk state sekarang (join sesi cancelled, activate
	// pembelian yang sudah refund, leave tanpa join, dsb).
	ErrInvalidState = errors.New("operasi tidak valid untuk status saat ini")

	// Baca/tulis storage gagal setelah retry lokal. Aman diulang dari awal.
	ErrTransientStorage = errors.New("storage sedang bermasalah, coba lagi")
)
