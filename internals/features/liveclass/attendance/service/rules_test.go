package service

import (
	"testing"
	"time"

	"kelasku_backend/internals/features/liveclass/attendance/model"
	sessionModel "kelasku_backend/internals/features/liveclass/sessions/model"
)

var sessionStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func testSession() *sessionModel.LiveSessionModel {
	return &sessionModel.LiveSessionModel{
		LiveSessionStartTime:       sessionStart,
		LiveSessionEndTime:         sessionStart.Add(90 * time.Minute),
		LiveSessionDurationMinutes: 90,
	}
}

func TestLateMinutes(t *testing.T) {
	cases := []struct {
		name     string
		joinedAt time.Time
		grace    int
		want     int
	}{
		{"tepat waktu", sessionStart, 10, 0},
		{"masih dalam grace", sessionStart.Add(10 * time.Minute), 10, 0},
		{"lewat grace", sessionStart.Add(11 * time.Minute), 10, 11},
		{"sangat telat", sessionStart.Add(45 * time.Minute), 10, 45},
		{"join sebelum mulai", sessionStart.Add(-20 * time.Minute), 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LateMinutes(tc.joinedAt, sessionStart, tc.grace); got != tc.want {
				t.Fatalf("LateMinutes = %d, mau %d", got, tc.want)
			}
		})
	}
}

func TestCycleMinutesClamped(t *testing.T) {
	join := sessionStart

	// properti durasi: join T, leave T+37 ⇒ 37 menit
	if got := CycleMinutes(join, join.Add(37*time.Minute)); got != 37 {
		t.Fatalf("CycleMinutes = %d, mau 37", got)
	}

	// leave sebelum join (jam mundur) tidak boleh negatif
	if got := CycleMinutes(join, join.Add(-5*time.Minute)); got != 0 {
		t.Fatalf("CycleMinutes mundur = %d, mau 0", got)
	}
}

func TestComputeScore(t *testing.T) {
	cases := []struct {
		name                       string
		late, early, dur, schedule int
		want                       int
	}{
		{"hadir penuh", 0, 0, 90, 90, 100},
		{"setengah sesi", 0, 0, 45, 90, 70},
		{"tidak pernah hadir", 0, 0, 0, 90, 40},
		{"telat dipotong", 12, 0, 90, 90, 88},
		{"telat capped 25", 60, 0, 90, 90, 75},
		{"pulang awal capped 15", 0, 40, 90, 90, 85},
		{"jadwal tidak diketahui", 0, 0, 30, 0, 100},
		{"durasi lebih dari jadwal tetap 100", 0, 0, 120, 90, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeScore(tc.late, tc.early, tc.dur, tc.schedule)
			if got != tc.want {
				t.Fatalf("ComputeScore = %d, mau %d", got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("ComputeScore keluar rentang: %d", got)
			}
		})
	}
}

func TestHasFreeSlot(t *testing.T) {
	two := 2
	if !HasFreeSlot(nil, 9999) {
		t.Fatal("tanpa batas harus selalu punya slot")
	}
	if !HasFreeSlot(&two, 1) {
		t.Fatal("1 dari 2 harus masih muat")
	}
	// batas kapasitas: slot ke-2 terisi → penuh
	if HasFreeSlot(&two, 2) {
		t.Fatal("2 dari 2 harus penuh")
	}
	if HasFreeSlot(&two, 3) {
		t.Fatal("overbooked harus penuh")
	}
}

// Join berulang idempoten: joined_at terakhir yang menang, durasi
// terakumulasi tidak pernah direset, late dikunci di join pertama.
func TestApplyJoinRejoin(t *testing.T) {
	sess := testSession()
	a := &model.LiveSessionAttendanceModel{}

	firstJoin := sessionStart.Add(20 * time.Minute)
	ApplyJoin(a, sess, firstJoin, 10)

	if !a.LiveSessionAttendanceIsPresent {
		t.Fatal("join pertama harus present")
	}
	if a.LiveSessionAttendanceStatus != model.AttendanceStatusLate {
		t.Fatalf("status = %s, mau late", a.LiveSessionAttendanceStatus)
	}
	if a.LiveSessionAttendanceLateMinutes != 20 {
		t.Fatalf("late = %d, mau 20", a.LiveSessionAttendanceLateMinutes)
	}

	// leave lalu re-join
	leaveAt := firstJoin.Add(15 * time.Minute)
	if !ApplyLeave(a, sess, leaveAt) {
		t.Fatal("leave siklus pertama harus sukses")
	}
	if a.LiveSessionAttendanceDurationMinutes != 15 {
		t.Fatalf("durasi = %d, mau 15", a.LiveSessionAttendanceDurationMinutes)
	}

	rejoinAt := leaveAt.Add(5 * time.Minute)
	ApplyJoin(a, sess, rejoinAt, 10)

	if a.LiveSessionAttendanceJoinedAt == nil || !a.LiveSessionAttendanceJoinedAt.Equal(rejoinAt) {
		t.Fatal("re-join harus menimpa joined_at")
	}
	if a.LiveSessionAttendanceLeftAt != nil {
		t.Fatal("re-join harus membuka siklus baru (left_at nil)")
	}
	if a.LiveSessionAttendanceDurationMinutes != 15 {
		t.Fatal("re-join tidak boleh mereset durasi terakumulasi")
	}
	if a.LiveSessionAttendanceLateMinutes != 20 {
		t.Fatal("late dikunci di join pertama")
	}

	// siklus kedua menambah akumulasi
	if !ApplyLeave(a, sess, rejoinAt.Add(30*time.Minute)) {
		t.Fatal("leave siklus kedua harus sukses")
	}
	if a.LiveSessionAttendanceDurationMinutes != 45 {
		t.Fatalf("durasi akumulatif = %d, mau 45", a.LiveSessionAttendanceDurationMinutes)
	}
}

func TestApplyLeaveWithoutOpenCycle(t *testing.T) {
	sess := testSession()

	// belum pernah join
	a := &model.LiveSessionAttendanceModel{}
	if ApplyLeave(a, sess, sessionStart.Add(time.Hour)) {
		t.Fatal("leave tanpa join harus ditolak")
	}
	if a.LiveSessionAttendanceDurationMinutes != 0 {
		t.Fatal("durasi harus tetap 0")
	}

	// double leave
	b := &model.LiveSessionAttendanceModel{}
	ApplyJoin(b, sess, sessionStart, 10)
	if !ApplyLeave(b, sess, sessionStart.Add(30*time.Minute)) {
		t.Fatal("leave pertama harus sukses")
	}
	if ApplyLeave(b, sess, sessionStart.Add(60*time.Minute)) {
		t.Fatal("leave kedua tanpa re-join harus ditolak")
	}
	if b.LiveSessionAttendanceDurationMinutes != 30 {
		t.Fatalf("durasi = %d, double leave tidak boleh menambah", b.LiveSessionAttendanceDurationMinutes)
	}
}

func TestApplyLeaveEarlyAndScore(t *testing.T) {
	sess := testSession()
	a := &model.LiveSessionAttendanceModel{}

	ApplyJoin(a, sess, sessionStart, 10)
	// keluar 30 menit sebelum selesai
	ApplyLeave(a, sess, sessionStart.Add(60*time.Minute))

	if a.LiveSessionAttendanceEarlyLeaveMinutes != 30 {
		t.Fatalf("early leave = %d, mau 30", a.LiveSessionAttendanceEarlyLeaveMinutes)
	}
	if !a.LiveSessionAttendanceIsPresent {
		t.Fatal("leave tidak boleh menghapus fakta kehadiran (is_present)")
	}
	// 40 + 60*(60/90) = 80, minus early cap 15 = 65
	if a.LiveSessionAttendanceScore != 65 {
		t.Fatalf("score = %d, mau 65", a.LiveSessionAttendanceScore)
	}
}

// Status excused manual tidak boleh ditimpa join berikutnya.
func TestApplyJoinKeepsManualExcuse(t *testing.T) {
	sess := testSession()
	a := &model.LiveSessionAttendanceModel{
		LiveSessionAttendanceStatus:   model.AttendanceStatusExcused,
		LiveSessionAttendanceIsManual: true,
	}

	ApplyJoin(a, sess, sessionStart, 10)
	if a.LiveSessionAttendanceStatus != model.AttendanceStatusExcused {
		t.Fatalf("status = %s, excused manual harus bertahan", a.LiveSessionAttendanceStatus)
	}
}
