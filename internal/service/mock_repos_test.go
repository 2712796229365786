package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"musok-platform/backend/internal/model"
	"musok-platform/backend/internal/repository"
	pkgerrors "musok-platform/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ShamanRepository ──

type mockShamanRepo struct {
	shamans map[string]*model.Shaman
}

func newMockShamanRepo() *mockShamanRepo {
	return &mockShamanRepo{shamans: make(map[string]*model.Shaman)}
}

func (m *mockShamanRepo) Create(_ context.Context, shaman *model.Shaman) error {
	if shaman.ShamanID == "" {
		shaman.ShamanID = fmt.Sprintf("shaman-%d", len(m.shamans)+1)
	}
	shaman.CreatedAt = time.Now()
	shaman.UpdatedAt = time.Now()
	m.shamans[shaman.ShamanID] = shaman
	return nil
}

func (m *mockShamanRepo) GetByID(_ context.Context, id string) (*model.Shaman, error) {
	if s, ok := m.shamans[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShamanRepo) GetByUserID(_ context.Context, userID string) (*model.Shaman, error) {
	for _, s := range m.shamans {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShamanRepo) List(_ context.Context, filters repository.ShamanFilters) ([]model.Shaman, error) {
	var result []model.Shaman
	for _, s := range m.shamans {
		if filters.Status != "" && s.Status != filters.Status {
			continue
		}
		if filters.Region != "" && s.Region != filters.Region {
			continue
		}
		if filters.District != "" && s.District != filters.District {
			continue
		}
		if filters.Specialty != "" && !containsString(s.Specialties, filters.Specialty) {
			continue
		}
		if filters.MinPrice != nil && s.BasePrice < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && s.BasePrice > *filters.MaxPrice {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ShamanID < result[j].ShamanID
	})
	return result, nil
}

func (m *mockShamanRepo) Update(_ context.Context, shaman *model.Shaman) error {
	m.shamans[shaman.ShamanID] = shaman
	return nil
}

func containsString(arr model.StringArray, v string) bool {
	for _, s := range arr {
		if s == v {
			return true
		}
	}
	return false
}

// ── Mock BookingRepository ──
//
// booking_slots 의 (shaman_id, booking_date, time_slot) 유니크 제약을
// 메모리 맵으로 재현한다. 충돌 시 실제 repo 와 동일하게
// pkg/errors.ErrUniqueViolation 을 반환한다.

type mockBookingRepo struct {
	bookings  map[string]*model.Booking
	occupancy map[string]string // "shamanID|date|slot" → bookingID
	seq       int
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		bookings:  make(map[string]*model.Booking),
		occupancy: make(map[string]string),
	}
}

func occupancyKey(shamanID, date string, slot model.TimeSlot) string {
	return shamanID + "|" + date + "|" + string(slot)
}

func (m *mockBookingRepo) CreateWithSlots(_ context.Context, booking *model.Booking) error {
	// 트랜잭션 재현: 충돌이 하나라도 있으면 아무것도 기록하지 않는다
	for _, t := range booking.OccupiedSlots() {
		if _, taken := m.occupancy[occupancyKey(booking.ShamanID, booking.BookingDate, t)]; taken {
			return pkgerrors.ErrUniqueViolation
		}
	}

	m.seq++
	if booking.BookingID == "" {
		booking.BookingID = fmt.Sprintf("booking-%d", m.seq)
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	m.bookings[booking.BookingID] = booking

	for _, t := range booking.OccupiedSlots() {
		m.occupancy[occupancyKey(booking.ShamanID, booking.BookingDate, t)] = booking.BookingID
	}
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) List(_ context.Context, filters repository.BookingFilters) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if filters.CustomerID != "" && (b.CustomerID == nil || *b.CustomerID != filters.CustomerID) {
			continue
		}
		if filters.ShamanID != "" && b.ShamanID != filters.ShamanID {
			continue
		}
		if filters.Status != "" && b.Status != filters.Status {
			continue
		}
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BookingID < result[j].BookingID
	})
	return result, nil
}

func (m *mockBookingRepo) ListByShamanAndDate(_ context.Context, shamanID, date string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.ShamanID == shamanID && b.BookingDate == date {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartSlot < result[j].StartSlot
	})
	return result, nil
}

func (m *mockBookingRepo) ListByShamanBetween(_ context.Context, shamanID, fromDate, toDate string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.ShamanID == shamanID && b.BookingDate >= fromDate && b.BookingDate <= toDate {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].BookingDate != result[j].BookingDate {
			return result[i].BookingDate < result[j].BookingDate
		}
		return result[i].StartSlot < result[j].StartSlot
	})
	return result, nil
}

func (m *mockBookingRepo) ListOccupiedSlots(_ context.Context, shamanID, date string) ([]model.TimeSlot, error) {
	prefix := shamanID + "|" + date + "|"
	var slots []model.TimeSlot
	for key := range m.occupancy {
		if strings.HasPrefix(key, prefix) {
			slots = append(slots, model.TimeSlot(strings.TrimPrefix(key, prefix)))
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, booking *model.Booking) error {
	stored, ok := m.bookings[booking.BookingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = booking.Status
	stored.RejectionReason = booking.RejectionReason
	stored.UpdatedAt = time.Now()

	if !stored.Status.OccupiesSlots() {
		for _, t := range stored.OccupiedSlots() {
			delete(m.occupancy, occupancyKey(stored.ShamanID, stored.BookingDate, t))
		}
	}
	return nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	weeklyHours map[string]*model.WeeklyHour // "shamanID|dow"
	offDays     map[string]*model.OffDay     // offDayID
	seq         int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		weeklyHours: make(map[string]*model.WeeklyHour),
		offDays:     make(map[string]*model.OffDay),
	}
}

func weeklyKey(shamanID string, dayOfWeek int) string {
	return fmt.Sprintf("%s|%d", shamanID, dayOfWeek)
}

func (m *mockScheduleRepo) ListWeeklyHours(_ context.Context, shamanID string) ([]model.WeeklyHour, error) {
	var rows []model.WeeklyHour
	for _, row := range m.weeklyHours {
		if row.ShamanID == shamanID {
			rows = append(rows, *row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DayOfWeek < rows[j].DayOfWeek })
	return rows, nil
}

func (m *mockScheduleRepo) GetWeeklyHour(_ context.Context, shamanID string, dayOfWeek int) (*model.WeeklyHour, error) {
	if row, ok := m.weeklyHours[weeklyKey(shamanID, dayOfWeek)]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) UpsertWeeklyHours(_ context.Context, rows []model.WeeklyHour) error {
	for i := range rows {
		row := rows[i]
		row.UpdatedAt = time.Now()
		m.weeklyHours[weeklyKey(row.ShamanID, row.DayOfWeek)] = &row
	}
	return nil
}

func (m *mockScheduleRepo) ListOffDays(_ context.Context, shamanID, fromDate, toDate string) ([]model.OffDay, error) {
	var result []model.OffDay
	for _, d := range m.offDays {
		if d.ShamanID != shamanID {
			continue
		}
		if fromDate != "" && d.OffDate < fromDate {
			continue
		}
		if toDate != "" && d.OffDate > toDate {
			continue
		}
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OffDate < result[j].OffDate })
	return result, nil
}

func (m *mockScheduleRepo) GetOffDayByDate(_ context.Context, shamanID, date string) (*model.OffDay, error) {
	for _, d := range m.offDays {
		if d.ShamanID == shamanID && d.OffDate == date {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) CreateOffDay(_ context.Context, offDay *model.OffDay) error {
	for _, d := range m.offDays {
		if d.ShamanID == offDay.ShamanID && d.OffDate == offDay.OffDate {
			return pkgerrors.ErrUniqueViolation
		}
	}
	m.seq++
	if offDay.OffDayID == "" {
		offDay.OffDayID = fmt.Sprintf("off-%d", m.seq)
	}
	offDay.CreatedAt = time.Now()
	m.offDays[offDay.OffDayID] = offDay
	return nil
}

func (m *mockScheduleRepo) GetOffDayByID(_ context.Context, id string) (*model.OffDay, error) {
	if d, ok := m.offDays[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) DeleteOffDay(_ context.Context, id, shamanID string) (int64, error) {
	d, ok := m.offDays[id]
	if !ok || d.ShamanID != shamanID {
		return 0, nil
	}
	delete(m.offDays, id)
	return 1, nil
}

// ── 테스트 공통 헬퍼 ──

// testRepos 모든 mock repo 집약. seed 데이터 주입용
type testRepos struct {
	user     *mockUserRepo
	shaman   *mockShamanRepo
	booking  *mockBookingRepo
	schedule *mockScheduleRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		user:     newMockUserRepo(),
		shaman:   newMockShamanRepo(),
		booking:  newMockBookingRepo(),
		schedule: newMockScheduleRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		User:     r.user,
		Shaman:   r.shaman,
		Booking:  r.booking,
		Schedule: r.schedule,
	}
}

// seedApprovedShaman 승인된 무속인 1명 (user-s1 / shaman-1, 기본 요금 50000)
func seedApprovedShaman(repos *testRepos) *model.Shaman {
	shaman := &model.Shaman{
		ShamanID:     "shaman-1",
		UserID:       "user-s1",
		BusinessName: "청담 만신당",
		Specialties:  model.StringArray{"사주", "타로"},
		Region:       "서울",
		District:     "강남구",
		BasePrice:    50000,
		Status:       model.ShamanApproved,
	}
	repos.shaman.shamans[shaman.ShamanID] = shaman
	return shaman
}
