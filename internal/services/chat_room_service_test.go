package services

import (
	"errors"
	"testing"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type fakeChatRoomStore struct {
	rooms  map[uint]*models.ChatRoom
	nextID uint
}

func newFakeChatRoomStore() *fakeChatRoomStore {
	return &fakeChatRoomStore{rooms: map[uint]*models.ChatRoom{}, nextID: 1}
}

func (s *fakeChatRoomStore) Create(room *models.ChatRoom) error {
	for _, existing := range s.rooms {
		if existing.UserID == room.UserID && existing.HotelID == room.HotelID {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	room.ID = s.nextID
	s.nextID++
	copied := *room
	s.rooms[room.ID] = &copied
	return nil
}

func (s *fakeChatRoomStore) GetByID(id uint) (*models.ChatRoom, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *room
	return &copied, nil
}

func (s *fakeChatRoomStore) GetByUserAndHotel(userID, hotelID uint) (*models.ChatRoom, error) {
	for _, room := range s.rooms {
		if room.UserID == userID && room.HotelID == hotelID {
			copied := *room
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeChatRoomStore) List(userID uint, staff bool, page, limit int) ([]models.ChatRoom, int64, error) {
	var out []models.ChatRoom
	for _, room := range s.rooms {
		if staff || room.UserID == userID {
			out = append(out, *room)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeChatRoomStore) ListByHotel(hotelID uint, page, limit int) ([]models.ChatRoom, int64, error) {
	var out []models.ChatRoom
	for _, room := range s.rooms {
		if room.HotelID == hotelID {
			out = append(out, *room)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeChatRoomStore) Update(room *models.ChatRoom) error {
	copied := *room
	s.rooms[room.ID] = &copied
	return nil
}

func (s *fakeChatRoomStore) TouchNewMessageTime(id uint, t time.Time) error {
	room, ok := s.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	room.NewMessageTime = t
	return nil
}

func (s *fakeChatRoomStore) Delete(id uint) error {
	delete(s.rooms, id)
	return nil
}

type fakeHotelGetter struct {
	ids map[uint]bool
}

func (f *fakeHotelGetter) GetByID(id uint) (*models.Hotel, error) {
	if !f.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Hotel{ID: id, Name: "Hotel", Email: "h@x.test"}, nil
}

func newTestChatRoomService() (*ChatRoomService, *fakeChatRoomStore) {
	rooms := newFakeChatRoomStore()
	hotels := &fakeHotelGetter{ids: map[uint]bool{100: true, 200: true}}
	return NewChatRoomService(rooms, hotels, newTestPermissions()), rooms
}

func TestChatRoomCreate(t *testing.T) {
	svc, _ := newTestChatRoomService()
	guest := &models.User{ID: 3}

	room, err := svc.Create(guest, 100)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if room.UserID != 3 || room.HotelID != 100 {
		t.Errorf("Create() room = %d/%d, want 3/100", room.UserID, room.HotelID)
	}

	if _, err := svc.Create(guest, 100); !errors.Is(err, ErrConflict) {
		t.Errorf("Create() duplicate pair error = %v, want ErrConflict", err)
	}
	if _, err := svc.Create(guest, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Create() missing hotel error = %v, want ErrNotFound", err)
	}
}

func TestGetOrCreateByHotelAndUserIdempotent(t *testing.T) {
	svc, rooms := newTestChatRoomService()
	guest := &models.User{ID: 3}

	first, err := svc.GetOrCreateByHotelAndUser(guest, 100)
	if err != nil {
		t.Fatalf("GetOrCreateByHotelAndUser() error = %v", err)
	}

	second, err := svc.GetOrCreateByHotelAndUser(guest, 100)
	if err != nil {
		t.Fatalf("GetOrCreateByHotelAndUser() second call error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("GetOrCreateByHotelAndUser() ids differ: %d vs %d", first.ID, second.ID)
	}
	if len(rooms.rooms) != 1 {
		t.Errorf("GetOrCreateByHotelAndUser() room count = %d, want 1", len(rooms.rooms))
	}
}

func TestGetOrCreateByHotelAndUserMissingHotel(t *testing.T) {
	svc, _ := newTestChatRoomService()

	if _, err := svc.GetOrCreateByHotelAndUser(&models.User{ID: 3}, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetOrCreateByHotelAndUser() missing hotel error = %v, want ErrNotFound", err)
	}
}

func TestChatRoomAccess(t *testing.T) {
	svc, _ := newTestChatRoomService()
	owner := &models.User{ID: 3}

	room, err := svc.Create(owner, 100)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name    string
		caller  *models.User
		wantErr error
	}{
		{"owner reads", owner, nil},
		{"admin reads", &models.User{ID: 1}, nil},
		{"operator reads", &models.User{ID: 2}, nil},
		{"stranger blocked", &models.User{ID: 4}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Get(tt.caller, room.ID)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Get() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChatRoomListStaffSeesAll(t *testing.T) {
	svc, _ := newTestChatRoomService()

	svc.Create(&models.User{ID: 3}, 100)
	svc.Create(&models.User{ID: 4}, 200)

	own, _, err := svc.List(&models.User{ID: 3}, 1, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(own) != 1 {
		t.Errorf("List() guest rooms = %d, want 1", len(own))
	}

	all, _, err := svc.List(&models.User{ID: 2}, 1, 10)
	if err != nil {
		t.Fatalf("List() staff error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List() staff rooms = %d, want 2", len(all))
	}
}

func TestChatRoomListByHotelStaffOnly(t *testing.T) {
	svc, _ := newTestChatRoomService()
	svc.Create(&models.User{ID: 3}, 100)

	if _, _, err := svc.ListByHotel(&models.User{ID: 3}, 100, 1, 10); !errors.Is(err, ErrForbidden) {
		t.Errorf("ListByHotel() guest error = %v, want ErrForbidden", err)
	}

	rooms, _, err := svc.ListByHotel(&models.User{ID: 2}, 100, 1, 10)
	if err != nil {
		t.Fatalf("ListByHotel() staff error = %v", err)
	}
	if len(rooms) != 1 {
		t.Errorf("ListByHotel() rooms = %d, want 1", len(rooms))
	}
}
