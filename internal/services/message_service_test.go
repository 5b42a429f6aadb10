package services

import (
	"errors"
	"testing"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type fakeMessageStore struct {
	messages map[uint]*models.Message
	nextID   uint
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{messages: map[uint]*models.Message{}, nextID: 1}
}

func (s *fakeMessageStore) Create(message *models.Message) error {
	message.ID = s.nextID
	s.nextID++
	copied := *message
	s.messages[message.ID] = &copied
	return nil
}

func (s *fakeMessageStore) GetByID(id uint) (*models.Message, error) {
	message, ok := s.messages[id]
	if !ok || message.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *message
	return &copied, nil
}

func (s *fakeMessageStore) ListByChatRoom(chatRoomID uint, page, limit int) ([]models.Message, int64, error) {
	var out []models.Message
	for _, message := range s.messages {
		if message.ChatRoomID == chatRoomID && !message.IsDeleted {
			out = append(out, *message)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeMessageStore) Update(message *models.Message) error {
	copied := *message
	s.messages[message.ID] = &copied
	return nil
}

func (s *fakeMessageStore) SoftDelete(id uint) error {
	message, ok := s.messages[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	message.IsDeleted = true
	return nil
}

func (s *fakeMessageStore) Delete(id uint) error {
	delete(s.messages, id)
	return nil
}

type fakePublisher struct {
	events int
}

func (p *fakePublisher) PublishChatMessage(roomID, senderID uint, content string) error {
	p.events++
	return nil
}

func newTestMessageService() (*MessageService, *fakeMessageStore, *fakeChatRoomStore, *fakePublisher) {
	messages := newFakeMessageStore()
	rooms := newFakeChatRoomStore()
	publisher := &fakePublisher{}
	svc := NewMessageService(messages, rooms, newTestPermissions(), publisher)
	return svc, messages, rooms, publisher
}

func TestMessageCreate(t *testing.T) {
	svc, _, rooms, publisher := newTestMessageService()
	owner := &models.User{ID: 3}

	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100, NewMessageTime: time.Now().Add(-time.Hour)})
	before, _ := rooms.GetByID(1)

	message, err := svc.Create(owner, 1, &models.CreateMessageRequest{Content: "hello"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if message.SenderID != 3 || message.ChatRoomID != 1 {
		t.Errorf("Create() message = sender %d room %d, want 3/1", message.SenderID, message.ChatRoomID)
	}

	after, _ := rooms.GetByID(1)
	if !after.NewMessageTime.After(before.NewMessageTime) {
		t.Error("Create() should bump the room's new message time")
	}
	if publisher.events != 1 {
		t.Errorf("Create() published %d events, want 1", publisher.events)
	}
}

func TestMessageCreateGated(t *testing.T) {
	svc, _, rooms, _ := newTestMessageService()
	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100})

	if _, err := svc.Create(&models.User{ID: 4}, 1, &models.CreateMessageRequest{Content: "hi"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Create() stranger error = %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(&models.User{ID: 3}, 99, &models.CreateMessageRequest{Content: "hi"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Create() missing room error = %v, want ErrNotFound", err)
	}
}

func TestMessageCreateWithoutPublisher(t *testing.T) {
	messages := newFakeMessageStore()
	rooms := newFakeChatRoomStore()
	svc := NewMessageService(messages, rooms, newTestPermissions(), nil)

	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100})
	if _, err := svc.Create(&models.User{ID: 3}, 1, &models.CreateMessageRequest{Content: "hi"}); err != nil {
		t.Errorf("Create() with nil publisher error = %v", err)
	}
}

func TestMessageUpdateSenderOrStaff(t *testing.T) {
	svc, _, rooms, _ := newTestMessageService()
	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100})
	sent, _ := svc.Create(&models.User{ID: 3}, 1, &models.CreateMessageRequest{Content: "original"})

	tests := []struct {
		name    string
		caller  *models.User
		wantErr error
	}{
		{"sender edits", &models.User{ID: 3}, nil},
		{"operator edits", &models.User{ID: 2}, nil},
		{"stranger blocked", &models.User{ID: 4}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(tt.caller, sent.ID, &models.UpdateMessageRequest{Content: "edited"})
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Update() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageSoftDeleteHidesFromReads(t *testing.T) {
	svc, _, rooms, _ := newTestMessageService()
	owner := &models.User{ID: 3}
	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100})

	sent, _ := svc.Create(owner, 1, &models.CreateMessageRequest{Content: "oops"})

	if err := svc.SoftDelete(owner, sent.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	if _, err := svc.Get(owner, sent.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after soft delete error = %v, want ErrNotFound", err)
	}

	visible, _, err := svc.ListByChatRoom(owner, 1, 1, 10)
	if err != nil {
		t.Fatalf("ListByChatRoom() error = %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("ListByChatRoom() after soft delete = %d messages, want 0", len(visible))
	}
}

func TestMessageGetSenderBypassesRoomLookup(t *testing.T) {
	svc, _, rooms, _ := newTestMessageService()
	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100})

	sent, _ := svc.Create(&models.User{ID: 3}, 1, &models.CreateMessageRequest{Content: "mine"})

	got, err := svc.Get(&models.User{ID: 3}, sent.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Content != "mine" {
		t.Errorf("Get() content = %q, want %q", got.Content, "mine")
	}

	if _, err := svc.Get(&models.User{ID: 4}, sent.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Get() stranger error = %v, want ErrForbidden", err)
	}
}

func TestMessageHardDelete(t *testing.T) {
	svc, messages, rooms, _ := newTestMessageService()
	rooms.Create(&models.ChatRoom{UserID: 3, HotelID: 100})

	sent, _ := svc.Create(&models.User{ID: 3}, 1, &models.CreateMessageRequest{Content: "gone"})

	if err := svc.Delete(&models.User{ID: 1}, sent.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(messages.messages) != 0 {
		t.Error("Delete() should remove the row entirely")
	}
}
