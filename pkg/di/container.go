// pkg/di/container.go
package di

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/reiggrau/tribes-backend/application/serviceimpl"
	"github.com/reiggrau/tribes-backend/domain/port"
	"github.com/reiggrau/tribes-backend/domain/repository"
	"github.com/reiggrau/tribes-backend/domain/service"
	"github.com/reiggrau/tribes-backend/infrastructure/adapter"
	"github.com/reiggrau/tribes-backend/infrastructure/persistence/postgres"
	"github.com/reiggrau/tribes-backend/interfaces/api/handler"
	"github.com/reiggrau/tribes-backend/interfaces/api/middleware"
	"github.com/reiggrau/tribes-backend/interfaces/websocket"

	"gorm.io/gorm"
)

// Container เก็บ dependencies ทั้งหมดของแอปพลิเคชัน
type Container struct {
	// Repositories
	UserRepo          repository.UserRepository
	FriendRequestRepo repository.FriendRequestRepository
	MessageRepo       repository.MessageRepository
	ResetCodeRepo     repository.ResetCodeRepository

	// WebSocket Components
	WebSocketHub  *websocket.Hub
	WebSocketPort port.WebSocketPort

	// Services
	AuthService         service.AuthService
	UserService         service.UserService
	FriendshipService   service.FriendshipService
	MessageService      service.MessageService
	PresenceService     service.PresenceService
	NotificationService service.NotificationService

	// Middleware
	AuthMiddleware *middleware.AuthMiddleware

	// Handlers
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	FriendshipHandler *handler.FriendshipHandler
	MessageHandler    *handler.MessageHandler

	RedisClient *redis.Client
}

// NewContainer สร้าง container ใหม่พร้อมกับ dependencies ทั้งหมด
func NewContainer(db *gorm.DB, redisClient *redis.Client) (*Container, error) {
	container := &Container{
		RedisClient: redisClient,
	}

	// สร้าง repositories
	container.UserRepo = postgres.NewUserRepository(db)
	container.FriendRequestRepo = postgres.NewFriendRequestRepository(db)
	container.MessageRepo = postgres.NewMessageRepository(db)
	container.ResetCodeRepo = postgres.NewResetCodeRepository(db)

	// สร้าง basic services
	container.AuthService = serviceimpl.NewAuthService(
		container.UserRepo,
		container.ResetCodeRepo,
	)
	container.UserService = serviceimpl.NewUserService(
		container.UserRepo,
		container.ResetCodeRepo,
	)
	container.FriendshipService = serviceimpl.NewFriendshipService(
		container.FriendRequestRepo,
		container.UserRepo,
	)
	container.PresenceService = serviceimpl.NewPresenceService(
		redisClient,
		container.UserRepo,
	)

	// websocket hub ต้องมาก่อน notification service
	// เพราะ notification service ส่งผ่าน adapter ที่ครอบ hub อยู่
	container.WebSocketHub = websocket.NewHub(
		container.FriendshipService,
		container.PresenceService,
	)
	container.WebSocketPort = adapter.NewWebSocketAdapter(container.WebSocketHub)

	container.NotificationService = serviceimpl.NewNotificationService(container.WebSocketPort)
	container.MessageService = serviceimpl.NewMessageService(
		container.MessageRepo,
		container.NotificationService,
	)

	// ปิด dependency loop
	container.WebSocketHub.SetNotificationService(container.NotificationService)
	container.WebSocketHub.SetMessageService(container.MessageService)

	// middleware และ handlers
	container.AuthMiddleware = middleware.NewAuthMiddleware(container.AuthService)
	container.AuthHandler = handler.NewAuthHandler(container.AuthService)
	container.UserHandler = handler.NewUserHandler(container.UserService, container.AuthService)
	container.FriendshipHandler = handler.NewFriendshipHandler(
		container.FriendshipService,
		container.NotificationService,
	)
	container.MessageHandler = handler.NewMessageHandler(container.MessageService)

	log.Println("สร้าง DI container สำเร็จ")
	return container, nil
}
