package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/thereayou/chattr/internal/handlers"
	"github.com/thereayou/chattr/internal/middleware"
	"github.com/thereayou/chattr/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	profileH *handlers.ProfileHandler,
	interestH *handlers.InterestHandler,
	roomH *handlers.RoomHandler,
	friendH *handlers.FriendHandler,
	dmH *handlers.DMHandler,
	botH *handlers.BotHandler,
	wsH *handlers.WebSocketHandler,
) {
	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
	}

	// Внешний контракт функции chat-bot, CORS preflight обслуживает middleware
	r.POST("/functions/chat-bot", botH.ChatBot)

	// WebSocket подписка
	r.GET("/ws", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)

	// API endpoints
	api := r.Group("/api/v1", middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/interests", interestH.List)

		api.GET("/profile/me", profileH.GetMe)
		api.PUT("/profile/me", profileH.UpdateMe)
		api.GET("/users/:id", profileH.GetUser)

		api.GET("/rooms", roomH.GetMyRooms)
		api.GET("/rooms/:id", roomH.GetRoom)
		api.POST("/rooms/:id/join", roomH.JoinRoom)
		api.POST("/rooms/:id/leave", roomH.LeaveRoom)
		api.GET("/rooms/:id/messages", roomH.GetRoomMessages)
		api.POST("/rooms/:id/messages", roomH.SendMessage)

		api.GET("/friends", friendH.List)
		api.GET("/friends/requests", friendH.ListRequests)
		api.POST("/friends/requests", friendH.SendRequest)
		api.POST("/friends/requests/:id/accept", friendH.Accept)
		api.POST("/friends/requests/:id/decline", friendH.Decline)
		api.DELETE("/friends/requests/:id", friendH.Cancel)

		api.POST("/dm/rooms", dmH.OpenRoom)
		api.GET("/dm/rooms/:id", dmH.GetRoom)
		api.GET("/dm/rooms/:id/messages", dmH.GetMessages)
		api.POST("/dm/rooms/:id/messages", dmH.SendMessage)
	}
}
