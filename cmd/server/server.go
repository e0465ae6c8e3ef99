package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/thereayou/chattr/internal/bot"
	"github.com/thereayou/chattr/internal/config"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/handlers"
	"github.com/thereayou/chattr/internal/logger"
	ws "github.com/thereayou/chattr/internal/websocket"
	"github.com/thereayou/chattr/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	Config *config.Config
	DB     *database.Database
	Redis  *redis.Client
	Hub    *ws.Hub
}

func NewServer() *Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init("chattr", cfg.Debug)

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	if err := dbConn.SeedCatalog(); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	hub := ws.NewHub()
	go hub.Run()

	fanout := handlers.NewHubFanout(hub)

	botClient := bot.NewClient(cfg.Bot.APIURL, cfg.Bot.APIKey, cfg.Bot.Model)
	botSvc := bot.NewService(dbConn, botClient, fanout, cfg.Bot.History)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb)
	profileH := handlers.NewProfileHandler(dbConn)
	interestH := handlers.NewInterestHandler(dbConn)
	roomH := handlers.NewRoomHandler(dbConn, hub, fanout, botSvc, cfg.Bot)
	friendH := handlers.NewFriendHandler(dbConn)
	dmH := handlers.NewDMHandler(dbConn, fanout)
	botH := handlers.NewBotHandler(botSvc)
	wsH := handlers.NewWebSocketHandler(hub)

	APIEndpoints(router, jwtMgr, rdb, authH, profileH, interestH, roomH, friendH, dmH, botH, wsH)

	return &Server{
		Router: router,
		Config: cfg,
		DB:     dbConn,
		Redis:  rdb,
		Hub:    hub,
	}
}

func (s *Server) Run() {
	addr := ":" + s.Config.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := s.Router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
