package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/collectyourcards/card-services/configs"
	"github.com/collectyourcards/card-services/internal/cardsvc/broker"
	"github.com/collectyourcards/card-services/internal/cardsvc/db"
	handlers "github.com/collectyourcards/card-services/internal/cardsvc/handlers"
	"github.com/collectyourcards/card-services/internal/cardsvc/service"
	"github.com/collectyourcards/card-services/internal/cardsvc/store"
	nats "github.com/collectyourcards/card-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "card"

// activity feed entries expire after a week
const activityTTL = 7 * 24 * time.Hour

func init() {
	instanceId := config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	// mongo holds the expiring activity feed
	mongoDb, cancelMongo, err := db.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer cancelMongo()
	if err := db.EnsureActivityTTL(mongoDb, store.ActivityCollection); err != nil {
		log.Fatalf("Failed to ensure activity TTL index: %v", err)
	}
	log.Printf("mongo connection established successfully")

	cardStore := store.NewCardStore(dbpool)
	cardService := service.NewCardService(cardStore)

	collectionStore := store.NewCollectionStore(dbpool, cardStore)
	collectionService := service.NewCollectionService(collectionStore)

	listStore := store.NewListStore(dbpool, cardStore)
	listService := service.NewListService(listStore)

	preferenceStore := store.NewPreferenceStore(dbpool)
	preferenceService := service.NewPreferenceService(preferenceStore)

	activityStore := store.NewActivityStore(mongoDb, activityTTL)
	activityService := service.NewActivityService(activityStore)

	userStore := store.NewUserStore(dbpool)
	userService := service.NewUserService(userStore)

	// Connect to NATS
	n, err := nats.Connect(SERVICE_NAME)
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// publishes collection activity for the socket service
	b := broker.NewBroker(n.Conn, activityService, userService)

	// announce liveness so the socket service can track this instance
	stopHeartbeat := b.StartHeartbeat(config.GetInstanceId(), 5*time.Second)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(cardService, collectionService, listService,
		preferenceService, activityService, userService, b)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("CARD_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	stopHeartbeat()
	b.PublishShutdown(config.GetInstanceId())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
