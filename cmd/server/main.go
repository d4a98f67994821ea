package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"Datashare/internal/api/middleware"
	"Datashare/internal/api/routes"
	"Datashare/internal/core/comments"
	"Datashare/internal/core/datasets"
	"Datashare/internal/core/downloads"
	"Datashare/internal/core/messaging"
	"Datashare/internal/core/users"
	"Datashare/internal/core/votes"
	"Datashare/internal/db/cassandra"
	mongoRepo "Datashare/internal/db/mongo"
	redisRepo "Datashare/internal/db/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Cassandra holds the social data: comments, votes, downloads, messages
	cassandraHosts := os.Getenv("CASSANDRA_HOSTS")
	if cassandraHosts == "" {
		cassandraHosts = "localhost:9042"
	}
	keyspace := os.Getenv("CASSANDRA_KEYSPACE")
	if keyspace == "" {
		keyspace = "datashare"
	}

	session, err := cassandra.NewSession(cassandra.Config{
		Hosts:    strings.Split(cassandraHosts, ","),
		Keyspace: keyspace,
	})
	if err != nil {
		log.Fatal("Failed to connect to cassandra:", err)
	}
	defer session.Close()

	if err := cassandra.Migrate(session); err != nil {
		log.Fatal("Failed to run cassandra migrations:", err)
	}

	logger.Info("connected to cassandra", "keyspace", keyspace)

	// Redis holds user accounts and follow relations
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisClient := goredis.NewClient(&goredis.Options{Addr: redisAddr})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis:", err)
	}

	logger.Info("connected to redis", "addr", redisAddr)

	// Mongo holds dataset metadata documents
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDatabase := os.Getenv("MONGO_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "datashare"
	}

	mongoDB, err := mongoRepo.Connect(context.Background(), mongoURI, mongoDatabase)
	if err != nil {
		log.Fatal("Failed to connect to mongodb:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Client().Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect mongodb", "error", err)
		}
	}()

	logger.Info("connected to mongodb", "database", mongoDatabase)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	// Repositories and services
	commentRepo := cassandra.NewCommentRepository(session)
	commentService := comments.NewService(commentRepo, logger)

	voteRepo := cassandra.NewVoteRepository(session)
	voteService := votes.NewService(voteRepo, logger)

	downloadRepo := cassandra.NewDownloadRepository(session)
	downloadService := downloads.NewService(downloadRepo, logger)

	conversationRepo := cassandra.NewConversationRepository(session)
	messagingService := messaging.NewService(conversationRepo, logger)

	userRepo := redisRepo.NewUserRepository(redisClient)
	userService := users.NewService(userRepo, logger)

	datasetRepo := mongoRepo.NewDatasetRepository(mongoDB)
	datasetService := datasets.NewDatasetService(datasetRepo, logger)

	// Routes
	routes.RegisterCommentRoutes(r, commentService)
	routes.RegisterVoteRoutes(r, voteService)
	routes.RegisterDownloadRoutes(r, downloadService)
	routes.RegisterMessageRoutes(r, messagingService)
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterDatasetRoutes(r, datasetService)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health response", "error", err)
		}
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
