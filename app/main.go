package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/skinnydoo/conduit/internal/auth"
	"github.com/skinnydoo/conduit/internal/repository"
	mysqlRepo "github.com/skinnydoo/conduit/internal/repository/mysql"
	redisCache "github.com/skinnydoo/conduit/internal/repository/redis"
	"github.com/skinnydoo/conduit/internal/rest"
	"github.com/skinnydoo/conduit/internal/rest/middleware"
	"github.com/skinnydoo/conduit/internal/usecase/article"
	"github.com/skinnydoo/conduit/internal/usecase/comment"
	"github.com/skinnydoo/conduit/internal/usecase/profile"
	"github.com/skinnydoo/conduit/internal/usecase/tag"
	"github.com/skinnydoo/conduit/internal/usecase/user"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultJWTRealm     = "conduit"
	defaultJWTTTLHours  = 24
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				err = sqlDB.Ping()
				if err == nil {
					break
				}
				_ = sqlDB.Close()
			}
		}

		log.Printf("database not ready (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	if err := rest.RegisterValidations(); err != nil {
		log.Fatal("failed to register binding validations: ", err)
	}
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	tagRepo := mysqlRepo.NewTagRepository(db)

	// Article storage is layered: DB, cache, and a coordinator on top
	articleDBRepo := mysqlRepo.NewArticleRepository(db)
	articleCache := redisCache.NewArticleCache(client)
	articleRepo := repository.NewArticleRepository(articleDBRepo, articleCache)

	tagCache := redisCache.NewTagCache(client)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisCache.NewRedisBloomRepo(client, bloomBitSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build service layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtRealm := os.Getenv("JWT_REALM")
	if jwtRealm == "" {
		jwtRealm = defaultJWTRealm
	}
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = defaultJWTTTLHours
	}
	tokenSvc := auth.NewTokenService(jwtSecret, jwtRealm, time.Duration(jwtTTL)*time.Hour)

	userSvc := user.NewService(userRepo)
	profileSvc := profile.NewService(userRepo)
	articleSvc := article.NewService(articleRepo, userRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, articleRepo, userRepo, bloomRepo)
	tagSvc := tag.NewService(tagRepo, tagCache)

	userHandler := rest.NewUserHandler(userSvc, tokenSvc)
	profileHandler := rest.NewProfileHandler(profileSvc)
	articleHandler := rest.NewArticleHandler(articleSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	tagHandler := rest.NewTagHandler(tagSvc)

	resolver := auth.NewResolver(tokenSvc, userSvc)
	requireAuth := middleware.Auth(resolver, middleware.Required)
	optionalAuth := middleware.Auth(resolver, middleware.Optional)

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/users", userHandler.Register)
	route.POST("/users/login", userHandler.Login)
	route.GET("/user", requireAuth, userHandler.GetCurrent)
	route.PUT("/user", requireAuth, userHandler.Update)

	route.GET("/profiles/:username", optionalAuth, profileHandler.Get)
	route.POST("/profiles/:username/follow", requireAuth, profileHandler.Follow)
	route.DELETE("/profiles/:username/follow", requireAuth, profileHandler.Unfollow)

	route.GET("/articles", optionalAuth, articleHandler.Fetch)
	route.GET("/articles/feed", requireAuth, articleHandler.Feed)
	route.GET("/articles/:slug", optionalAuth, articleHandler.GetBySlug)
	route.POST("/articles", requireAuth, articleHandler.Create)
	route.PUT("/articles/:slug", requireAuth, articleHandler.Update)
	route.DELETE("/articles/:slug", requireAuth, articleHandler.Delete)
	route.POST("/articles/:slug/favorite", requireAuth, articleHandler.Favorite)
	route.DELETE("/articles/:slug/favorite", requireAuth, articleHandler.Unfavorite)

	route.GET("/articles/:slug/comments", optionalAuth, commentHandler.FetchByArticle)
	route.POST("/articles/:slug/comments", requireAuth, commentHandler.Create)
	route.DELETE("/articles/:slug/comments/:id", requireAuth, commentHandler.Delete)

	route.GET("/tags", tagHandler.Fetch)

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
