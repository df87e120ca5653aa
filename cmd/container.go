package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/interviewmate/backend/marketplace/application/applicationapi"
	"github.com/interviewmate/backend/marketplace/application/applicationinfra"
	"github.com/interviewmate/backend/marketplace/application/applicationsrv"
	"github.com/interviewmate/backend/marketplace/interview/interviewapi"
	"github.com/interviewmate/backend/marketplace/interview/interviewinfra"
	"github.com/interviewmate/backend/marketplace/interview/interviewsrv"
	"github.com/interviewmate/backend/marketplace/job/jobapi"
	"github.com/interviewmate/backend/marketplace/job/jobinfra"
	"github.com/interviewmate/backend/marketplace/job/jobsrv"
	"github.com/interviewmate/backend/marketplace/review/reviewapi"
	"github.com/interviewmate/backend/marketplace/review/reviewinfra"
	"github.com/interviewmate/backend/marketplace/review/reviewsrv"
	"github.com/interviewmate/backend/marketplace/shortlist/shortlistapi"
	"github.com/interviewmate/backend/marketplace/shortlist/shortlistinfra"
	"github.com/interviewmate/backend/marketplace/shortlist/shortlistsrv"
	"github.com/interviewmate/backend/marketplace/slot/slotapi"
	"github.com/interviewmate/backend/marketplace/slot/slotinfra"
	"github.com/interviewmate/backend/marketplace/slot/slotsrv"
	"github.com/interviewmate/backend/marketplace/user/userapi"
	"github.com/interviewmate/backend/marketplace/user/userinfra"
	"github.com/interviewmate/backend/marketplace/user/usersrv"
	"github.com/interviewmate/backend/pkg/fsx"
	"github.com/interviewmate/backend/pkg/fsx/fsxs3"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/iam/auth/authinfra"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/interviewmate/backend/pkg/logx"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	TokenService     auth.TokenService
	UserService      *usersrv.UserService
	JobService       *jobsrv.JobService
	AppService       *applicationsrv.ApplicationService
	ShortlistService *shortlistsrv.ShortlistService
	SlotService      *slotsrv.SlotService
	InterviewService *interviewsrv.InterviewService
	ReviewService    *reviewsrv.ReviewService

	// API Handlers
	UserHandlers      *userapi.Handlers
	JobHandlers       *jobapi.Handlers
	AppHandlers       *applicationapi.Handlers
	ShortlistHandlers *shortlistapi.Handlers
	SlotHandlers      *slotapi.Handlers
	InterviewHandlers *interviewapi.Handlers
	ReviewHandlers    *reviewapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	appRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	shortlistRepo := shortlistinfra.NewPostgresShortlistRepository(c.DB)
	slotRepo := slotinfra.NewPostgresSlotRepository(c.DB)
	interviewRepo := interviewinfra.NewPostgresInterviewRepository(c.DB)
	reviewRepo := reviewinfra.NewPostgresReviewRepository(c.DB)
	leaderboardCache := reviewinfra.NewRedisLeaderboardCache(c.Redis, "leaderboard")

	// --- Infrastructure Services ---
	passwordSvc := authinfra.NewBcryptPasswordService()
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	c.UserService = usersrv.NewUserService(userRepo, c.TokenService, passwordSvc, c.FileSystem)
	c.JobService = jobsrv.NewJobService(jobRepo, userRepo)
	c.AppService = applicationsrv.NewApplicationService(appRepo, jobRepo)
	c.ShortlistService = shortlistsrv.NewShortlistService(shortlistRepo, appRepo, jobRepo, userRepo)
	c.SlotService = slotsrv.NewSlotService(slotRepo)
	c.InterviewService = interviewsrv.NewInterviewService(interviewRepo, slotRepo, userRepo)
	c.ReviewService = reviewsrv.NewReviewService(reviewRepo, leaderboardCache)

	// --- Handlers ---
	c.UserHandlers = userapi.NewHandlers(c.UserService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.AppHandlers = applicationapi.NewHandlers(c.AppService)
	c.ShortlistHandlers = shortlistapi.NewHandlers(c.ShortlistService)
	c.SlotHandlers = slotapi.NewHandlers(c.SlotService)
	c.InterviewHandlers = interviewapi.NewHandlers(c.InterviewService)
	c.ReviewHandlers = reviewapi.NewHandlers(c.ReviewService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)

	// --- Bootstrap ---
	c.seedAdmin()
}

// seedAdmin provisions the password-login admin account when the env vars
// are present. Idempotent across restarts.
func (c *Container) seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.UserService.SeedAdmin(ctx, kernel.NewEmail(adminEmail), adminPassword); err != nil {
		logx.Errorf("Failed to seed admin account: %v", err)
		return
	}
	logx.Infof("Admin account ready: %s", adminEmail)
}
