package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Waseemalame/unwokeai/config"
	"github.com/Waseemalame/unwokeai/controller"
	"github.com/Waseemalame/unwokeai/dao"
	"github.com/Waseemalame/unwokeai/pkg/auth"
	"github.com/Waseemalame/unwokeai/pkg/payments"
	"github.com/Waseemalame/unwokeai/usecase"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. DB connection
	sqlDB, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	logger.Info("connected to database", "database", cfg.MySQLDatabase)

	// 3. Collaborators
	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Fatal("Failed to init identity verifier:", err)
	}
	provider := payments.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret, logger)

	// 4. Dependency injection
	itemRepo := dao.NewItemRepository(sqlDB)
	likeRepo := dao.NewLikeRepository(sqlDB)
	orderRepo := dao.NewOrderRepository(sqlDB)
	userRepo := dao.NewUserRepository(sqlDB)

	itemUsecase := usecase.NewItemUsecase(itemRepo)
	likeUsecase := usecase.NewLikeUsecase(itemRepo, likeRepo, logger)
	feedUsecase := usecase.NewFeedUsecase(itemRepo, likeRepo)
	userUsecase := usecase.NewUserUsecase(userRepo)
	checkoutUsecase := usecase.NewCheckoutUsecase(itemRepo, provider, cfg.AppBaseURL, logger)
	settlementUsecase := usecase.NewSettlementUsecase(orderRepo, provider, logger)

	router := controller.NewRouter(
		verifier,
		controller.NewItemController(itemUsecase, logger),
		controller.NewLikeController(likeUsecase, logger),
		controller.NewFeedController(feedUsecase, logger),
		controller.NewUserController(userUsecase, logger),
		controller.NewCheckoutController(checkoutUsecase, logger),
		controller.NewWebhookController(settlementUsecase, logger),
	)

	// 5. Start server
	logger.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
