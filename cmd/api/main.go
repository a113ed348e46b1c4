package main

import (
	"context"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/cart"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/config"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/handler"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/infra/db"
	infraRepo "github.com/raven-ibanez/Yong-Convenient-Store/internal/infra/repository"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/infra/storage"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/server"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"
	auth "github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.MenuItem{},
		&model.Variation{},
		&model.AddOn{},
		&model.PaymentMethod{},
		&model.SiteSetting{},
		&model.Order{},
		&model.OrderItem{},
		&model.User{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentMethodGormRepository(gormDB)
	settingRepo := infraRepo.NewSiteSettingGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)

	//画像の保存先
	imageStore, err := storage.NewDiskImageStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		panic(err)
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（起動時のadmin作成：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 12 * time.Hour,
	}

	//セッションカート（24hで掃除）
	sessions := cart.NewSessionStore(24 * time.Hour)

	//Usecase生成
	menuUC := usecase.NewMenuUsecase(menuRepo, idGen, clock)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	paymentUC := usecase.NewPaymentMethodUsecase(paymentRepo)
	settingsUC := usecase.NewSettingsUsecase(settingRepo)
	cartUC := usecase.NewCartUsecase(sessions, menuRepo, clock)
	orderUC := usecase.NewOrderUsecase(orderRepo, paymentRepo, sessions, idGen)
	imageUC := usecase.NewImageUsecase(imageStore)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)

	ctx := context.Background()

	//管理ユーザーとバナー設定を起動時に保証する
	if err := auth.EnsureAdminUser(ctx, userRepo, hasher, idGen, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		panic(err)
	}
	if _, err := settingsUC.SeedBannerSettings(ctx); err != nil {
		panic(err)
	}

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(loginUC),
		Menu:          handler.NewMenuHandler(menuUC),
		AdminMenu:     handler.NewAdminMenuHandler(menuUC),
		Category:      handler.NewCategoryHandler(categoryUC),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentUC),
		Settings:      handler.NewSettingsHandler(settingsUC),
		Cart:          handler.NewCartHandler(cartUC, idGen),
		Checkout:      handler.NewCheckoutHandler(orderUC, idGen),
		AdminOrder:    handler.NewAdminOrderHandler(orderUC),
		Image:         handler.NewImageHandler(imageUC),
	}

	//Server起動
	e := server.New(cfg, handlers)
	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
