package main

import (
	"context"
	"log"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/notification"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(subject string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func newSender(cfg config.Config) notification.Sender {
	if cfg.SMSAPIToken == "" {
		log.Println("SMS_API_TOKEN not configured, SMS sending disabled")
		return notification.DisabledSender{}
	}
	return notification.NewMobileSasaSender(cfg.SMSAPIURL, cfg.SMSAPIToken, cfg.SMSSenderID)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatal(err)
	}

	customerRepo := infraRepo.NewCustomerPgRepository(pool)
	orderRepo := infraRepo.NewOrderPgRepository(pool)
	userRepo := infraRepo.NewUserPgRepository(pool)

	dispatcher := notification.NewOrderDispatcher(newSender(cfg), cfg.SMSCurrency)

	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), accessTTL: time.Hour}

	customerUC := usecase.NewCustomerUsecase(customerRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, customerRepo, dispatcher)
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer)

	authH := handler.NewAuthHandler(registerUC, loginUC)
	customerH := handler.NewCustomerHandler(customerUC)
	orderH := handler.NewOrderHandler(orderUC)

	e := server.New(cfg, authH, customerH, orderH)

	if err := server.Start(e, ":"+cfg.Port); err != nil {
		log.Fatal(err)
	}
}
