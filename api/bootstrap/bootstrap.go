package bootstrap

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/webcore-labs/stripe-gateway/api/config"
	"github.com/webcore-labs/stripe-gateway/api/database"
	paymentapp "github.com/webcore-labs/stripe-gateway/api/services/payment/app"
	paymentdb "github.com/webcore-labs/stripe-gateway/api/services/payment/db"
	stripegw "github.com/webcore-labs/stripe-gateway/api/services/payment/gateway/stripe"
)

var paymentService paymentapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config, the optional audit database, and the Stripe client,
// and wires the payment service.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if paymentService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	key, err := config.AppConfig.SecretKey()
	if err != nil {
		return err
	}
	stripegw.SetKey(key)

	fields, err := paymentapp.ParseFieldMap(config.AppConfig.ChargeFieldsJSON)
	if err != nil {
		return fmt.Errorf("failed to parse charge field map: %w", err)
	}

	var store paymentapp.AuditStore
	if config.AppConfig.DatabaseURL != "" {
		if err := database.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := paymentdb.EnsureSchema(); err != nil {
			return err
		}
		store = paymentdb.Recorder{}
	}

	log := slog.Default().With(slog.String("component", "payment"))
	opts := paymentapp.Options{Currency: config.AppConfig.Currency, Fields: fields}
	paymentService = paymentapp.NewService(stripegw.New(), store, opts, log)
	return nil
}

func GetPaymentService() paymentapp.Service { return paymentService }

// SetPaymentService allows tests to inject a stub implementation.
func SetPaymentService(s paymentapp.Service) { paymentService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
