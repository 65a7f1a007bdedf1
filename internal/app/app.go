package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/insiderdeals/storefront/config"
	"github.com/insiderdeals/storefront/internal/auth"
	"github.com/insiderdeals/storefront/internal/catalog"
	"github.com/insiderdeals/storefront/internal/events"
	"github.com/insiderdeals/storefront/internal/store"
	"github.com/insiderdeals/storefront/pkg/common"
)

type Application struct {
	appConfig *config.AppConfig
	kvstore   store.KVStore
	bus       *events.Bus
	catalog   *catalog.Service
	blogs     *catalog.BlogStore
	featured  *catalog.FeaturedView
	authn     *auth.Authenticator
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var _ AppContext = (*Application)(nil)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig        { return a.appConfig }
func (a *Application) Store() store.KVStore             { return a.kvstore }
func (a *Application) Bus() *events.Bus                 { return a.bus }
func (a *Application) Catalog() *catalog.Service        { return a.catalog }
func (a *Application) Blogs() *catalog.BlogStore        { return a.blogs }
func (a *Application) Featured() *catalog.FeaturedView  { return a.featured }
func (a *Application) Auth() *auth.Authenticator        { return a.authn }
func (a *Application) Scheduler() *cron.Cron            { return a.sched }

// OverrideStore replaces the application's store handle (used in tests).
func (a *Application) OverrideStore(kv store.KVStore) {
	a.kvstore = kv
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	// An empty workdir selects the ephemeral in-memory store; otherwise
	// the bbolt file under the workdir holds all durable state.
	if cfg.System.Workdir == "" {
		a.kvstore = store.NewMemoryStore()
	} else {
		if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
			return err
		}
		kv, err := store.NewBoltStore(cfg.GetStoreFile())
		if err != nil {
			return err
		}
		a.kvstore = kv
		zap.S().Infof("store opened: %s", cfg.GetStoreFile())
	}

	if err := a.initServices(); err != nil {
		return err
	}

	a.checkCatalogSeed()
	a.initJob()
	return nil
}

// initServices builds the service graph on top of the current store; tests
// call it again after OverrideStore.
func (a *Application) initServices() error {
	cfg := a.appConfig
	a.bus = events.New()
	a.catalog = catalog.NewService(a.kvstore, a.bus, cfg.Data.ProductsFile)
	a.blogs = catalog.NewBlogStore(cfg.Data.BlogsFile)

	featured, err := catalog.NewFeaturedView(a.catalog, a.bus, catalog.FeaturedLimit)
	if err != nil {
		return err
	}
	a.featured = featured

	a.authn = auth.New(a.kvstore, auth.Config{
		Username:    cfg.Admin.Username,
		Password:    cfg.Admin.Password,
		TokenSecret: cfg.Web.Secret,
		TTL:         time.Duration(cfg.Session.TTLHours) * time.Hour,
		MaxAttempts: cfg.Session.MaxAttempts,
		Window:      time.Duration(cfg.Session.AttemptWindowSec) * time.Second,
	})

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		zap.L().Warn("admin credentials not configured, admin login will report a configuration error")
	}
	return nil
}

// InitForTest wires the services onto the given store without touching the
// global logger, filesystem or scheduler.
func (a *Application) InitForTest(kv store.KVStore) error {
	a.kvstore = kv
	return a.initServices()
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable && cfg.System.Workdir != "" {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.GetLogDir() + "/" + cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// checkCatalogSeed warms the catalog on startup so a missing seed document
// is visible in the logs immediately rather than on first request.
func (a *Application) checkCatalogSeed() {
	if !common.FileExists(a.appConfig.Data.ProductsFile) {
		zap.L().Warn("catalog seed document does not exist",
			zap.String("seed", a.appConfig.Data.ProductsFile))
	}
	products := a.catalog.Load()
	if len(products) == 0 {
		zap.L().Warn("catalog is empty after bootstrap",
			zap.String("seed", a.appConfig.Data.ProductsFile))
		return
	}
	zap.L().Info("catalog ready",
		zap.Int("products", len(products)),
		zap.Int("featured", len(a.featured.Items())))
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.kvstore != nil {
		_ = a.kvstore.Close()
	}
	_ = zap.L().Sync()
}
