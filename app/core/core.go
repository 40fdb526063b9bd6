package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/moodlingo/moodlingo/app/core/srv"
	"github.com/moodlingo/moodlingo/app/store/sqlstore"
	"github.com/moodlingo/moodlingo/pkg/safe"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	httpClient *http.Client
	httpEngine *gin.Engine

	metrics *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 3},
		metrics:    NewMetrics("moodlingo", "core"),
		httpEngine: gin.New(),
	}

	// setup store
	setupSqlStore(core)

	core.srv = srv.SetupSrvs(
		// ai provider select
		srv.ApplyAI(cfg.AI),
		// web socket
		srv.ApplyTower())

	// 存储层的日记变更事件转发到 websocket topic
	core.forwardEntryEvents()

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	// 执行数据库表初始化
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
}

// forwardEntryEvents bridges the store notifier onto each user's journal
// list topic so subscribed clients see creates and deletes without polling.
func (s *Core) forwardEntryEvents() {
	events, _ := s.Store().EntryNotifier().Subscribe()
	go safe.Run(func() {
		for event := range events {
			if err := s.srv.Tower().PublishEntryEvent(event); err != nil {
				slog.Error("failed to publish entry event",
					slog.String("user_id", event.UserID),
					slog.String("entry_id", event.ID),
					slog.Any("error", err))
			}
		}
	})
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) HttpClient() *http.Client {
	return s.httpClient
}
