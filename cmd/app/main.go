package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chatboard/chatboard-go/internal/api/rest"
	"github.com/chatboard/chatboard-go/internal/config"
	"github.com/chatboard/chatboard-go/internal/fetch"
	"github.com/chatboard/chatboard-go/internal/logging"
	"github.com/chatboard/chatboard-go/internal/routes"
	"github.com/chatboard/chatboard-go/internal/service"
	"github.com/chatboard/chatboard-go/internal/session"
	"github.com/chatboard/chatboard-go/internal/uistate"
)

// services is the full set of resource services, wired once at startup in a
// fixed dependency order.
type services struct {
	auth          service.AuthService
	users         service.UserService
	roles         service.RoleService
	departments   service.DepartmentService
	boards        service.BoardService
	columns       service.ColumnService
	cards         service.CardService
	comments      service.CommentService
	chats         service.ChatService
	messages      service.MessageService
	conversations service.ConversationService
	whatsapp      service.WhatsAppMessageService
}

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	sessions := session.NewStore(cfg.SessionFile())
	if err := sessions.Load(); err != nil {
		logger.Warn("could not restore session", zap.Error(err))
	}

	client := rest.NewClient(cfg.API.BaseURL,
		rest.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		rest.WithTokenSource(sessions),
		rest.WithLogger(logger),
		rest.WithUnauthorizedHandler(func() {
			if err := sessions.Clear(); err != nil {
				logger.Error("could not clear session", zap.Error(err))
			}
			logger.Info("session expired, sign in again",
				zap.String("route", routes.Path("login")))
		}),
	)

	svcs := services{
		auth:          must(service.NewAuthService(rest.NewAuthClient(client), sessions)),
		users:         must(service.NewUserService(rest.NewUsersClient(client))),
		roles:         must(service.NewRoleService(rest.NewRolesClient(client))),
		departments:   must(service.NewDepartmentService(rest.NewDepartmentsClient(client))),
		boards:        must(service.NewBoardService(rest.NewBoardsClient(client))),
		columns:       must(service.NewColumnService(rest.NewColumnsClient(client))),
		cards:         must(service.NewCardService(rest.NewCardsClient(client))),
		comments:      must(service.NewCommentService(rest.NewCommentsClient(client))),
		chats:         must(service.NewChatService(rest.NewChatsClient(client))),
		messages:      must(service.NewMessageService(rest.NewMessagesClient(client))),
		conversations: must(service.NewConversationService(rest.NewConversationsClient(client))),
		whatsapp:      must(service.NewWhatsAppMessageService(rest.NewWhatsAppMessagesClient(client))),
	}

	var storage uistate.Storage
	if cfg.Redis.Addr != "" {
		storage = uistate.NewRedisStorage(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		}))
	} else {
		storage = uistate.NewFileStorage(cfg.State.Dir)
	}

	store := uistate.NewStore(
		uistate.WithStorage(storage),
		uistate.WithTypingTTL(cfg.State.TypingTTL),
		uistate.WithApplyTheme(func(theme uistate.Theme) {
			logger.Info("theme applied", zap.String("theme", string(theme)))
		}),
	)

	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		logger.Warn("could not restore persisted state", zap.Error(err))
	}

	warmUp(ctx, logger, store, svcs)

	// Lightweight connectivity probe, restarted by the transport whenever
	// its inputs change.
	health := fetch.New(fetch.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	defer health.Close()
	health.Subscribe(func(state fetch.State) {
		switch state.Status {
		case fetch.StatusSuccess:
			store.SetConnectionStatus(uistate.ConnectionConnected)
		case fetch.StatusError:
			store.SetConnectionStatus(uistate.ConnectionError)
			logger.Warn("health probe failed", zap.Error(state.Err))
		}
	})
	health.SetURL(cfg.API.BaseURL + "/health")

	logger.Info("chatboard client ready", zap.String("api", cfg.API.BaseURL))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
}

// warmUp preloads the collections the dashboard shows first.
func warmUp(ctx context.Context, logger *zap.Logger, store *uistate.Store, svcs services) {
	store.SetConnectionStatus(uistate.ConnectionConnecting)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := svcs.users.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		_, err := svcs.boards.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		_, err := svcs.chats.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		_, err := svcs.conversations.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		store.SetConnectionStatus(uistate.ConnectionError)
		logger.Warn("warm-up incomplete", zap.Error(err))
		return
	}

	store.SetConnectionStatus(uistate.ConnectionConnected)
	logger.Info("warm-up complete", zap.Int("users", len(svcs.users.Users())))
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("wiring failed: %v", err)
	}
	return v
}
