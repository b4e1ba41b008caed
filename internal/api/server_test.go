package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/creator-tips/internal/auth"
	"github.com/creator-tips/internal/config"
	"github.com/creator-tips/internal/frame"
	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/service"
	"github.com/creator-tips/internal/types"
)

// Mock services for testing

type mockTipService struct {
	submitFunc func(ctx context.Context, input *service.SubmitTipInput) (string, error)
	listFunc   func(ctx context.Context, tipper, creator string, limit int) ([]*models.Tip, error)
}

func (m *mockTipService) SubmitTip(ctx context.Context, input *service.SubmitTipInput) (string, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, input)
	}
	return "tip-123", nil
}

func (m *mockTipService) ListTips(ctx context.Context, tipper, creator string, limit int) ([]*models.Tip, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tipper, creator, limit)
	}
	return []*models.Tip{}, nil
}

type mockCreatorService struct {
	getFunc       func(ctx context.Context, handle string) (*models.Creator, error)
	topFunc       func(ctx context.Context, limit int) ([]*models.Creator, error)
	dashboardFunc func(ctx context.Context, address string) (*models.DashboardStats, error)
	saveFunc      func(ctx context.Context, creator *models.Creator) error
}

func (m *mockCreatorService) GetByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, handle)
	}
	return nil, nil
}

func (m *mockCreatorService) Top(ctx context.Context, limit int) ([]*models.Creator, error) {
	if m.topFunc != nil {
		return m.topFunc(ctx, limit)
	}
	return []*models.Creator{}, nil
}

func (m *mockCreatorService) Dashboard(ctx context.Context, address string) (*models.DashboardStats, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx, address)
	}
	return &models.DashboardStats{TopSupporters: []models.Supporter{}}, nil
}

func (m *mockCreatorService) SaveProfile(ctx context.Context, creator *models.Creator) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, creator)
	}
	return nil
}

type mockNotificationService struct {
	sendFunc        func(ctx context.Context, recipient string, eventType types.NotificationType, data json.RawMessage) (string, error)
	listFunc        func(ctx context.Context, address string, limit int) ([]*models.Notification, int64, error)
	markReadFunc    func(ctx context.Context, id string) error
	markAllReadFunc func(ctx context.Context, address string) error
}

func (m *mockNotificationService) Send(ctx context.Context, recipient string, eventType types.NotificationType, data json.RawMessage) (string, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, recipient, eventType, data)
	}
	return "notif-123", nil
}

func (m *mockNotificationService) List(ctx context.Context, address string, limit int) ([]*models.Notification, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, address, limit)
	}
	return []*models.Notification{}, 0, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, address string) error {
	if m.markAllReadFunc != nil {
		return m.markAllReadFunc(ctx, address)
	}
	return nil
}

type mockUserStore struct {
	upsertFunc func(ctx context.Context, profile *models.UserProfile) error
	getFunc    func(ctx context.Context, address string) (*models.UserProfile, error)
}

func (m *mockUserStore) Upsert(ctx context.Context, profile *models.UserProfile) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, profile)
	}
	return nil
}

func (m *mockUserStore) GetByAddress(ctx context.Context, address string) (*models.UserProfile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, address)
	}
	return nil, nil
}

type testServerOptions struct {
	tips          TipServiceInterface
	creators      CreatorServiceInterface
	notifications NotificationServiceInterface
	users         UserStoreInterface
}

func createTestServer(opts testServerOptions) *Server {
	if opts.tips == nil {
		opts.tips = &mockTipService{}
	}
	if opts.creators == nil {
		opts.creators = &mockCreatorService{}
	}
	if opts.notifications == nil {
		opts.notifications = &mockNotificationService{}
	}
	if opts.users == nil {
		opts.users = &mockUserStore{}
	}

	log := logging.NewLogger(logging.LevelError, logging.FormatText)
	log.SetOutput(&strings.Builder{})

	cfg := &ServerConfig{
		Host:           "localhost",
		Port:           "0",
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	frames := frame.NewGenerator(&config.FrameConfig{
		AppURL:      "https://tips.example.com",
		AppName:     "Tip-a-Creator",
		Description: "Support creators with USDC tips",
	})

	return NewServer(cfg, opts.tips, opts.creators, opts.notifications, opts.users,
		auth.NewVerifier(false), frames, log)
}
