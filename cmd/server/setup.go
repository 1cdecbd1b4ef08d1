package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/config"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/mail"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/notifier"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/storage"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
)

const capturedMailTTL = 7 * 24 * time.Hour

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// newMailTransport picks the transport named by MAIL_DRIVER. Missing SMTP
// credentials disable sending instead of failing startup.
func newMailTransport(cfg *config.Config, redisClient *redis.Client) (mail.Transport, error) {
	switch strings.ToLower(cfg.MailDriver) {
	case "", "smtp":
		if !cfg.MailConfigured() {
			logger.Warn("SMTP not configured, email actions are disabled")
			return mail.Disabled{}, nil
		}
		t := mail.NewSMTPTransport(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom())
		if err := t.Open(); err != nil {
			logger.Warn("SMTP connection failed, will retry on first send", "host", cfg.MailHost, "error", err)
		}
		return t, nil
	case "redis":
		if redisClient == nil {
			return nil, errors.New("MAIL_DRIVER=redis requires REDIS_URL")
		}
		return mail.NewRedisTransport(redisClient, cfg.MailFrom(), capturedMailTTL), nil
	case "log":
		return mail.LogTransport{}, nil
	}
	return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.MailDriver)
}

func newNotifier(cfg *config.Config) notifier.Notifier {
	if cfg.DiscordBotToken == "" || cfg.DiscordNotificationsChannelID == "" {
		return notifier.Nop{}
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		logger.Warn("Discord notifier not initialized", "error", err)
		return notifier.Nop{}
	}
	return notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
}

func newUploader(ctx context.Context, cfg *config.Config) *storage.Uploader {
	backend, err := storage.New(ctx, cfg)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		logger.Warn("Object storage not configured, uploads are disabled", "driver", cfg.StorageDriver)
		return nil
	case err != nil:
		logger.Error("Object storage not initialized, uploads are disabled", "error", err)
		return nil
	}
	return storage.NewUploader(backend, cfg.UploadMaxWidth)
}
