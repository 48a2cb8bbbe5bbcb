package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"agrobot/internal/bot"
	"agrobot/internal/config"
	"agrobot/internal/llm"
	"agrobot/internal/logger"
	"agrobot/internal/server"
	"agrobot/internal/setup"
	"agrobot/internal/telegram"
	"agrobot/internal/weather"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "agrobot",
		Short: "Bilingual farming assistant for Indian farmers",
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config file")

	root.AddCommand(serveCmd(), telegramCmd(), chatCmd(), setupCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chat API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, svc, err := buildService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return server.New(svc, log, cfg.Port).Start(ctx)
		},
	}
}

func telegramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "telegram",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, svc, err := buildService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			adapter, err := telegram.New(cfg.TelegramToken, svc, log)
			if err != nil {
				return err
			}
			return adapter.Start(ctx)
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, svc, err := buildService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runChatLoop(ctx, cfg, svc)
		},
	}
}

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive configuration wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setup.Run(configPath)
		},
	}
}

func buildService(ctx context.Context) (config.Config, *zap.Logger, *bot.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	gen, err := llm.NewGenerator(ctx, llm.Provider(cfg.Provider), llm.Options{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("initialize generative backend: %w", err)
	}

	wc := weather.NewClient(cfg.WeatherAPIKey)
	svc := bot.NewService(wc, gen, log)
	return cfg, log, svc, nil
}

func runChatLoop(ctx context.Context, cfg config.Config, svc *bot.Service) error {
	fmt.Println("AgroBot chat")
	fmt.Printf("provider=%s, model=%s\n", cfg.Provider, valueOrDefault(cfg.Model, "default"))
	fmt.Println("Type /exit to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		<-ctx.Done()
		os.Stdin.Close() // Force read error to break loop
	}()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" || input == "exit" || input == "quit" {
			return nil
		}

		answer, _ := svc.Handle(ctx, bot.Message{Text: input})
		fmt.Println(answer.Hindi)
		if answer.English != answer.Hindi {
			fmt.Println(answer.English)
		}
	}
}

func valueOrDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
