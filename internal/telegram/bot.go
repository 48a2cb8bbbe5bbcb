package telegram

import (
	"context"
	"fmt"
	"time"

	"agrobot/internal/bot"
	"agrobot/internal/reply"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Pipeline is the message-understanding service behind this channel.
type Pipeline interface {
	Handle(ctx context.Context, msg bot.Message) (reply.Bilingual, int)
}

// Adapter runs the assistant as a Telegram bot. The pipeline is stateless,
// so one service instance handles every chat; Telegram carries no
// geolocation on plain text messages, so weather requests get the
// location-request reply on this channel.
type Adapter struct {
	bot      *tele.Bot
	pipeline Pipeline
	log      *zap.Logger
}

func New(token string, pipeline Pipeline, log *zap.Logger) (*Adapter, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram: bot token is required")
	}

	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}

	a := &Adapter{bot: b, pipeline: pipeline, log: log}
	a.setupHandlers()
	return a, nil
}

// Start begins long-polling until ctx is canceled.
func (a *Adapter) Start(ctx context.Context) error {
	a.log.Info("starting telegram bot", zap.String("username", a.bot.Me.Username))

	go func() {
		<-ctx.Done()
		a.log.Info("shutting down telegram bot")
		a.bot.Stop()
	}()

	a.bot.Start()
	return nil
}

func (a *Adapter) setupHandlers() {
	a.bot.Handle("/start", func(c tele.Context) error {
		return c.Send("नमस्ते! मैं एग्रोबॉट हूँ। 🌾 Hello! I am AgroBot, your farming assistant. Ask me about crops, weather or government schemes.")
	})

	a.bot.Handle(tele.OnText, a.handleMessage)
}

func (a *Adapter) handleMessage(c tele.Context) error {
	text := c.Text()
	_ = c.Notify(tele.Typing)

	turnCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	answer, _ := a.pipeline.Handle(turnCtx, bot.Message{Text: text})
	return c.Send(render(answer.Hindi, answer.English))
}

// render joins the two language fields, collapsing them when the backend
// produced a single bilingual string for both.
func render(hindi, english string) string {
	if hindi == english {
		return hindi
	}
	return hindi + "\n\n" + english
}
