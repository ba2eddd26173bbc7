// Package discord plays the game in a Discord channel. Messages in the channel become input lines;
// output is posted as messages and "typed" by editing them as the text grows.
package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jwebster45206/zarya/pkg/chat"
)

const (
	// MaxMessageLength is Discord's limit for message content.
	MaxMessageLength = 2000
	// MaxEdits caps how many times one message is edited while typing it out.
	MaxEdits = 4
	// Spacer stands in for a blank line, which Discord refuses to post.
	Spacer = "\u200b"

	inputBuffer = 32
)

// ErrClosed is returned once the transport has been closed.
var ErrClosed = errors.New("discord transport closed")

// Config holds the bot configuration
type Config struct {
	Token     string
	ChannelID string
}

// messenger is the part of *discordgo.Session used for output.
type messenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Transport struct {
	session   *discordgo.Session
	out       messenger
	channelID string
	lines     chan string
	done      chan struct{}
	rng       chat.Rand
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// New creates the Discord session. Call Open to connect.
func New(cfg Config, rng chat.Rand, logger *slog.Logger) (*Transport, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	t := newTransport(s, cfg.ChannelID, rng, logger)
	t.session = s
	s.AddHandler(t.ready)
	s.AddHandler(t.messageCreate)
	return t, nil
}

func newTransport(out messenger, channelID string, rng chat.Rand, logger *slog.Logger) *Transport {
	return &Transport{
		out:       out,
		channelID: channelID,
		lines:     make(chan string, inputBuffer),
		done:      make(chan struct{}),
		rng:       rng,
		logger:    logger,
		sleep:     sleepContext,
	}
}

// Open connects to the gateway.
func (t *Transport) Open() error {
	if err := t.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	t.logger.Info("Discord transport connected", "channel_id", t.channelID)
	return nil
}

// Close disconnects and unblocks any pending RequestLine.
func (t *Transport) Close() error {
	select {
	case <-t.done:
		return nil
	default:
		close(t.done)
	}
	if t.session == nil {
		return nil
	}
	return t.session.Close()
}

func (t *Transport) ready(s *discordgo.Session, r *discordgo.Ready) {
	t.logger.Info("Bot is ready", "user", r.User.Username)
}

func (t *Transport) messageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.ChannelID != t.channelID {
		return
	}
	t.accept(m.Content)
}

// accept queues a line of input. Lines arriving while the queue is full are dropped.
func (t *Transport) accept(content string) {
	select {
	case t.lines <- content:
	default:
		t.logger.Warn("Input queue full, dropping message", "channel_id", t.channelID)
	}
}

func (t *Transport) RequestLine(ctx context.Context) (string, error) {
	select {
	case line := <-t.lines:
		return line, nil
	case <-t.done:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Display posts a line. Paced lines are posted with their first few characters and then edited
// until complete; long lines are split into several messages.
func (t *Transport) Display(ctx context.Context, line chat.Line, skip bool) error {
	text := line.Text
	if text == "" {
		text = Spacer
	}
	for _, chunk := range chat.Chunks(text, MaxMessageLength) {
		var err error
		if line.Instant(skip) {
			_, err = t.out.ChannelMessageSend(t.channelID, chunk, discordgo.WithContext(ctx))
		} else {
			err = t.typeOut(ctx, chunk, line.Pace)
		}
		if err != nil {
			return fmt.Errorf("discord display: %w", err)
		}
	}
	return nil
}

func (t *Transport) typeOut(ctx context.Context, text string, pace chat.Pace) error {
	runes := []rune(text)
	step := (len(runes) + MaxEdits - 1) / MaxEdits
	if step < 1 {
		step = 1
	}

	end := min(step, len(runes))
	msg, err := t.out.ChannelMessageSend(t.channelID, string(runes[:end]), discordgo.WithContext(ctx))
	if err != nil {
		return err
	}
	for end < len(runes) {
		if err := t.sleep(ctx, pace.Delay(t.rng)*time.Duration(step)); err != nil {
			return err
		}
		end = min(end+step, len(runes))
		if _, err := t.out.ChannelMessageEdit(t.channelID, msg.ID, string(runes[:end]), discordgo.WithContext(ctx)); err != nil {
			return err
		}
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
