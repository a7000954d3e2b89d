package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var chatConversation string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the assistant from the terminal",
	Long:  `Reads one command per line from stdin and prints the assistant's reply. Uses the GRAPH_* account.`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatConversation, "conversation", "", "conversation id to resume")
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	// Keep the terminal readable.
	if cfg.Log.Level == "info" {
		cfg.Log.Level = "warn"
		logger = newLogger(cfg.Log)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	go func() {
		_ = a.notifier.Subscribe(ctx, func(c domain.StatusChange) {
			fmt.Fprintf(out, "  [%s %s -> %s]\n", c.Scope, c.Name, c.Status)
		})
	}()

	conversation := chatConversation
	if conversation == "" {
		conversation = uuid.NewString()
	}
	acct := a.defaultAccount()
	acct.UserID = "cli"

	return chatLoop(cmd.InOrStdin(), out, func(text string) (*port.Reply, error) {
		reply, err := a.assistant.Handle(ctx, acct, conversation, text)
		if err != nil {
			logger.Error("chat turn failed", slog.Any("error", err))
		}
		return reply, err
	})
}

// chatLoop feeds each non-empty input line to turn and prints the reply.
func chatLoop(in io.Reader, out io.Writer, turn func(string) (*port.Reply, error)) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			fmt.Fprint(out, "> ")
			continue
		}
		if text == "exit" || text == "quit" {
			return nil
		}

		reply, err := turn(text)
		if err != nil {
			fmt.Fprintf(out, "! %v\n", err)
		} else {
			fmt.Fprintln(out, reply.Message)
			for i, e := range reply.Entities {
				fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, e.Name, e.EffectiveStatus)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}
