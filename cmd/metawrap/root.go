package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/meta-wrappers/internal/config"
	"github.com/example/meta-wrappers/internal/logger"
	"github.com/example/meta-wrappers/internal/session"
	"github.com/example/meta-wrappers/pkg/factory"
	"github.com/example/meta-wrappers/pkg/whatsapp/whatsapptest"
	"github.com/example/meta-wrappers/pkg/wrapper"
)

type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client wrapper.Wrapper
}

func rootCmd() *cobra.Command {
	var (
		platform string
		dryRun   bool
	)

	root := &cobra.Command{
		Use:          "metawrap",
		Short:        "Send messages through the Meta chat platform APIs",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&platform, "platform", "", "Platform to use (overrides META_PLATFORM)")
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Answer requests locally instead of calling the API")

	build := func() (*app, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if platform != "" {
			cfg.Meta.Platform = strings.ToLower(platform)
		}

		log, err := logger.New(cfg.App)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}

		var httpClient wrapper.HTTPClient
		if dryRun {
			httpClient = whatsapptest.New(log)
		} else {
			httpClient, err = session.New(cfg.Meta.AccessToken, time.Duration(cfg.Timeout.HTTPTimeoutSeconds)*time.Second, nil)
			if err != nil {
				return nil, err
			}
		}

		client, err := factory.New(cfg.Meta.Platform, httpClient, cfg.Meta.AccountID, factory.Config{
			Logger:  log,
			BaseURL: cfg.Meta.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return &app{cfg: cfg, log: log, client: client}, nil
	}

	root.AddCommand(
		platformsCmd(),
		textCmd(build),
		menuCmd(build),
		fileCmd(build),
		replyCmd(build),
		reactCmd(build),
		readCmd(build),
	)
	return root
}

type builder func() (*app, error)

func platformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range factory.Platforms() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func textCmd(build builder) *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "text <user> <message>",
		Short: "Send a text message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			id, err := a.client.SendMessage(cmd.Context(), args[0], strings.Join(args[1:], " "),
				wrapper.WithPreviewURL(previewFlag(cmd, preview, a.cfg)))
			return a.report(cmd, "text", id, err)
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "Render link previews (overrides META_PREVIEW_URL)")
	return cmd
}

func menuCmd(build builder) *cobra.Command {
	var (
		button   string
		header   string
		footer   string
		sections []string
	)
	cmd := &cobra.Command{
		Use:   "menu <user> <message>",
		Short: "Send an interactive list menu",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseSections(sections)
			if err != nil {
				return err
			}
			a, err := build()
			if err != nil {
				return err
			}
			id, err := a.client.SendMenu(cmd.Context(), args[0], strings.Join(args[1:], " "), button, parsed,
				wrapper.WithHeader(header), wrapper.WithFooter(footer))
			return a.report(cmd, "menu", id, err)
		},
	}
	cmd.Flags().StringVar(&button, "button", "Options", "Label of the button that opens the list")
	cmd.Flags().StringVar(&header, "header", "", "Header text")
	cmd.Flags().StringVar(&footer, "footer", "", "Footer text")
	cmd.Flags().StringArrayVar(&sections, "section", nil, `Section as "Title:row one,row two" (repeatable)`)
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func fileCmd(build builder) *cobra.Command {
	var types []string
	for _, t := range wrapper.FileTypes() {
		types = append(types, string(t))
	}
	return &cobra.Command{
		Use:   "file <user> <url> <type>",
		Short: "Send a remotely hosted file (" + strings.Join(types, ", ") + ")",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wrapper.ValidateFileType(wrapper.FileType(args[2])); err != nil {
				return err
			}
			a, err := build()
			if err != nil {
				return err
			}
			id, err := a.client.SendFile(cmd.Context(), args[0], args[1], wrapper.FileType(args[2]))
			return a.report(cmd, "file", id, err)
		},
	}
}

func replyCmd(build builder) *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "reply <user> <message-id> <message>",
		Short: "Reply to a message",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			err = a.client.ReplyToMessage(cmd.Context(), args[0], strings.Join(args[2:], " "), args[1],
				wrapper.WithPreviewURL(previewFlag(cmd, preview, a.cfg)))
			return a.report(cmd, "reply", "", err)
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "Render link previews (overrides META_PREVIEW_URL)")
	return cmd
}

func reactCmd(build builder) *cobra.Command {
	return &cobra.Command{
		Use:   "react <user> <message-id> <emoji>",
		Short: "React to a message with an emoji",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			err = a.client.ReactToMessage(cmd.Context(), args[0], args[1], args[2])
			return a.report(cmd, "react", "", err)
		},
	}
}

func readCmd(build builder) *cobra.Command {
	return &cobra.Command{
		Use:   "read <user> <message-id>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			err = a.client.MarkAsRead(cmd.Context(), args[0], args[1])
			return a.report(cmd, "read", "", err)
		},
	}
}

func previewFlag(cmd *cobra.Command, flag bool, cfg *config.Config) bool {
	if cmd.Flags().Changed("preview") {
		return flag
	}
	return cfg.Meta.PreviewURL
}

func (a *app) report(cmd *cobra.Command, action, id string, err error) error {
	if err != nil {
		a.log.Error().
			Err(err).
			Str("kind", string(wrapper.Classify(err))).
			Str("action", action).
			Str("platform", a.cfg.Meta.Platform).
			Msg("request failed")
		return err
	}
	a.log.Info().
		Str("action", action).
		Str("platform", a.cfg.Meta.Platform).
		Str("message_id", id).
		Msg("request succeeded")
	if id != "" {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
