// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	var user models.User
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validator.Validate(cmd.Context(), user); err != nil {
				return err
			}
			server, err := a.server()
			if err != nil {
				return err
			}

			token, err := server.Register(cmd.Context(), user)
			if err != nil {
				return err
			}
			return a.emitToken("Registered", user.Login, token)
		},
	}
	bindCredentials(cmd, &user)
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var user models.User
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a fresh token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validator.Validate(cmd.Context(), user); err != nil {
				return err
			}
			server, err := a.server()
			if err != nil {
				return err
			}

			token, err := server.Login(cmd.Context(), user)
			if err != nil {
				return err
			}
			return a.emitToken("Logged in", user.Login, token)
		},
	}
	bindCredentials(cmd, &user)
	return cmd
}

func bindCredentials(cmd *cobra.Command, user *models.User) {
	cmd.Flags().StringVarP(&user.Login, "login", "l", "", "account login")
	cmd.Flags().StringVarP(&user.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
}

func (a *App) emitToken(title, login, token string) error {
	fields := []field{{label: "login", value: login}}
	if userID, err := utils.ParseUserIDFromJWT(token); err == nil {
		fields = append(fields, field{label: "user id", value: strconv.FormatInt(userID, 10)})
	}
	fields = append(fields, field{label: "token", value: token})

	if err := a.emit(title, token, fields...); err != nil {
		return err
	}
	if !a.plain {
		printHint(a.out, "export CIPHER_CHAT_TOKEN=%s", token)
	}
	return nil
}

func (a *App) captchaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "captcha",
		Short: "Request and solve a tile-order captcha",
	}

	issue := &cobra.Command{
		Use:   "new",
		Short: "Request a challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			challenge, err := server.NewCaptcha(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit("Captcha", challenge.Token,
				field{label: "token", value: challenge.Token},
				field{label: "tiles", value: joinInts(challenge.ShuffledIDs)},
				field{label: "expires", value: challenge.ExpiresAt.Local().Format(time.TimeOnly)},
			)
		},
	}

	solve := &cobra.Command{
		Use:     "solve <token> <tile>...",
		Short:   "Submit tiles in their correct order",
		Example: `  cipher-chat captcha solve 0199... 0 1 2 3`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			answer := models.CaptchaAnswer{Token: args[0], Sequence: make([]int, 0, len(args)-1)}
			for _, raw := range args[1:] {
				id, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("tile %q is not a number", raw)
				}
				answer.Sequence = append(answer.Sequence, id)
			}

			if err = server.VerifyCaptcha(cmd.Context(), answer); err != nil {
				return err
			}
			return a.emit("Captcha", "solved", field{label: "result", value: "solved"})
		},
	}

	cmd.AddCommand(issue, solve)
	return cmd
}

func (a *App) sendCommand() *cobra.Command {
	var algorithm, key string
	cmd := &cobra.Command{
		Use:   "send [text...]",
		Short: "Encrypt and post a message",
		Example: `  cipher-chat send -a caesar -k 3 "Hello"
  cipher-chat send -a playfair -k MONARCHY "instruments"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			req := models.SendMessageRequest{Algorithm: algorithm, Content: text, Key: key}
			if err = a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			message, err := server.SendMessage(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.emit("Sent", message.Content, messageFields(message)...)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "caesar, hill or playfair")
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *App) listCommand() *cobra.Command {
	var limit uint64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored messages, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			messages, err := server.ListMessages(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				printHint(a.out, "no messages")
				return nil
			}

			rows := make([]string, 0, len(messages)+1)
			rows = append(rows, titleStyle.Render(fmt.Sprintf("%-6s %-8s %-9s %s", "ID", "AUTHOR", "ALGORITHM", "CONTENT")))
			for _, m := range messages {
				rows = append(rows, fmt.Sprintf("%-6d %-8d %-9s %s", m.MessageID, m.AuthorID, m.Algorithm, m.Content))
			}
			fmt.Fprintln(a.out, lipgloss.JoinVertical(lipgloss.Left, rows...))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of messages, 0 for all")
	return cmd
}

// readCommand fetches a message and decrypts it. Caesar and Hill need the
// key; Playfair messages carry their own metadata.
func (a *App) readCommand() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "read <id>",
		Short: "Fetch and decrypt one message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageID, err := parseMessageID(args[0])
			if err != nil {
				return err
			}
			server, err := a.server()
			if err != nil {
				return err
			}

			message, err := server.GetMessage(cmd.Context(), messageID)
			if err != nil {
				return err
			}

			req := models.DecryptMessageRequest{MessageID: messageID, Algorithm: message.Algorithm, Key: key}
			if err = a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}
			decrypted, err := server.DecryptMessage(cmd.Context(), req)
			if err != nil {
				return err
			}

			fields := append(messageFields(message), field{label: "plaintext", value: decrypted.DecryptedContent})
			return a.emit("Message", decrypted.DecryptedContent, fields...)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (not needed for playfair)")
	return cmd
}

func (a *App) editCommand() *cobra.Command {
	var plaintext, content, algorithm, key string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a stored message",
		Long: `edit patches a stored message. --text re-encrypts new plaintext, with
--algorithm and --key when given and the stored ones otherwise. --content
replaces the ciphertext verbatim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageID, err := parseMessageID(args[0])
			if err != nil {
				return err
			}
			server, err := a.server()
			if err != nil {
				return err
			}

			var req models.UpdateMessageRequest
			flags := cmd.Flags()
			if flags.Changed("text") {
				req.Plaintext = &plaintext
			}
			if flags.Changed("content") {
				req.Content = &content
			}
			if flags.Changed("algorithm") {
				req.Algorithm = &algorithm
			}
			if flags.Changed("key") {
				req.Key = &key
			}
			if err = a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			message, err := server.UpdateMessage(cmd.Context(), messageID, req)
			if err != nil {
				return err
			}
			return a.emit("Updated", message.Content, messageFields(message)...)
		},
	}
	cmd.Flags().StringVar(&plaintext, "text", "", "new plaintext to encrypt")
	cmd.Flags().StringVar(&content, "content", "", "new ciphertext, stored as is")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "new algorithm")
	cmd.Flags().StringVarP(&key, "key", "k", "", "new key")
	cmd.MarkFlagsMutuallyExclusive("text", "content")
	return cmd
}

func (a *App) interceptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "intercept",
		Short: "Show what an eavesdropper reads from the latest message",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			result, err := server.Intercept(cmd.Context())
			if err != nil {
				return err
			}

			fields := messageFields(result.Message)
			if result.DecryptError != "" {
				fields = append(fields, field{label: "error", value: result.DecryptError})
			} else {
				fields = append(fields, field{label: "plaintext", value: result.DecryptedContent})
			}
			return a.emit("Intercepted", result.DecryptedContent, fields...)
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server-version",
		Short: "Print the server version",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.server()
			if err != nil {
				return err
			}

			version, err := server.Version(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit("Server", version,
				field{label: "address", value: a.cfg.Server},
				field{label: "version", value: version},
			)
		},
	}
}

func messageFields(m models.Message) []field {
	return []field{
		{label: "id", value: strconv.FormatInt(m.MessageID, 10)},
		{label: "author", value: strconv.FormatInt(m.AuthorID, 10)},
		{label: "algorithm", value: m.Algorithm},
		{label: "content", value: m.Content},
	}
}

func parseMessageID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("message id %q must be a positive integer", raw)
	}
	return id, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
